package ytmusic

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Field extractors. The service renders the same logical field through
// several undocumented JSON shapes depending on page context, so every
// extractor tries known shapes in a fixed priority order and returns the
// first match. A total miss yields the zero value, never an error: one
// malformed row must not take down a fifty-row shelf.

// unknownTitle stands in where an entity requires a non-empty title.
const unknownTitle = "Unknown"

func orUnknown(s string) string {
	if s == "" {
		return unknownTitle
	}
	return s
}

// textRun flattens a text node: {"runs":[{"text":...}]} or {"simpleText":...}.
func textRun(v any) string {
	if s := digString(v, "runs", 0, "text"); s != "" {
		return s
	}
	return digString(v, "simpleText")
}

// flexColumnRuns returns the text runs of the i-th flex column of a list row.
func flexColumnRuns(row map[string]any, i int) []any {
	return digList(row, "flexColumns", i, "musicResponsiveListItemFlexColumnRenderer", "text", "runs")
}

func flexColumnText(row map[string]any, i int) string {
	return digString(row, "flexColumns", i, "musicResponsiveListItemFlexColumnRenderer", "text", "runs", 0, "text")
}

// titleText pulls an item's display title: title runs first, then the first
// flex column of a list row.
func titleText(item map[string]any) string {
	if s := textRun(dig(item, "title")); s != "" {
		return s
	}
	return flexColumnText(item, 0)
}

// separatorRuns are the literal filler strings the service puts between
// artist names in subtitle text.
var separatorRuns = map[string]bool{
	" • ": true,
	" & ": true,
	", ":  true,
}

// artistsFromRuns turns a text-run list into Artists, one per non-separator
// run, preserving order. Runs carrying a browse endpoint become navigable
// artists; the rest get a fresh placeholder id each so two unnamed artists
// never collide.
func artistsFromRuns(runs []any) []Artist {
	var out []Artist
	for _, r := range runs {
		run, ok := r.(map[string]any)
		if !ok {
			continue
		}
		text, _ := run["text"].(string)
		if text == "" || separatorRuns[text] {
			continue
		}
		id := digString(run, "navigationEndpoint", "browseEndpoint", "browseId")
		if id == "" {
			id = placeholderIDPrefix + uuid.NewString()
		}
		out = append(out, Artist{ID: id, Name: text})
	}
	return out
}

// thumbnailShapes in priority order: the standard music thumbnail, the
// cropped square variant used on some detail headers, then a bare thumbnails
// array.
var thumbnailShapes = [][]any{
	{"musicThumbnailRenderer", "thumbnail", "thumbnails"},
	{"croppedSquareThumbnailRenderer", "thumbnail", "thumbnails"},
	{"thumbnails"},
}

// thumbnailURLs collects the url list of the first thumbnail shape present
// on item. Each shape may sit on the item itself or beneath a "thumbnail" /
// "thumbnailRenderer" wrapper; only the first matching shape contributes.
func thumbnailURLs(item map[string]any) []string {
	roots := []any{item, dig(item, "thumbnail"), dig(item, "thumbnailRenderer")}
	for _, shape := range thumbnailShapes {
		for _, root := range roots {
			if root == nil {
				continue
			}
			if urls := urlList(dig(root, shape...)); len(urls) > 0 {
				return urls
			}
		}
	}
	return nil
}

// bestThumbnail returns the highest-resolution candidate; by upstream
// convention that is the last entry.
func bestThumbnail(item map[string]any) string {
	urls := thumbnailURLs(item)
	if len(urls) == 0 {
		return ""
	}
	return urls[len(urls)-1]
}

func urlList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, it := range items {
		u := digString(it, "url")
		if u == "" {
			continue
		}
		out = append(out, normalizeURL(u))
	}
	return out
}

// normalizeURL pins protocol-relative urls to https; absolute urls pass
// through unchanged.
func normalizeURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}

// videoID finds the playable track id of an item: inline playlist item data
// first, then a watch endpoint (on the item or its title run), then the play
// button overlay. Empty means the item is not a playable track and the
// caller must skip it rather than build a Song with no id.
func videoID(item map[string]any) string {
	if id := digString(item, "playlistItemData", "videoId"); id != "" {
		return id
	}
	if id := digString(item, "navigationEndpoint", "watchEndpoint", "videoId"); id != "" {
		return id
	}
	if runs := flexColumnRuns(item, 0); len(runs) > 0 {
		if id := digString(runs[0], "navigationEndpoint", "watchEndpoint", "videoId"); id != "" {
			return id
		}
	}
	return digString(item, "overlay", "musicItemThumbnailOverlayRenderer", "content",
		"musicPlayButtonRenderer", "playNavigationEndpoint", "watchEndpoint", "videoId")
}

// browseID reads an item's navigation target, if it has one.
func browseID(item map[string]any) string {
	return digString(item, "navigationEndpoint", "browseEndpoint", "browseId")
}

// isAlbumBrowseID reports whether a browse target addresses an album page.
// Other prefixes are different page kinds and must not surface as albums.
func isAlbumBrowseID(id string) bool {
	return strings.HasPrefix(id, "MPRE") || strings.HasPrefix(id, "OLAK")
}

// durationSeconds reads the fixed-column clock text of a list row.
func durationSeconds(row map[string]any) int {
	text := textRun(dig(row, "fixedColumns", 0, "musicResponsiveListItemFixedColumnRenderer", "text"))
	return parseDuration(text)
}

// parseDuration converts a colon-delimited clock string to seconds:
// "3:45" → 225, "1:30:00" → 5400. Any other token count or a non-numeric
// component yields 0, meaning unknown.
func parseDuration(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// feedbackTokens scans a row's menu for the library toggle and returns its
// add/remove tokens. Rows without the toggle return nil.
func feedbackTokens(row map[string]any) *FeedbackTokens {
	for _, it := range digList(row, "menu", "menuRenderer", "items") {
		toggle := digMap(it, "toggleMenuServiceItemRenderer")
		if toggle == nil {
			continue
		}
		tokens := &FeedbackTokens{
			Add:    digString(toggle, "defaultServiceEndpoint", "feedbackEndpoint", "feedbackToken"),
			Remove: digString(toggle, "toggledServiceEndpoint", "feedbackEndpoint", "feedbackToken"),
		}
		if tokens.Add == "" && tokens.Remove == "" {
			continue
		}
		return tokens
	}
	return nil
}
