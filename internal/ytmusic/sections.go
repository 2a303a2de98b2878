package ytmusic

import "strings"

// Page-level parsing. Browse responses nest their payload under a fixed
// hierarchy of wrapper nodes (tabs → tab content → section list → section
// contents); continuation responses use a parallel hierarchy of their own.

// sectionList returns the sections of an initial browse response.
func sectionList(doc map[string]any) []any {
	return digList(doc, "contents", "singleColumnBrowseResultsRenderer", "tabs", 0,
		"tabRenderer", "content", "sectionListRenderer", "contents")
}

// nextContinuation pulls the token to follow after an initial response.
func nextContinuation(doc map[string]any) string {
	return digString(doc, "contents", "singleColumnBrowseResultsRenderer", "tabs", 0,
		"tabRenderer", "content", "sectionListRenderer", "continuations", 0,
		"nextContinuationData", "continuation")
}

// continuationSections returns the sections of a follow-up response, which
// the service shapes differently from the first page.
func continuationSections(doc map[string]any) []any {
	return digList(doc, "continuationContents", "sectionListContinuation", "contents")
}

// continuationToken pulls the token embedded in a continuation response.
func continuationToken(doc map[string]any) string {
	return digString(doc, "continuationContents", "sectionListContinuation",
		"continuations", 0, "nextContinuationData", "continuation")
}

// parseSections converts a section list into shelves, dispatching on which
// renderer key each section carries. Unrecognized shelf kinds are skipped,
// never fatal.
func parseSections(sections []any) []HomeSection {
	var out []HomeSection
	for _, s := range sections {
		section, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if shelf := digMap(section, "musicCarouselShelfRenderer"); shelf != nil {
			if hs, ok := parseCarouselShelf(shelf); ok {
				out = append(out, hs)
			}
			continue
		}
		if shelf := digMap(section, "musicShelfRenderer"); shelf != nil {
			if hs, ok := parseMusicShelf(shelf); ok {
				out = append(out, hs)
			}
		}
	}
	return out
}

// parseCarouselShelf reads a carousel of two-row cards.
func parseCarouselShelf(shelf map[string]any) (HomeSection, bool) {
	title := textRun(dig(shelf, "header", "musicCarouselShelfBasicHeaderRenderer", "title"))
	var items []HomeItem
	for _, c := range digList(shelf, "contents") {
		card := digMap(c, "musicTwoRowItemRenderer")
		if card == nil {
			continue
		}
		if item, ok := parseTwoRowItem(card); ok {
			items = append(items, item)
		}
	}
	if title == "" && len(items) == 0 {
		return HomeSection{}, false
	}
	return HomeSection{Title: title, IsChart: isChartTitle(title), Items: items}, true
}

// parseMusicShelf reads a flat shelf of list rows; every playable row
// becomes a song item.
func parseMusicShelf(shelf map[string]any) (HomeSection, bool) {
	title := textRun(dig(shelf, "title"))
	var items []HomeItem
	for _, c := range digList(shelf, "contents") {
		row := digMap(c, "musicResponsiveListItemRenderer")
		if row == nil {
			continue
		}
		if song, ok := parseSongRow(row); ok {
			items = append(items, HomeItem{Kind: KindSong, Song: &song})
		}
	}
	if title == "" && len(items) == 0 {
		return HomeSection{}, false
	}
	return HomeSection{Title: title, IsChart: isChartTitle(title), Items: items}, true
}

// parseTwoRowItem classifies a carousel card by its navigation target: watch
// endpoints are songs; browse targets split on prefix into artists (UC),
// albums (MPRE/OLAK) and playlist-like pages (everything else).
func parseTwoRowItem(card map[string]any) (HomeItem, bool) {
	title := titleText(card)
	thumb := bestThumbnail(card)
	artists := artistsFromRuns(digList(card, "subtitle", "runs"))

	if id := videoID(card); id != "" {
		song := Song{ID: id, Title: orUnknown(title), Artists: artists, Thumbnail: thumb}
		return HomeItem{Kind: KindSong, Song: &song}, true
	}

	id := browseID(card)
	switch {
	case id == "":
		return HomeItem{}, false
	case strings.HasPrefix(id, "UC"):
		artist := Artist{ID: id, Name: orUnknown(title)}
		return HomeItem{Kind: KindArtist, Artist: &artist}, true
	case isAlbumBrowseID(id):
		album := Album{ID: id, Title: orUnknown(title), Artists: artists, Thumbnail: thumb}
		return HomeItem{Kind: KindAlbum, Album: &album}, true
	default:
		playlist := Playlist{ID: id, Title: orUnknown(title), Thumbnail: thumb}
		if len(artists) > 0 {
			playlist.Author = artists[len(artists)-1].Name
		}
		return HomeItem{Kind: KindPlaylist, Playlist: &playlist}, true
	}
}

// parseSongRow converts a responsive list row into a Song. Rows with no
// resolvable video id are not playable tracks and are skipped.
func parseSongRow(row map[string]any) (Song, bool) {
	id := videoID(row)
	if id == "" {
		return Song{}, false
	}
	song := Song{
		ID:        id,
		Title:     orUnknown(titleText(row)),
		Artists:   artistsFromRuns(flexColumnRuns(row, 1)),
		Album:     albumFromRow(row),
		Duration:  durationSeconds(row),
		Thumbnail: bestThumbnail(row),
		Feedback:  feedbackTokens(row),
	}
	return song, true
}

// albumFromRow reads the album link column of a list row. Only MPRE/OLAK
// browse targets are albums; other targets in that column are different
// page kinds and are dropped, not surfaced as malformed albums.
func albumFromRow(row map[string]any) *Album {
	for _, r := range flexColumnRuns(row, 2) {
		run, ok := r.(map[string]any)
		if !ok {
			continue
		}
		id := digString(run, "navigationEndpoint", "browseEndpoint", "browseId")
		if !isAlbumBrowseID(id) {
			continue
		}
		title, _ := run["text"].(string)
		return &Album{ID: id, Title: title}
	}
	return nil
}

// pageHeader is the parsed detail-page header shared by artist and playlist
// pages.
type pageHeader struct {
	name        string
	description string
	thumbnail   string
	subtitle    []any
	node        map[string]any
}

// detailHeaderShapes in fixed priority: the immersive header first, the
// visual header only when the immersive one yielded no name, then the plain
// detail header some playlist pages use. Shapes are tried, never merged.
var detailHeaderShapes = []string{
	"musicImmersiveHeaderRenderer",
	"musicVisualHeaderRenderer",
	"musicDetailHeaderRenderer",
}

func parsePageHeader(doc map[string]any) pageHeader {
	for _, shape := range detailHeaderShapes {
		node := digMap(doc, "header", shape)
		if node == nil {
			continue
		}
		name := textRun(dig(node, "title"))
		if name == "" {
			continue
		}
		return pageHeader{
			name:        name,
			description: textRun(dig(node, "description")),
			thumbnail:   bestThumbnail(node),
			subtitle:    digList(node, "subtitle", "runs"),
			node:        node,
		}
	}
	return pageHeader{}
}
