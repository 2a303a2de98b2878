package ytmusic

import (
	"context"
	"strconv"
	"strings"
)

// NormalizePlaylistID maps caller-facing playlist ids onto browse ids: user
// playlists take a VL prefix when it is absent; radio (RD), album
// (OLAK/MPRE) and channel (UC) ids pass through unchanged.
func NormalizePlaylistID(id string) string {
	switch {
	case strings.HasPrefix(id, "VL"),
		strings.HasPrefix(id, "RD"),
		strings.HasPrefix(id, "OLAK"),
		strings.HasPrefix(id, "MPRE"),
		strings.HasPrefix(id, "UC"):
		return id
	default:
		return "VL" + id
	}
}

// Playlist fetches a playlist page, or an album rendered as one, with its
// tracks in order.
func (c *Client) Playlist(ctx context.Context, id string) (PlaylistDetail, error) {
	browseID := NormalizePlaylistID(id)
	doc, err := c.execute(ctx, "browse", map[string]any{"browseId": browseID}, c.ttl.Playlist)
	if err != nil {
		return PlaylistDetail{}, err
	}
	return parsePlaylistDetail(doc, browseID), nil
}

func parsePlaylistDetail(doc map[string]any, browseID string) PlaylistDetail {
	header := parsePageHeader(doc)
	songs := playlistTracks(doc)

	count := trackCountFromHeader(header)
	if count == 0 {
		count = len(songs)
	}

	return PlaylistDetail{
		Playlist: Playlist{
			ID:          browseID,
			Title:       orUnknown(header.name),
			Description: header.description,
			Thumbnail:   header.thumbnail,
			TrackCount:  count,
			Author:      authorFromRuns(header.subtitle),
		},
		Songs:   songs,
		IsAlbum: isAlbumBrowseID(browseID),
	}
}

// playlistTracks walks the page's sections and collects every playable row,
// whichever shelf kind the page used for them.
func playlistTracks(doc map[string]any) []Song {
	var out []Song
	for _, s := range sectionList(doc) {
		section, ok := s.(map[string]any)
		if !ok {
			continue
		}
		contents := digList(section, "musicPlaylistShelfRenderer", "contents")
		if contents == nil {
			contents = digList(section, "musicShelfRenderer", "contents")
		}
		for _, c := range contents {
			row := digMap(c, "musicResponsiveListItemRenderer")
			if row == nil {
				continue
			}
			if song, ok := parseSongRow(row); ok {
				out = append(out, song)
			}
		}
	}
	return out
}

// trackCountFromHeader reads the "N songs" run off the header's second
// subtitle, falling back to the subtitle itself.
func trackCountFromHeader(header pageHeader) int {
	runs := digList(header.node, "secondSubtitle", "runs")
	if len(runs) == 0 {
		runs = header.subtitle
	}
	for _, r := range runs {
		text := digString(r, "text")
		if !strings.Contains(text, "song") && !strings.Contains(text, "track") {
			continue
		}
		if n := leadingInt(text); n > 0 {
			return n
		}
	}
	return 0
}

// leadingInt parses the integer prefix of strings like "120 songs",
// tolerating thousands separators.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == ',') {
		end++
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s[:end], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// authorFromRuns finds the owner in a header subtitle: the first run that
// links somewhere wins, else the second non-separator run (the first one is
// the page-kind label).
func authorFromRuns(runs []any) string {
	for _, r := range runs {
		if digString(r, "navigationEndpoint", "browseEndpoint", "browseId") != "" {
			return digString(r, "text")
		}
	}
	var plain []string
	for _, r := range runs {
		text := digString(r, "text")
		if text == "" || separatorRuns[text] {
			continue
		}
		plain = append(plain, text)
	}
	if len(plain) >= 2 {
		return plain[1]
	}
	return ""
}
