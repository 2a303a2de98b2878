package ytmusic

import (
	"context"
	"strings"
)

// Search runs a full search and groups the results by entity kind.
func (c *Client) Search(ctx context.Context, query string) (SearchResponse, error) {
	doc, err := c.execute(ctx, "search", map[string]any{"query": query}, c.ttl.Search)
	if err != nil {
		return SearchResponse{}, err
	}
	return parseSearch(doc), nil
}

func parseSearch(doc map[string]any) SearchResponse {
	var out SearchResponse
	sections := digList(doc, "contents", "tabbedSearchResultsRenderer", "tabs", 0,
		"tabRenderer", "content", "sectionListRenderer", "contents")
	for _, s := range sections {
		shelf := digMap(s, "musicShelfRenderer")
		if shelf == nil {
			continue
		}
		for _, c := range digList(shelf, "contents") {
			row := digMap(c, "musicResponsiveListItemRenderer")
			if row == nil {
				continue
			}
			classifySearchRow(row, &out)
		}
	}
	return out
}

// classifySearchRow sorts one result row into the right list: playable rows
// are songs; for the rest the browse target's prefix decides. Rows with
// neither a video id nor a recognized browse target are dropped.
func classifySearchRow(row map[string]any, out *SearchResponse) {
	if song, ok := parseSongRow(row); ok {
		out.Songs = append(out.Songs, song)
		return
	}

	id := browseID(row)
	title := orUnknown(titleText(row))
	switch {
	case strings.HasPrefix(id, "UC"):
		out.Artists = append(out.Artists, Artist{ID: id, Name: title})
	case isAlbumBrowseID(id):
		out.Albums = append(out.Albums, Album{
			ID:        id,
			Title:     title,
			Artists:   artistsFromRuns(flexColumnRuns(row, 1)),
			Thumbnail: bestThumbnail(row),
		})
	case strings.HasPrefix(id, "VL"), strings.HasPrefix(id, "PL"):
		out.Playlists = append(out.Playlists, Playlist{
			ID:        id,
			Title:     title,
			Thumbnail: bestThumbnail(row),
		})
	}
}
