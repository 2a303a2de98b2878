package ytmusic

import "context"

// Artist fetches an artist page: profile, top songs and releases.
func (c *Client) Artist(ctx context.Context, id string) (ArtistDetail, error) {
	doc, err := c.execute(ctx, "browse", map[string]any{"browseId": id}, c.ttl.Artist)
	if err != nil {
		return ArtistDetail{}, err
	}
	return parseArtistDetail(doc, id), nil
}

// parseArtistDetail walks an artist page. Songs come from the flat "top
// songs" shelf; albums and singles come from carousel shelves, filtered to
// real album browse targets.
func parseArtistDetail(doc map[string]any, id string) ArtistDetail {
	header := parsePageHeader(doc)
	detail := ArtistDetail{
		Artist:      Artist{ID: id, Name: orUnknown(header.name)},
		Description: header.description,
	}

	for _, s := range sectionList(doc) {
		section, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if shelf := digMap(section, "musicShelfRenderer"); shelf != nil {
			for _, c := range digList(shelf, "contents") {
				row := digMap(c, "musicResponsiveListItemRenderer")
				if row == nil {
					continue
				}
				if song, ok := parseSongRow(row); ok {
					detail.Songs = append(detail.Songs, song)
				}
			}
			continue
		}
		if shelf := digMap(section, "musicCarouselShelfRenderer"); shelf != nil {
			for _, c := range digList(shelf, "contents") {
				card := digMap(c, "musicTwoRowItemRenderer")
				if card == nil {
					continue
				}
				albumID := browseID(card)
				if !isAlbumBrowseID(albumID) {
					continue
				}
				detail.Albums = append(detail.Albums, Album{
					ID:        albumID,
					Title:     orUnknown(titleText(card)),
					Thumbnail: bestThumbnail(card),
					Year:      yearFromRuns(digList(card, "subtitle", "runs")),
				})
			}
		}
	}
	return detail
}

// yearFromRuns picks the four-digit year out of an album card subtitle.
func yearFromRuns(runs []any) string {
	for _, r := range runs {
		text := digString(r, "text")
		if len(text) == 4 && isDigits(text) {
			return text
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
