package ytmusic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `{
	"contents": {"tabbedSearchResultsRenderer": {"tabs": [{"tabRenderer": {"content":
	{"sectionListRenderer": {"contents": [
		{"musicShelfRenderer": {
			"title": {"runs": [{"text": "Songs"}]},
			"contents": [
				{"musicResponsiveListItemRenderer": {
					"flexColumns": [
						{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
							{"text": "Karma Police", "navigationEndpoint": {"watchEndpoint": {"videoId": "vidKarma"}}}
						]}}},
						{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
							{"text": "Radiohead", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCr4dio"}}}
						]}}}
					],
					"fixedColumns": [
						{"musicResponsiveListItemFixedColumnRenderer": {"text": {"runs": [{"text": "4:24"}]}}}
					]
				}}
			]
		}},
		{"musicShelfRenderer": {
			"title": {"runs": [{"text": "Albums"}]},
			"contents": [
				{"musicResponsiveListItemRenderer": {
					"flexColumns": [
						{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "OK Computer"}]}}},
						{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
							{"text": "Radiohead", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCr4dio"}}}
						]}}}
					],
					"navigationEndpoint": {"browseEndpoint": {"browseId": "MPREb_okc"}}
				}}
			]
		}},
		{"musicShelfRenderer": {
			"title": {"runs": [{"text": "Artists"}]},
			"contents": [
				{"musicResponsiveListItemRenderer": {
					"flexColumns": [
						{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Radiohead"}]}}}
					],
					"navigationEndpoint": {"browseEndpoint": {"browseId": "UCr4dio"}}
				}}
			]
		}},
		{"musicShelfRenderer": {
			"title": {"runs": [{"text": "Community playlists"}]},
			"contents": [
				{"musicResponsiveListItemRenderer": {
					"flexColumns": [
						{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Radiohead Essentials"}]}}}
					],
					"navigationEndpoint": {"browseEndpoint": {"browseId": "VLPLessentials"}}
				}},
				{"musicResponsiveListItemRenderer": {
					"flexColumns": [
						{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Unknown target kind"}]}}}
					],
					"navigationEndpoint": {"browseEndpoint": {"browseId": "FEsomething"}}
				}}
			]
		}}
	]}}}}]}}
}`

func TestParseSearch(t *testing.T) {
	out := parseSearch(mustDoc(t, searchFixture))

	require.Len(t, out.Songs, 1)
	assert.Equal(t, "vidKarma", out.Songs[0].ID)
	assert.Equal(t, "Karma Police", out.Songs[0].Title)
	assert.Equal(t, 264, out.Songs[0].Duration)

	require.Len(t, out.Albums, 1)
	assert.Equal(t, "MPREb_okc", out.Albums[0].ID)
	assert.Equal(t, "OK Computer", out.Albums[0].Title)
	require.Len(t, out.Albums[0].Artists, 1)
	assert.Equal(t, "Radiohead", out.Albums[0].Artists[0].Name)

	require.Len(t, out.Artists, 1)
	assert.Equal(t, "UCr4dio", out.Artists[0].ID)
	assert.Equal(t, "Radiohead", out.Artists[0].Name)

	require.Len(t, out.Playlists, 1, "unrecognized browse prefixes are dropped")
	assert.Equal(t, "VLPLessentials", out.Playlists[0].ID)
}

func TestParseSearch_EmptyResponse(t *testing.T) {
	out := parseSearch(mustDoc(t, `{}`))
	assert.Empty(t, out.Songs)
	assert.Empty(t, out.Albums)
	assert.Empty(t, out.Artists)
	assert.Empty(t, out.Playlists)
}

func TestSearch_EndToEnd(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&body)
		fmt.Fprint(w, searchFixture)
	}))
	defer srv.Close()

	c := newTestClient(srv, nil)
	out, err := c.Search(context.Background(), "radiohead")
	require.NoError(t, err)

	assert.Equal(t, "radiohead", digString(body, "query"))
	assert.Len(t, out.Songs, 1)
	assert.Len(t, out.Artists, 1)
}
