package ytmusic

import "strings"

// Rating is the three-state track rating the service understands.
type Rating string

const (
	RatingLike    Rating = "like"
	RatingDislike Rating = "dislike"
	RatingNone    Rating = "none"
)

// placeholderIDPrefix marks artist ids invented locally because the upstream
// row carried no browse endpoint. A placeholder identifies the artist within
// one response only and must never be navigated to.
const placeholderIDPrefix = "local-"

// Artist is a credited performer. ID is the artist's channel browse id when
// the service supplied one, otherwise a generated placeholder.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Browsable reports whether ID addresses a real artist page, as opposed to a
// locally generated placeholder.
func (a Artist) Browsable() bool {
	return a.ID != "" && !strings.HasPrefix(a.ID, placeholderIDPrefix)
}

// Album is a navigable release. ID always carries an MPRE or OLAK prefix;
// browse targets with other prefixes are not albums and never get this far.
type Album struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Artists    []Artist `json:"artists,omitempty"`
	Thumbnail  string   `json:"thumbnailUrl,omitempty"`
	Year       string   `json:"year,omitempty"`
	TrackCount int      `json:"trackCount,omitempty"`
}

// FeedbackTokens flip a track's library membership when posted to the
// feedback endpoint: Add inserts, Remove deletes.
type FeedbackTokens struct {
	Add    string `json:"add,omitempty"`
	Remove string `json:"remove,omitempty"`
}

// Song is one playable track. ID is the stable video identifier: two Song
// values with the same ID are the same track, whatever page each was parsed
// from. Artists preserve the display order of the source row. Duration is in
// seconds, 0 when unknown.
type Song struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Artists   []Artist        `json:"artists"`
	Album     *Album          `json:"album,omitempty"`
	Duration  int             `json:"durationSeconds,omitempty"`
	Thumbnail string          `json:"thumbnailUrl,omitempty"`
	Feedback  *FeedbackTokens `json:"feedbackTokens,omitempty"`
}

// Playlist is a playlist as it appears on feeds and in search results.
type Playlist struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnailUrl,omitempty"`
	TrackCount  int    `json:"trackCount,omitempty"`
	Author      string `json:"author,omitempty"`
}

// PlaylistDetail is a playlist page with its tracks. IsAlbum distinguishes
// album-shaped playlists from user playlists; callers render the two
// differently (per-track thumbnails, duration totals).
type PlaylistDetail struct {
	Playlist
	Songs   []Song `json:"songs"`
	IsAlbum bool   `json:"isAlbum"`
}

// ArtistDetail is an artist page: profile plus top songs and releases, both
// in upstream order.
type ArtistDetail struct {
	Artist
	Description string  `json:"description,omitempty"`
	Songs       []Song  `json:"songs"`
	Albums      []Album `json:"albums"`
}

// HomeItemKind tags which entity a HomeItem carries.
type HomeItemKind string

const (
	KindSong     HomeItemKind = "song"
	KindAlbum    HomeItemKind = "album"
	KindArtist   HomeItemKind = "artist"
	KindPlaylist HomeItemKind = "playlist"
)

// HomeItem is one card in a feed shelf. Exactly one entity field is non-nil,
// named by Kind.
type HomeItem struct {
	Kind     HomeItemKind `json:"kind"`
	Song     *Song        `json:"song,omitempty"`
	Album    *Album       `json:"album,omitempty"`
	Artist   *Artist      `json:"artist,omitempty"`
	Playlist *Playlist    `json:"playlist,omitempty"`
}

// HomeSection is a titled shelf of heterogeneous items. IsChart selects the
// ranked rendering variant and is derived purely from the title.
type HomeSection struct {
	Title   string     `json:"title"`
	IsChart bool       `json:"isChart"`
	Items   []HomeItem `json:"items"`
}

// chartKeywords mark shelf titles the service renders as ranked charts.
var chartKeywords = []string{
	"chart", "charts", "top 100", "top 50", "trending", "daily top", "weekly top",
}

func isChartTitle(title string) bool {
	t := strings.ToLower(title)
	for _, kw := range chartKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// SearchResponse groups search results by entity kind. Each list preserves
// upstream order; the zero value is an empty result.
type SearchResponse struct {
	Songs     []Song     `json:"songs"`
	Albums    []Album    `json:"albums"`
	Artists   []Artist   `json:"artists"`
	Playlists []Playlist `json:"playlists"`
}
