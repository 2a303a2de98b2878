package service

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cangzhang/kaset/internal/realtime"
	"github.com/cangzhang/kaset/internal/ytmusic"
)

// Music is the slice of the music client the HTTP layer consumes.
type Music interface {
	Home(ctx context.Context) ([]ytmusic.HomeSection, error)
	Explore(ctx context.Context) ([]ytmusic.HomeSection, error)
	Search(ctx context.Context, query string) (ytmusic.SearchResponse, error)
	Playlist(ctx context.Context, id string) (ytmusic.PlaylistDetail, error)
	Artist(ctx context.Context, id string) (ytmusic.ArtistDetail, error)
	Rate(ctx context.Context, videoID string, rating ytmusic.Rating) error
	EditLibrary(ctx context.Context, feedbackToken string) error
}

type Server struct {
	music  Music
	events *Events
}

func NewServer(music Music, events *Events) *Server {
	return &Server{
		music:  music,
		events: events,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)
	r.Get("/ws", s.handleWS)

	r.Get("/home", s.handleHome)
	r.Get("/explore", s.handleExplore)
	r.Get("/search", s.handleSearch)
	r.Get("/playlists/{id}", s.handleGetPlaylist)
	r.Get("/artists/{id}", s.handleGetArtist)

	r.Post("/songs/{id}/rate", s.handleRateSong)
	r.Post("/library", s.handleEditLibrary)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "kaset",
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	realtime.ServeWS(s.events.hub, w, r)
}
