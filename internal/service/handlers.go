package service

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cangzhang/kaset/internal/ytmusic"
)

// handleHome returns the personalized home feed.
// GET /home
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	sections, err := s.music.Home(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sections": sections,
	})
}

// handleExplore returns the explore feed with charts and new releases.
// GET /explore
func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	sections, err := s.music.Explore(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sections": sections,
	})
}

// handleSearch runs a catalog search.
// GET /search?query=...
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("query"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	if len(q) > 200 {
		writeError(w, http.StatusBadRequest, "query is too long")
		return
	}

	results, err := s.music.Search(r.Context(), q)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// handleGetPlaylist returns one playlist or album with its tracks.
// GET /playlists/{id}
func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := s.music.Playlist(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// handleGetArtist returns an artist page with top songs and albums.
// GET /artists/{id}
func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := s.music.Artist(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// handleRateSong applies a like, dislike or rating reset to a song.
// POST /songs/{id}/rate
func (s *Server) handleRateSong(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "id")

	var req struct {
		Rating string `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	rating := ytmusic.Rating(req.Rating)
	switch rating {
	case ytmusic.RatingLike, ytmusic.RatingDislike, ytmusic.RatingNone:
	default:
		writeError(w, http.StatusBadRequest, "rating must be like, dislike or none")
		return
	}

	if err := s.music.Rate(r.Context(), videoID, rating); err != nil {
		writeUpstreamError(w, err)
		return
	}

	s.events.Publish(r.Context(), "library.updated", map[string]any{
		"videoId": videoID,
		"rating":  string(rating),
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
	})
}

// handleEditLibrary adds or removes a song from the library using the
// feedback token delivered with the song.
// POST /library
func (s *Server) handleEditLibrary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FeedbackToken string `json:"feedbackToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.FeedbackToken) == "" {
		writeError(w, http.StatusBadRequest, "feedbackToken is required")
		return
	}

	if err := s.music.EditLibrary(r.Context(), req.FeedbackToken); err != nil {
		writeUpstreamError(w, err)
		return
	}

	s.events.Publish(r.Context(), "library.updated", map[string]any{
		"feedbackToken": req.FeedbackToken,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
	})
}
