package service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cangzhang/kaset/internal/auth"
	"github.com/cangzhang/kaset/internal/ytmusic"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

// writeUpstreamError maps music client failures onto HTTP statuses.
// Credential problems surface as 401 so the UI can ask for fresh cookies;
// everything the upstream did wrong is a 502.
func writeUpstreamError(w http.ResponseWriter, err error) {
	if errors.Is(err, auth.ErrNotAuthenticated) || errors.Is(err, auth.ErrAuthExpired) {
		writeError(w, http.StatusUnauthorized, "music session is not authenticated")
		return
	}

	var apiErr *ytmusic.APIError
	var netErr *ytmusic.NetworkError
	var parseErr *ytmusic.ParseError
	switch {
	case errors.As(err, &apiErr), errors.As(err, &netErr), errors.As(err, &parseErr):
		writeError(w, http.StatusBadGateway, "music service request failed")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
