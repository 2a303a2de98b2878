package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Key derives the cache key for an API request: the endpoint name, a colon,
// and the SHA-256 of the JSON-encoded body. encoding/json writes map keys in
// sorted order at every nesting depth, so two bodies with the same content
// hash identically no matter how they were assembled. The endpoint prefix is
// what makes prefix invalidation possible ("browse:" wipes all browse
// responses at once).
func Key(endpoint string, body map[string]any) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("cache key for %s: %w", endpoint, err)
	}
	sum := sha256.Sum256(data)
	return endpoint + ":" + hex.EncodeToString(sum[:]), nil
}
