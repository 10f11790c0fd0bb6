package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is one published version of the document.
//
// A snapshot is immutable once built; a reload publishes a new one.
type Snapshot struct {
	// Digest identifies the content. Equal documents share a digest.
	Digest string `json:"digest"`

	// Source names where the document came from: "builtin" or "file:<path>".
	Source string `json:"source"`

	// LoadedAt is the time the document was first published.
	LoadedAt time.Time `json:"loaded_at"`

	Site *Site `json:"site"`
}

// NewSnapshot encodes site canonically and derives its digest.
func NewSnapshot(site *Site, source string, now time.Time) (*Snapshot, error) {
	digest, err := Digest(site)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Digest:   digest,
		Source:   source,
		LoadedAt: now,
		Site:     site,
	}, nil
}

// Digest returns the hex xxhash64 of the JSON encoding of site.
// encoding/json sorts map keys, so the encoding is canonical.
func Digest(site *Site) (string, error) {
	data, err := json.Marshal(site)
	if err != nil {
		return "", fmt.Errorf("failed to encode site: %w", err)
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}
