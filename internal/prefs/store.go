// Package prefs persists the user's filter selections, favorites and theme
// flag in an opaque key-value store.
package prefs

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Persisted keys. These are part of the on-disk format; never rename them.
const (
	KeyFilters   = "qb_filters"
	KeyFavorites = "qb_favorites"
	KeyDarkMode  = "qb_darkmode"
)

const defaultSelector = "all"

// KV is the key-value collaborator that holds the serialized blobs.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Snapshot is the persisted subset of session state. The search term and
// the pagination cursor are deliberately absent.
type Snapshot struct {
	Topic         string
	Subtopic      string
	Difficulty    string
	Tags          []string
	FavoritesOnly bool
	Favorites     []string
	DarkMode      bool
}

// Defaults returns the snapshot used when nothing is stored.
func Defaults() Snapshot {
	return Snapshot{
		Topic:      defaultSelector,
		Subtopic:   defaultSelector,
		Difficulty: defaultSelector,
		Tags:       []string{},
		Favorites:  []string{},
	}
}

type filtersBlob struct {
	Topic         string   `json:"topic"`
	Subtopic      string   `json:"subtopic"`
	Difficulty    string   `json:"difficulty"`
	Tags          []string `json:"tags"`
	FavoritesOnly bool     `json:"favoritesOnly"`
}

// Store serializes snapshots into a KV.
type Store struct {
	kv     KV
	logger *slog.Logger
}

// NewStore wraps kv. A nil logger discards.
func NewStore(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{kv: kv, logger: logger}
}

// Save writes every persisted key. It stops at the first failing write.
func (s *Store) Save(snap Snapshot) error {
	tags := snap.Tags
	if tags == nil {
		tags = []string{}
	}
	filters, err := json.Marshal(filtersBlob{
		Topic:         snap.Topic,
		Subtopic:      snap.Subtopic,
		Difficulty:    snap.Difficulty,
		Tags:          tags,
		FavoritesOnly: snap.FavoritesOnly,
	})
	if err != nil {
		return fmt.Errorf("marshal filters: %w", err)
	}
	if err := s.kv.Set(KeyFilters, string(filters)); err != nil {
		return fmt.Errorf("save filters: %w", err)
	}

	favs := snap.Favorites
	if favs == nil {
		favs = []string{}
	}
	favorites, err := json.Marshal(favs)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := s.kv.Set(KeyFavorites, string(favorites)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}

	if err := s.kv.Set(KeyDarkMode, strconv.FormatBool(snap.DarkMode)); err != nil {
		return fmt.Errorf("save dark mode: %w", err)
	}
	return nil
}

// Load restores a snapshot. Missing, unreadable or corrupt keys fall back
// to their defaults independently; Load never fails.
func (s *Store) Load() Snapshot {
	snap := Defaults()

	if raw, ok := s.read(KeyFilters); ok {
		var blob filtersBlob
		if err := json.Unmarshal([]byte(raw), &blob); err != nil {
			s.logger.Warn("corrupt preference, using defaults",
				slog.String("key", KeyFilters), slog.String("error", err.Error()))
		} else {
			snap.Topic = orDefault(blob.Topic)
			snap.Subtopic = orDefault(blob.Subtopic)
			snap.Difficulty = orDefault(blob.Difficulty)
			if blob.Tags != nil {
				snap.Tags = blob.Tags
			}
			snap.FavoritesOnly = blob.FavoritesOnly
		}
	}

	if raw, ok := s.read(KeyFavorites); ok {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			s.logger.Warn("corrupt preference, using defaults",
				slog.String("key", KeyFavorites), slog.String("error", err.Error()))
		} else if ids != nil {
			snap.Favorites = ids
		}
	}

	if raw, ok := s.read(KeyDarkMode); ok {
		dark, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			s.logger.Warn("corrupt preference, using defaults",
				slog.String("key", KeyDarkMode), slog.String("error", err.Error()))
		} else {
			snap.DarkMode = dark
		}
	}

	return snap
}

func (s *Store) read(key string) (string, bool) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warn("read preference failed",
			slog.String("key", key), slog.String("error", err.Error()))
		return "", false
	}
	return raw, ok
}

func orDefault(v string) string {
	if strings.TrimSpace(v) == "" {
		return defaultSelector
	}
	return v
}
