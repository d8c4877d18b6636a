// Package storage persists preferences, finished games and statistics in BadgerDB.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Storage keys
const (
	keyPreferences = "prefs"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
	keyGameSeq     = "seq:game"
	gamePrefix     = "game:"
)

// Result strings stored with each game.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultAbandoned = "*"
)

// Preferences stores user settings
type Preferences struct {
	Username       string    `json:"username"`
	FlipBoard      bool      `json:"flip_board"`
	ShowLegalMoves bool      `json:"show_legal_moves"`
	SoundEnabled   bool      `json:"sound_enabled"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		Username:       "Player",
		ShowLegalMoves: true,
		SoundEnabled:   true,
		LastPlayed:     time.Now(),
	}
}

// Stats stores totals over all recorded games
type Stats struct {
	GamesPlayed   int           `json:"games_played"`
	WhiteWins     int           `json:"white_wins"`
	BlackWins     int           `json:"black_wins"`
	Stalemates    int           `json:"stalemates"`
	Abandoned     int           `json:"abandoned"`
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// WhiteWinRate returns the share of decisive games won by white as a percentage (0-100)
func (s *Stats) WhiteWinRate() float64 {
	decisive := s.WhiteWins + s.BlackWins
	if decisive == 0 {
		return 0
	}
	return float64(s.WhiteWins) / float64(decisive) * 100
}

// GameRecord is a finished or abandoned game.
type GameRecord struct {
	ID         uint64    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Result     string    `json:"result"`
	Moves      []string  `json:"moves"`    // coordinate form, e.g. "e2e4"
	Notation   []string  `json:"notation"` // as shown in the move list
}

// Duration returns how long the game lasted.
func (r *GameRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db  *badger.DB
	seq *badger.Sequence
}

// NewStorage opens the database under dataDir, or under the platform data
// directory when dataDir is empty.
func NewStorage(dataDir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the Storage.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	seq, err := db.GetSequence([]byte(keyGameSeq), 16)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("game sequence: %w", err)
	}

	return &Storage{db: db, seq: seq}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	if s.seq != nil {
		if err := s.seq.Release(); err != nil {
			s.db.Close()
			return err
		}
	}
	return s.db.Close()
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, keyPreferences, prefs)
	})
	if errors.Is(err, ErrNotFound) {
		return prefs, nil
	}

	return prefs, err
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, keyStats, stats)
	})
	if errors.Is(err, ErrNotFound) {
		return stats, nil
	}

	return stats, err
}

// RecordGame assigns rec an ID, stores it and updates the statistics in one transaction.
func (s *Storage) RecordGame(rec *GameRecord) error {
	next, err := s.seq.Next()
	if err != nil {
		return fmt.Errorf("next game id: %w", err)
	}
	rec.ID = next + 1

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		stats := &Stats{}
		if err := getJSON(txn, keyStats, stats); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		stats.GamesPlayed++
		stats.TotalPlayTime += rec.Duration()
		switch rec.Result {
		case ResultWhiteWins:
			stats.WhiteWins++
		case ResultBlackWins:
			stats.BlackWins++
		case ResultDraw:
			stats.Stalemates++
		default:
			stats.Abandoned++
		}

		statsData, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(keyStats), statsData); err != nil {
			return err
		}
		return txn.Set(gameKey(rec.ID), data)
	})
}

// Game loads a single game record.
func (s *Storage) Game(id uint64) (*GameRecord, error) {
	rec := &GameRecord{}
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, string(gameKey(id)), rec)
	})
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", id, err)
	}
	return rec, nil
}

// RecentGames returns up to n games, newest first.
func (s *Storage) RecentGames(n int) ([]*GameRecord, error) {
	var games []*GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(gamePrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		seek := append([]byte(gamePrefix), 0xff)
		for it.Seek(seek); it.Valid() && len(games) < n; it.Next() {
			rec := &GameRecord{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			})
			if err != nil {
				return err
			}
			games = append(games, rec)
		}
		return nil
	})

	return games, err
}

func gameKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%016x", gamePrefix, id))
}

// getJSON decodes the value under key into v, mapping a missing key to ErrNotFound.
func getJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}
