package snapshots

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/trades"
)

// ErrStoreNotConfigured is returned by a nil FSStore.
var ErrStoreNotConfigured = errors.New("snapshot store not configured")

// FSStore loads snapshots from JSON data files on disk.
type FSStore struct {
	basePath string
	now      func() time.Time
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath, now: time.Now}
}

// BasePath returns the directory the store reads from.
func (s *FSStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Load reads every collection file and returns them as one validated snapshot.
// Any missing or malformed required file fails the whole load; the trade-impact
// file is optional.
func (s *FSStore) Load(ctx context.Context) (Snapshot, error) {
	if s == nil {
		return Snapshot{}, ErrStoreNotConfigured
	}
	snap := Snapshot{Source: "fs"}

	targets := map[Kind]any{
		KindMVP:          &snap.MVP,
		KindChampionship: &snap.Championship,
		KindScoring:      &snap.Scoring,
		KindBench:        &snap.Bench,
	}
	for _, kind := range RequiredKinds {
		if err := ctx.Err(); err != nil {
			return Snapshot{}, err
		}
		if err := s.decodeFile(DataPath(s.basePath, kind), targets[kind]); err != nil {
			return Snapshot{}, fmt.Errorf("load %s: %w", kind, err)
		}
	}

	var trade trades.Input
	switch err := s.decodeFile(DataPath(s.basePath, KindTradeImpact), &trade); {
	case err == nil:
		snap.Trade = &trade
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Snapshot{}, fmt.Errorf("load %s: %w", KindTradeImpact, err)
	}

	if err := snap.Validate(); err != nil {
		return Snapshot{}, err
	}
	snap.LoadedAt = s.now().UTC()
	return snap, nil
}

// Files lists the JSON files present in the data directory.
func (s *FSStore) Files() ([]string, error) {
	if s == nil {
		return nil, ErrStoreNotConfigured
	}
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
