package snapshot

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chessbox/internal/engine"
)

// DefaultRelPath is the snapshot location under the XDG state directory.
const DefaultRelPath = "chessbox/game.json"

// Store keeps one snapshot in a file.
type Store struct {
	Path string
}

// NewStore returns a store at path, or at the default XDG state location
// when path is empty.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Store{Path: path}, nil
}

// DefaultPath returns the default snapshot file, creating its directory.
func DefaultPath() (string, error) {
	p, err := xdg.StateFile(DefaultRelPath)
	if err != nil {
		return "", fmt.Errorf("locating snapshot file: %w", err)
	}
	return p, nil
}

// Save writes the game to the store; saving a finished game clears it.
// The write goes to a temporary file in the same directory that is renamed
// over the old snapshot, so readers see either the previous snapshot or the
// new one.
func (s *Store) Save(g *engine.Game) error {
	if g.Over() {
		return s.Clear()
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".game-*.json")
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if err := FromGame(g).Encode(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load restores the stored game. It returns an error wrapping fs.ErrNotExist
// when there is nothing stored, and ErrCorruptSnapshot when the file cannot
// be restored.
func (s *Store) Load(opts ...engine.GameOption) (*engine.Game, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", s.Path, err)
	}
	g, err := snap.Restore(opts...)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", s.Path, err)
	}
	return g, nil
}

// LoadOrNew restores the stored game, or starts a new one when there is none
// or it cannot be restored. The game is never nil. The error explains why a
// stored snapshot was discarded; a missing snapshot is not an error.
func (s *Store) LoadOrNew(opts ...engine.GameOption) (*engine.Game, error) {
	g, err := s.Load(opts...)
	if err == nil {
		return g, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return engine.NewGame(opts...), nil
	}
	return engine.NewGame(opts...), err
}

// Clear removes the stored snapshot. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
