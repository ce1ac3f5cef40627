// Package storage persists the game state as one JSON file per entity
// under a .buddypocket directory. Entities load independently so a
// corrupt counter file never takes the buddy down with it.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rezaimia/buddypocket/internal/engine"
	"github.com/rezaimia/buddypocket/internal/missions"
	"github.com/rezaimia/buddypocket/internal/pet"
)

// ErrNotInitialized means no buddy exists at the store location.
var ErrNotInitialized = errors.New("no buddy found, run init first")

// DirName is the state directory created next to a project or in the
// home directory.
const DirName = ".buddypocket"

const (
	buddyFile        = "buddy.json"
	capsFile         = "caps.json"
	shopFile         = "shop.json"
	passFile         = "pass.json"
	missionsFile     = "missions.json"
	achievementsFile = "achievements.json"
	scoresFile       = "scores.json"
	purchasesFile    = "purchases.json"
	widgetFile       = "widget.json"

	// ConfigFile holds the tunables, kept human-editable next to the
	// state files.
	ConfigFile = "config.toml"
)

// Store reads and writes one state directory.
type Store struct {
	Dir string
}

// Open binds a store to an existing or future state directory.
func Open(dir string) *Store { return &Store{Dir: dir} }

// Discover walks from startDir toward the filesystem root looking for a
// state directory, the same way version control finds its repository.
// When none exists it falls back to the home directory location,
// reporting whether that fallback already holds a buddy.
func Discover(startDir string) (*Store, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, false, fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, DirName)
		if _, err := os.Stat(filepath.Join(candidate, buddyFile)); err == nil {
			return Open(candidate), true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	global := GlobalDir()
	_, err = os.Stat(filepath.Join(global, buddyFile))
	return Open(global), err == nil, nil
}

// GlobalDir is the home-directory state location.
func GlobalDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DirName)
}

// ConfigPath is the tunables file inside the state directory.
func (s *Store) ConfigPath() string { return filepath.Join(s.Dir, ConfigFile) }

// Exists reports whether a buddy has been initialized here.
func (s *Store) Exists() bool {
	_, err := os.Stat(filepath.Join(s.Dir, buddyFile))
	return err == nil
}

// Load reads the full state. The buddy file is required; every other
// entity falls back to its zero value when missing or corrupt, and the
// engine rebuilds those on the next refresh.
func (s *Store) Load() (*engine.State, error) {
	st := &engine.State{}

	if err := s.readEntity(buddyFile, &st.Buddy); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}
	if st.Buddy == nil {
		return nil, ErrNotInitialized
	}
	if st.Buddy.CriticalSeen == nil {
		st.Buddy.CriticalSeen = make(map[pet.Need]bool)
	}

	// Optional entities. A missing or unreadable file costs that
	// day's counters, nothing more.
	_ = s.readEntity(capsFile, &st.Caps)
	_ = s.readEntity(shopFile, &st.Shop)
	_ = s.readEntity(passFile, &st.Pass)
	_ = s.readEntity(missionsFile, &st.Missions)
	_ = s.readEntity(achievementsFile, &st.Achievements)
	_ = s.readEntity(scoresFile, &st.HighScores)
	_ = s.readEntity(purchasesFile, &st.RecentPurchases)

	if len(st.Achievements) == 0 {
		st.Achievements = missions.AllAchievements()
	}
	return st, nil
}

// Save writes every entity and refreshes the widget snapshot.
func (s *Store) Save(st *engine.State) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	entities := []struct {
		name string
		v    any
	}{
		{buddyFile, st.Buddy},
		{capsFile, st.Caps},
		{shopFile, st.Shop},
		{passFile, st.Pass},
		{missionsFile, st.Missions},
		{achievementsFile, st.Achievements},
		{scoresFile, st.HighScores},
		{purchasesFile, st.RecentPurchases},
	}
	for _, e := range entities {
		if err := s.writeEntity(e.name, e.v); err != nil {
			return err
		}
	}
	return s.writeEntity(widgetFile, BuildWidget(st.Buddy))
}

func (s *Store) readEntity(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeEntity(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
