// Package assets embeds the level sources and generates sound effects.
// It stays free of ebitengine so the level set can be checked headless.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// ErrUnknownLevel is returned for a level name with no embedded source.
var ErrUnknownLevel = errors.New("assets: unknown level")

// LevelLoader reads level layouts from a file system, the embedded one by
// default.
type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS reads levels from fsys instead, using the same paths.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// Load parses the level registered under name.
func (l *LevelLoader) Load(name string) (*leveldata.Layout, error) {
	i := config.LevelIndex(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	entry := config.Levels[i]
	layout, err := leveldata.Load(l.fsys, entry.Path, entry.Name, config.Level.Columns, config.Level.Rows)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	// The registry name wins so dispatch keys always match.
	layout.Name = entry.Name
	return layout, nil
}

// MustLoadLevel is Load for startup code.
func (l *LevelLoader) MustLoadLevel(name string) *leveldata.Layout {
	layout, err := l.Load(name)
	if err != nil {
		panic(err)
	}
	return layout
}

// MustLoadLevels loads every registered level in play order.
func (l *LevelLoader) MustLoadLevels() []*leveldata.Layout {
	levels := make([]*leveldata.Layout, 0, len(config.Levels))
	for _, entry := range config.Levels {
		levels = append(levels, l.MustLoadLevel(entry.Name))
	}
	return levels
}
