// Package leveldata parses level sources into a grid of tile codes.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import "errors"

// SpawnCode marks the player spawn tile in a grid.
const SpawnCode = "@"

// EmptyCode is written by the text format for empty tiles. Any code the
// catalog does not know is treated as empty too.
const EmptyCode = "0"

var (
	// ErrBadGrid is returned when a source does not hold Cols*Rows tiles.
	ErrBadGrid = errors.New("leveldata: grid size mismatch")
	// ErrUnknownFormat is returned for unsupported file extensions.
	ErrUnknownFormat = errors.New("leveldata: unknown level format")
)

// Layout is a level as a row-major grid of tile codes.
type Layout struct {
	Name  string
	Cols  int
	Rows  int
	Codes []string

	// Spawn tile, or -1 when the source has no spawn marker.
	SpawnCol int
	SpawnRow int
}

// Code returns the tile code at col,row, or EmptyCode when out of range.
func (l *Layout) Code(col, row int) string {
	if col < 0 || row < 0 || col >= l.Cols || row >= l.Rows {
		return EmptyCode
	}
	return l.Codes[row*l.Cols+col]
}

// HasSpawn reports whether the source placed a spawn marker.
func (l *Layout) HasSpawn() bool {
	return l.SpawnCol >= 0 && l.SpawnRow >= 0
}

func newLayout(name string, cols, rows int) *Layout {
	return &Layout{
		Name:     name,
		Cols:     cols,
		Rows:     rows,
		Codes:    make([]string, 0, cols*rows),
		SpawnCol: -1,
		SpawnRow: -1,
	}
}

// push appends the next code in reading order, recording the spawn marker.
func (l *Layout) push(code string) {
	if code == SpawnCode {
		i := len(l.Codes)
		l.SpawnCol, l.SpawnRow = i%l.Cols, i/l.Cols
		code = EmptyCode
	}
	if code == "" {
		code = EmptyCode
	}
	l.Codes = append(l.Codes, code)
}
