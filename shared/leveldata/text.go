package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseText reads the whitespace separated grid format: Cols*Rows tile
// codes in reading order. Lines starting with '#' are comments.
func ParseText(name string, r io.Reader, cols, rows int) (*Layout, error) {
	layout := newLayout(name, cols, rows)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, code := range strings.Fields(line) {
			if len(layout.Codes) == cols*rows {
				return nil, fmt.Errorf("%s: more than %d tiles: %w", name, cols*rows, ErrBadGrid)
			}
			layout.push(code)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level %s: %w", name, err)
	}
	if len(layout.Codes) != cols*rows {
		return nil, fmt.Errorf("%s: got %d tiles, want %d: %w", name, len(layout.Codes), cols*rows, ErrBadGrid)
	}
	return layout, nil
}
