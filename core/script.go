package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/dietowin/physics"
)

// ErrBadScript is returned for input scripts that cannot be parsed.
var ErrBadScript = errors.New("core: bad input script")

type scriptStep struct {
	in     physics.Input
	frames int
}

// Script is a fixed sequence of held inputs, written as whitespace
// separated steps like "right*60 jump+right*10 none*30". A step without a
// count lasts one frame. Frames past the end hold nothing.
type Script struct {
	steps []scriptStep
	total int
}

// ParseScript parses the textual input script format.
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	for _, tok := range strings.Fields(src) {
		keys, count, hasCount := strings.Cut(tok, "*")
		frames := 1
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad count in %q", ErrBadScript, tok)
			}
			frames = n
		}

		var in physics.Input
		for _, key := range strings.Split(keys, "+") {
			switch strings.ToLower(key) {
			case "left", "l":
				in.Left = true
			case "right", "r":
				in.Right = true
			case "jump", "j":
				in.Jump = true
			case "none", "-":
			default:
				return nil, fmt.Errorf("%w: unknown key %q", ErrBadScript, key)
			}
		}
		s.steps = append(s.steps, scriptStep{in: in, frames: frames})
		s.total += frames
	}
	return s, nil
}

// Frames is the number of frames the script covers.
func (s *Script) Frames() int {
	return s.total
}

// Input returns the held input for frame.
func (s *Script) Input(frame int) physics.Input {
	for _, st := range s.steps {
		if frame < st.frames {
			return st.in
		}
		frame -= st.frames
	}
	return physics.Input{}
}
