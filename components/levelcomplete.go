package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool

	// Seconds and Attempts describe the clearing run.
	Seconds  float64
	Attempts int

	// NextRequested asks the scene to load the following level.
	NextRequested bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
