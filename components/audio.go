package components

import (
	cfg "github.com/automoto/dietowin/config"
	"github.com/yohamta/donburi"
)

// AudioData stores the sound effects queued this frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
