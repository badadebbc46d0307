package components

import (
	cfg "github.com/automoto/skybreaker/config"
	"github.com/yohamta/donburi"
)

// AudioSink plays a named cue. Implementations ignore unknown cues.
type AudioSink interface {
	Play(cue string)
}

// AudioData stores the sink and the cues queued this tick (singleton component)
type AudioData struct {
	Sink       AudioSink
	PendingSFX []cfg.SoundID
	Played     []cfg.SoundID // cues delivered last drain, kept for tests and debug overlays
}

var Audio = donburi.NewComponentType[AudioData]()
