package systems

import (
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio delivers the cues queued this tick to the sink
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.Played = audioData.Played[:0]
	for _, soundID := range audioData.PendingSFX {
		cue := soundID.Cue()
		if cue == "" {
			continue
		}
		if audioData.Sink != nil {
			audioData.Sink.Play(cue)
		}
		audioData.Played = append(audioData.Played, soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// SetAudioSink replaces the sink cues are delivered to. A nil sink mutes.
func SetAudioSink(e *ecs.ECS, sink components.AudioSink) {
	GetOrCreateAudio(e).Sink = sink
}
