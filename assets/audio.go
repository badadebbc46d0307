package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/skybreaker/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog"
)

// SoundBank plays named cues from decoded sound files. Cues with no file,
// or a file that fails to decode, are silent.
type SoundBank struct {
	context     *audio.Context
	fsys        fs.FS
	sampleRate  int
	volume      float64
	multipliers map[string]float64
	cache       map[string][]byte // decoded PCM per cue
	missing     map[string]bool
	logger      zerolog.Logger
}

// NewSoundBank creates a bank reading cues from fsys. A nil context still
// resolves and decodes cues but never plays them.
func NewSoundBank(ctx *audio.Context, fsys fs.FS, volume float64, logger zerolog.Logger) *SoundBank {
	b := &SoundBank{
		context:     ctx,
		fsys:        fsys,
		sampleRate:  cfg.Audio.SampleRate,
		volume:      volume,
		multipliers: make(map[string]float64),
		cache:       make(map[string][]byte),
		missing:     make(map[string]bool),
		logger:      logger,
	}
	if ctx != nil {
		b.sampleRate = ctx.SampleRate()
	}
	for id, mult := range cfg.Sound.VolumeMultipliers {
		b.multipliers[id.Cue()] = mult
	}
	return b
}

// Preload decodes every configured cue so the first play does not stall.
func (b *SoundBank) Preload() {
	for _, cue := range cfg.Sound.Cues {
		_, _ = b.load(cue)
	}
}

// SetVolume sets the master effect volume in [0,1].
func (b *SoundBank) SetVolume(v float64) {
	b.volume = v
}

// Loaded reports whether a cue has decoded audio.
func (b *SoundBank) Loaded(cue string) bool {
	_, ok := b.cache[cue]
	return ok
}

// Play starts a new player for the cue.
func (b *SoundBank) Play(cue string) {
	if b.volume <= 0 {
		return
	}
	data, ok := b.load(cue)
	if !ok || b.context == nil {
		return
	}

	player, err := b.context.NewPlayer(bytes.NewReader(data))
	if err != nil {
		b.logger.Warn().Err(err).Str("cue", cue).Msg("failed to create sound player")
		return
	}
	volume := b.volume * cfg.Audio.DefaultSFXVol
	if mult, ok := b.multipliers[cue]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// load returns the cached PCM for a cue, decoding it on first use. A
// failure is logged once and remembered.
func (b *SoundBank) load(cue string) ([]byte, bool) {
	if data, ok := b.cache[cue]; ok {
		return data, true
	}
	if b.missing[cue] {
		return nil, false
	}

	data, err := b.decodeCue(cue)
	if err != nil {
		b.missing[cue] = true
		b.logger.Warn().Err(err).Str("cue", cue).Msg("sound cue unavailable")
		return nil, false
	}
	b.cache[cue] = data
	return data, true
}

func (b *SoundBank) decodeCue(cue string) ([]byte, error) {
	if b.fsys == nil {
		return nil, fmt.Errorf("no sound directory for cue %s", cue)
	}
	for _, ext := range cfg.Sound.Extensions {
		name := path.Join(cfg.Sound.Dir, cue+ext)
		data, err := fs.ReadFile(b.fsys, name)
		if err != nil {
			continue
		}
		return decode(name, data, b.sampleRate)
	}
	return nil, fmt.Errorf("no sound file for cue %s in %s", cue, cfg.Sound.Dir)
}

func decode(name string, data []byte, sampleRate int) ([]byte, error) {
	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}
