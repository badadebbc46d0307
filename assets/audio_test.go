package assets

import (
	"bytes"
	"encoding/binary"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// pcmWav builds a 16-bit stereo WAV with n silent frames.
func pcmWav(n int) []byte {
	var buf bytes.Buffer
	dataSize := uint32(n * 4)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(44100))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(44100*4))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(4))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

func TestSoundBankDecodesAvailableCues(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/explosion.wav": {Data: pcmWav(64)},
	}
	bank := NewSoundBank(nil, fsys, 0.5, zerolog.Nop())
	bank.Preload()

	assert.True(t, bank.Loaded("explosion"))
	assert.False(t, bank.Loaded("victory"))
}

func TestSoundBankToleratesMissingAndBrokenCues(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/pickup.wav":  {Data: []byte("not a wav file")},
		"sounds/shield.mp3":  {Data: pcmWav(8)},
		"sounds/victory.ogg": {Data: []byte("garbage")},
	}
	bank := NewSoundBank(nil, fsys, 1, zerolog.Nop())

	assert.NotPanics(t, func() {
		bank.Play("pickup")
		bank.Play("shield")
		bank.Play("victory")
		bank.Play("no_such_cue")
		bank.Play("pickup")
	})
	assert.False(t, bank.Loaded("pickup"))
	assert.False(t, bank.Loaded("shield"), "unsupported extensions are not probed")
	assert.False(t, bank.Loaded("victory"))
	assert.True(t, bank.missing["pickup"])
}

func TestSoundBankWithoutFilesystem(t *testing.T) {
	bank := NewSoundBank(nil, nil, 1, zerolog.Nop())
	assert.NotPanics(t, func() { bank.Preload() })
	assert.False(t, bank.Loaded("explosion"))
}

func TestSoundBankMutedSkipsDecoding(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/explosion.wav": {Data: pcmWav(16)},
	}
	bank := NewSoundBank(nil, fsys, 0, zerolog.Nop())
	bank.Play("explosion")
	assert.False(t, bank.Loaded("explosion"))

	bank.SetVolume(0.3)
	bank.Play("explosion")
	assert.True(t, bank.Loaded("explosion"))
}

func TestImagePath(t *testing.T) {
	assert.Equal(t, "images/enemy_boss.png", ImagePath("enemy_boss"))
	assert.Contains(t, ImageKeys, "item_weapon")
	assert.Contains(t, ImageKeys, "player2")
}
