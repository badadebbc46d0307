package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"
)

// Source is the byte store behind a settings snapshot. Read returns nil
// data and no error when nothing has been stored yet.
type Source interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileSource stores settings in a file on disk.
type FileSource struct {
	Path string
}

func (f FileSource) Read() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", f.Path, err)
	}
	return data, nil
}

func (f FileSource) Write(data []byte) error {
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", f.Path, err)
	}
	return nil
}

const settingsItem = "settings"

// StoreSource keeps one item of the per-user gdata store.
type StoreSource struct {
	manager *gdata.Manager
	item    string
}

// OpenStore opens the gdata store for the given application name. The
// returned source holds the settings item.
func OpenStore(appName string) (*StoreSource, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	return &StoreSource{manager: m, item: settingsItem}, nil
}

// Item returns a source for another item in the same store.
func (s *StoreSource) Item(name string) *StoreSource {
	return &StoreSource{manager: s.manager, item: name}
}

func (s *StoreSource) Read() ([]byte, error) {
	if !s.manager.ItemExists(s.item) {
		return nil, nil
	}
	data, err := s.manager.LoadItem(s.item)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s item: %w", s.item, err)
	}
	return data, nil
}

func (s *StoreSource) Write(data []byte) error {
	if err := s.manager.SaveItem(s.item, data); err != nil {
		return fmt.Errorf("failed to save %s item: %w", s.item, err)
	}
	return nil
}

// MemorySource is an in-memory Source, used when no store is available.
type MemorySource struct {
	Data []byte
}

func (m *MemorySource) Read() ([]byte, error) {
	return m.Data, nil
}

func (m *MemorySource) Write(data []byte) error {
	m.Data = append([]byte(nil), data...)
	return nil
}

// Loader owns the current settings snapshot and re-reads its source on
// demand. A bad reload keeps the previous snapshot.
type Loader struct {
	source  Source
	logger  zerolog.Logger
	current Settings
	raw     []byte
}

// NewLoader reads the source once. An empty source is seeded with the
// defaults; unreadable or invalid contents fall back to the defaults and
// are reported as a warning.
func NewLoader(source Source, logger zerolog.Logger) (*Loader, error) {
	l := &Loader{
		source:  source,
		logger:  logger,
		current: DefaultSettings(),
	}

	data, err := source.Read()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		seed, err := MarshalSettings(l.current)
		if err != nil {
			return nil, err
		}
		if err := source.Write(seed); err != nil {
			logger.Warn().Err(err).Msg("could not write default settings")
		}
		l.raw = seed
		return l, nil
	}

	l.raw = data
	s, err := ParseSettings(data)
	if err != nil {
		logger.Warn().Err(err).Msg("settings rejected, using defaults")
		return l, nil
	}
	l.current = s
	return l, nil
}

// Current returns the active snapshot.
func (l *Loader) Current() Settings {
	return l.current
}

// Reload re-reads the source. changed is true only when a new snapshot was
// accepted.
func (l *Loader) Reload() (Settings, bool, error) {
	data, err := l.source.Read()
	if err != nil {
		return l.current, false, err
	}
	if len(data) == 0 || bytes.Equal(data, l.raw) {
		return l.current, false, nil
	}
	l.raw = data

	s, err := ParseSettings(data)
	if err != nil {
		l.logger.Warn().Err(err).Msg("settings reload rejected, keeping previous")
		return l.current, false, err
	}
	l.current = s
	return s, true, nil
}

// Save writes a snapshot to the source and makes it current.
func (l *Loader) Save(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := MarshalSettings(s)
	if err != nil {
		return err
	}
	if err := l.source.Write(data); err != nil {
		return err
	}
	l.raw = data
	l.current = s
	return nil
}
