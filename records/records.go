// Package records keeps the player's best results between runs.
package records

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/skybreaker/config"
	"github.com/rs/zerolog"
)

// Item is the store item name records are saved under.
const Item = "records"

// Records is the data stored on disk.
type Records struct {
	BestScore int `json:"bestScore"`
	BestStage int `json:"bestStage"`
	Rounds    int `json:"rounds"`
	Victories int `json:"victories"`
}

// Result is how one round ended.
type Result struct {
	Scores  []int
	Stage   int
	Victory bool
}

// Store reads and writes Records through a settings source.
type Store struct {
	source  config.Source
	logger  zerolog.Logger
	current Records
}

// Open loads the stored records. Unreadable data is reported and replaced
// by empty records.
func Open(source config.Source, logger zerolog.Logger) *Store {
	s := &Store{source: source, logger: logger}

	data, err := source.Read()
	if err != nil {
		logger.Warn().Err(err).Msg("could not load records")
		return s
	}
	if len(data) == 0 {
		return s
	}
	if err := json.Unmarshal(data, &s.current); err != nil {
		logger.Warn().Err(err).Msg("could not parse saved records")
		s.current = Records{}
	}
	return s
}

// Current returns the records as last loaded or saved.
func (s *Store) Current() Records {
	return s.current
}

// Add folds a finished round into the records and saves them. newBest is
// true when the round beat the best score.
func (s *Store) Add(r Result) (rec Records, newBest bool, err error) {
	rec = s.current
	rec.Rounds++
	if r.Victory {
		rec.Victories++
	}
	if r.Stage > rec.BestStage {
		rec.BestStage = r.Stage
	}
	for _, score := range r.Scores {
		if score > rec.BestScore {
			rec.BestScore = score
			newBest = true
		}
	}
	s.current = rec

	data, err := json.Marshal(rec)
	if err != nil {
		return rec, newBest, fmt.Errorf("failed to encode records: %w", err)
	}
	if err := s.source.Write(data); err != nil {
		return rec, newBest, err
	}
	return rec, newBest, nil
}
