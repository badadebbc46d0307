package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
}

// Alive reports whether any lives remain.
func (l *LivesData) Alive() bool {
	return l.Lives > 0
}

var Lives = donburi.NewComponentType[LivesData]()
