package components

import (
	"time"

	cfg "github.com/automoto/skybreaker/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind          cfg.EnemyKind
	Score         int
	Speed         float64
	ShootCooldown time.Duration // zero for kinds that never shoot
	LastShot      time.Duration
}

var Enemy = donburi.NewComponentType[EnemyData]()
