package components

import (
	"time"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Slot        int // 0 is the primary player
	Score       int
	WeaponLevel int
	LastShot    time.Duration
	Hitbox      *resolv.Object // smaller than the sprite, kept centred on it
}

var Player = donburi.NewComponentType[PlayerData]()
