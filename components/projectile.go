package components

import (
	cfg "github.com/automoto/skybreaker/config"
	"github.com/yohamta/donburi"
)

// BulletData marks a projectile. Owner is the player or enemy that fired it.
type BulletData struct {
	Owner donburi.Entity
	Side  cfg.Side
}

var Bullet = donburi.NewComponentType[BulletData]()
