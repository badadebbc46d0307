package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Boss         = donburi.NewTag().SetName("Boss")
	PlayerBullet = donburi.NewTag().SetName("PlayerBullet")
	EnemyBullet  = donburi.NewTag().SetName("EnemyBullet")
	Item         = donburi.NewTag().SetName("Item")
	Explosion    = donburi.NewTag().SetName("Explosion")
)

// Resolv tags for collision
const (
	ResolvPlayer       = "Player"
	ResolvPlayerHitbox = "PlayerHitbox"
	ResolvEnemy        = "Enemy"
	ResolvPlayerBullet = "PlayerBullet"
	ResolvEnemyBullet  = "EnemyBullet"
	ResolvItem         = "Item"
)
