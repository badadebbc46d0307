package systems

import (
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/render"
	"github.com/automoto/skybreaker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const outlineWidth = 2

// Draw emits the whole frame to sink in painter's order.
func Draw(ecs *ecs.ECS, sink render.Sink) {
	DrawBackground(ecs, sink)
	drawTagged(ecs, sink, tags.Item)
	drawTagged(ecs, sink, tags.EnemyBullet)
	drawTagged(ecs, sink, tags.Enemy)
	DrawBossHealth(ecs, sink)
	drawTagged(ecs, sink, tags.PlayerBullet)
	DrawPlayers(ecs, sink)
	DrawExplosions(ecs, sink)
	DrawHUD(ecs, sink)
}

func DrawBackground(ecs *ecs.ECS, sink render.Sink) {
	width, height := playfield(ecs)
	components.Background.Each(ecs.World, func(e *donburi.Entry) {
		bg := components.Background.Get(e)
		for _, y := range []float64{bg.Y1, bg.Y2} {
			if sink.HasImage("background") {
				sink.DrawImage("background", 0, y, width, height, 1)
			} else {
				sink.FillRect(0, y, width, height, cfg.DarkSky)
			}
		}
	})
}

func drawTagged(ecs *ecs.ECS, sink render.Sink, tag *donburi.ComponentType[donburi.Tag]) {
	for _, e := range sortedEntries(ecs, tag) {
		drawSprite(sink, e, 1)
	}
}

// drawSprite draws the entity's image, or its fallback rectangle when the
// image is missing.
func drawSprite(sink render.Sink, e *donburi.Entry, alpha float64) {
	sprite := components.Sprite.Get(e)
	obj := components.Object.Get(e)

	if sink.HasImage(sprite.Key) {
		sink.DrawImage(sprite.Key, obj.X, obj.Y, obj.W, obj.H, alpha)
		return
	}
	sink.FillRect(obj.X, obj.Y, obj.W, obj.H, render.WithAlpha(sprite.Fallback, alpha))
	if sprite.Outline {
		sink.StrokeRect(obj.X, obj.Y, obj.W, obj.H, outlineWidth, render.WithAlpha(cfg.White, alpha))
	}
}

// DrawBossHealth draws the boss health bar centred at the top. Its fill
// turns orange in phase 2.
func DrawBossHealth(ecs *ecs.ECS, sink render.Sink) {
	enc := GetEncounter(ecs)
	if enc.Boss == nil || !enc.Boss.Valid() {
		return
	}
	width, _ := playfield(ecs)
	health := components.Health.Get(enc.Boss)
	boss := components.Boss.Get(enc.Boss)

	w, h := cfg.Boss.BarWidth, cfg.Boss.BarHeight
	x, y := (width-w)/2, cfg.Boss.BarY

	fill := cfg.Red
	if boss.Phase > 1 {
		fill = cfg.Orange
	}
	sink.FillRect(x, y, w, h, cfg.Gray)
	sink.FillRect(x, y, float64(int(health.Ratio()*w)), h, fill)
	sink.StrokeRect(x, y, w, h, outlineWidth, cfg.White)
}

// DrawPlayers draws living players with their shield bubble and blink.
func DrawPlayers(ecs *ecs.ECS, sink render.Sink) {
	t := tickTime(ecs)
	for _, e := range sortedEntries(ecs, components.Player) {
		if !components.Lives.Get(e).Alive() {
			continue
		}
		obj := components.Object.Get(e)

		if shield := components.Shield.Get(e); shield.Active {
			r := obj.W/2 + cfg.Player.ShieldRadiusPadding
			sink.FillCircle(obj.CenterX(), obj.CenterY(), r, render.WithAlpha(cfg.ShieldCyan, shield.Alpha(t)/255))
		}

		alpha := 1.0
		if inv := components.Invincible.Get(e); inv.Active {
			alpha = inv.Pulse.Alpha / 255
		}
		drawSprite(sink, e, alpha)
	}
}

func DrawExplosions(ecs *ecs.ECS, sink render.Sink) {
	components.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		ex := components.Explosion.Get(e)
		sprite := components.Sprite.Get(e)
		obj := components.Object.Get(e)

		if sink.HasImage(sprite.Key) {
			sink.DrawImage(sprite.Key, obj.X, obj.Y, obj.W, obj.H, ex.Alpha)
			return
		}
		sink.FillCircle(obj.CenterX(), obj.CenterY(), obj.W/2, render.WithAlpha(sprite.Fallback, ex.Alpha))
	})
}
