package systems

import (
	"fmt"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/render"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders each player's score and lives. Slot 0 sits at the
// top-left, slot 1 at the top-right.
func DrawHUD(ecs *ecs.ECS, sink render.Sink) {
	width, _ := playfield(ecs)
	players := sortedEntries(ecs, components.Player)

	for _, e := range players {
		player := components.Player.Get(e)
		lives := components.Lives.Get(e)

		x := cfg.UI.Margin
		if player.Slot == 1 {
			x = width - cfg.UI.SecondSlotInset
		}
		y := cfg.UI.Margin

		label := ""
		if len(players) > 1 {
			label = fmt.Sprintf("P%d ", player.Slot+1)
		}
		sink.DrawText(fmt.Sprintf("%sScore: %d", label, player.Score), x, y, cfg.UI.TextColor)
		sink.DrawText(fmt.Sprintf("%sLives: %d", label, lives.Lives), x, y+cfg.UI.LineHeight, cfg.UI.TextColor)
	}
}
