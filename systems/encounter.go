package systems

import (
	"math/rand"
	"sort"
	"time"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetEncounter returns the director singleton.
func GetEncounter(ecs *ecs.ECS) *components.EncounterData {
	return components.Encounter.Get(components.Encounter.MustFirst(ecs.World))
}

func tickTime(ecs *ecs.ECS) time.Duration {
	return GetEncounter(ecs).Now
}

func currentSettings(ecs *ecs.ECS) *cfg.Settings {
	return &GetEncounter(ecs).Settings
}

func random(ecs *ecs.ECS) *rand.Rand {
	return GetEncounter(ecs).Rand
}

func playfield(ecs *ecs.ECS) (float64, float64) {
	s := currentSettings(ecs)
	return float64(s.ScreenWidth), float64(s.ScreenHeight)
}

// sortedEntries collects the entries of a component in entity order so
// resolution does not depend on storage layout.
func sortedEntries[T any](ecs *ecs.ECS, c *donburi.ComponentType[T]) []*donburi.Entry {
	var entries []*donburi.Entry
	c.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sortByEntity(entries)
	return entries
}

func sortByEntity(entries []*donburi.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Entity() < entries[j].Entity()
	})
}
