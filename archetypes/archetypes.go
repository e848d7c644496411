package archetypes

import (
	"github.com/automoto/lightborne/components"
	"github.com/automoto/lightborne/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Movement,
		components.LightInventory,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
	)
	CrystalShard = newArchetype(
		tags.CrystalShard,
		components.CrystalShard,
		components.Object,
	)
	StartFlag = newArchetype(
		tags.StartFlag,
		components.StartFlag,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.ShardMods,
	)
	Camera = newArchetype(
		components.Camera,
	)
	GameState = newArchetype(
		components.GameState,
		components.RespawnSequence,
	)
	Transition = newArchetype(
		components.Transition,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
