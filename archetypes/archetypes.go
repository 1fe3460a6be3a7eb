package archetypes

import (
	"github.com/automoto/crab-arena/components"
	"github.com/automoto/crab-arena/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Health,
		components.AnimFlags,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
	)
	Match = newArchetype(
		components.Match,
		components.SoundQueue,
		components.Input,
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

// Spawn creates an entity with the archetype's components plus any extras.
// It takes a plain world so the simulation can run without an ecs.ECS.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
