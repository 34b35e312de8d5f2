package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

var catalog = map[entities.DungeonID]func() *Dungeon{
	entities.DungeonHyruleCastle:     hyruleCastle,
	entities.DungeonAgahnimsTower:    agahnimsTower,
	entities.DungeonEasternPalace:    easternPalace,
	entities.DungeonDesertPalace:     desertPalace,
	entities.DungeonTowerOfHera:      towerOfHera,
	entities.DungeonPalaceOfDarkness: palaceOfDarkness,
	entities.DungeonSwampPalace:      swampPalace,
	entities.DungeonSkullWoods:       skullWoods,
	entities.DungeonThievesTown:      thievesTown,
	entities.DungeonIcePalace:        icePalace,
	entities.DungeonMiseryMire:       miseryMire,
	entities.DungeonTurtleRock:       turtleRock,
	entities.DungeonGanonsTower:      ganonsTower,
}

// Factory holds the immutable catalog of every dungeon
type Factory struct {
	dungeons map[entities.DungeonID]*Dungeon
}

// NewFactory builds and validates every dungeon. A table that references an id
// it does not own fails construction.
func NewFactory() (*Factory, error) {
	f := &Factory{dungeons: make(map[entities.DungeonID]*Dungeon, len(entities.AllDungeons))}

	for _, id := range entities.AllDungeons {
		build, ok := catalog[id]
		if !ok {
			return nil, errors.Internalf("no table for dungeon %s", id)
		}
		d := build()
		if d.ID != id {
			return nil, errors.Internalf("table for %s built %s", id, d.ID)
		}
		if err := d.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid dungeon %s", id)
		}
		f.dungeons[id] = d
	}

	return f, nil
}

// Get returns the dungeon with the given id
func (f *Factory) Get(id entities.DungeonID) (*Dungeon, error) {
	d, ok := f.dungeons[id]
	if !ok {
		return nil, errors.NotFoundf("dungeon %s not found", id).WithMeta("dungeon_id", string(id))
	}
	return d, nil
}

// All returns every dungeon in tracker order
func (f *Factory) All() []*Dungeon {
	out := make([]*Dungeon, 0, len(f.dungeons))
	for _, id := range entities.AllDungeons {
		if d, ok := f.dungeons[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// NewMutableDungeon builds a fresh working copy of the dungeon
func (f *Factory) NewMutableDungeon(
	id entities.DungeonID, items requirements.ItemProvider, overworld OverworldAccessibility,
) (*MutableDungeon, error) {
	d, err := f.Get(id)
	if err != nil {
		return nil, err
	}
	return NewMutableDungeon(d, items, overworld)
}
