package requirements

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
)

var (
	// FireSource lights torches
	FireSource = Any(Item(entities.ItemLamp), Item(entities.ItemFireRod))

	// MeltIce thaws freezors and the Ice Palace entrance
	MeltIce = Any(
		Item(entities.ItemFireRod),
		All(Item(entities.ItemBombos), Item(entities.ItemSword)),
	)

	// MeleeWeapon covers bosses that only need to be hit up close
	MeleeWeapon = Any(Item(entities.ItemSword), Item(entities.ItemHammer))
)

// DarkRoom is met with a light source, or as a sequence break when the dungeon's
// dark-room trick is enabled
func DarkRoom(trick entities.SequenceBreakID) Requirement {
	return Any(Item(entities.ItemLamp), Item(entities.ItemFireRod), SequenceBreak(trick))
}

var bossRequirements = map[entities.Boss]Requirement{
	entities.BossArmos: Any(
		MeleeWeapon, Item(entities.ItemBow), Item(entities.ItemFireRod),
		Item(entities.ItemIceRod), Item(entities.ItemSomaria), Item(entities.ItemByrna),
	),
	entities.BossLanmolas: Any(
		MeleeWeapon, Item(entities.ItemBow), Item(entities.ItemFireRod),
		Item(entities.ItemIceRod), Item(entities.ItemSomaria), Item(entities.ItemByrna),
	),
	entities.BossMoldorm:   MeleeWeapon,
	entities.BossHelmasaur: All(Item(entities.ItemHammer), Any(Item(entities.ItemSword), Item(entities.ItemBow))),
	entities.BossArrghus:   All(Item(entities.ItemHookshot), MeleeWeapon),
	entities.BossMothula: Any(
		MeleeWeapon, Item(entities.ItemFireRod), Item(entities.ItemSomaria), Item(entities.ItemByrna),
	),
	entities.BossBlind:      Any(MeleeWeapon, Item(entities.ItemSomaria), Item(entities.ItemByrna)),
	entities.BossKholdstare: All(MeltIce, Any(MeleeWeapon, Item(entities.ItemFireRod))),
	entities.BossVitreous:   Any(MeleeWeapon, Item(entities.ItemBow)),
	entities.BossTrinexx: All(
		Item(entities.ItemFireRod), Item(entities.ItemIceRod), MeleeWeapon,
	),
	entities.BossAgahnim: Any(Item(entities.ItemSword), Item(entities.ItemHammer)),
}

// Boss is met when the player can defeat b. Unknown bosses are never met.
func Boss(b entities.Boss) Requirement {
	if req, ok := bossRequirements[b]; ok {
		return req
	}
	return None
}
