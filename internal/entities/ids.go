package entities

// DungeonID identifies one of the thirteen dungeons
type DungeonID string

// DungeonNodeID identifies a traversable room or area inside a dungeon
type DungeonNodeID string

// KeyDoorID identifies a small-key or big-key gate
type KeyDoorID string

// DungeonItemID identifies an item location, boss slot or key drop
type DungeonItemID string

// OverworldNodeID identifies an overworld requirement node feeding a dungeon entrance
type OverworldNodeID string

// ItemType identifies an item the player can hold
type ItemType string

// SequenceBreakID identifies a trick the player may opt into
type SequenceBreakID string

// Boss identifies the boss guarding a dungeon's reward
type Boss string

// Dungeons
const (
	DungeonHyruleCastle     DungeonID = "HyruleCastle"
	DungeonAgahnimsTower    DungeonID = "AgahnimsTower"
	DungeonEasternPalace    DungeonID = "EasternPalace"
	DungeonDesertPalace     DungeonID = "DesertPalace"
	DungeonTowerOfHera      DungeonID = "TowerOfHera"
	DungeonPalaceOfDarkness DungeonID = "PalaceOfDarkness"
	DungeonSwampPalace      DungeonID = "SwampPalace"
	DungeonSkullWoods       DungeonID = "SkullWoods"
	DungeonThievesTown      DungeonID = "ThievesTown"
	DungeonIcePalace        DungeonID = "IcePalace"
	DungeonMiseryMire       DungeonID = "MiseryMire"
	DungeonTurtleRock       DungeonID = "TurtleRock"
	DungeonGanonsTower      DungeonID = "GanonsTower"
)

// AllDungeons lists every dungeon in tracker order
var AllDungeons = []DungeonID{
	DungeonHyruleCastle,
	DungeonAgahnimsTower,
	DungeonEasternPalace,
	DungeonDesertPalace,
	DungeonTowerOfHera,
	DungeonPalaceOfDarkness,
	DungeonSwampPalace,
	DungeonSkullWoods,
	DungeonThievesTown,
	DungeonIcePalace,
	DungeonMiseryMire,
	DungeonTurtleRock,
	DungeonGanonsTower,
}

// Items
const (
	ItemSword    ItemType = "Sword"
	ItemBow      ItemType = "Bow"
	ItemHookshot ItemType = "Hookshot"
	ItemFireRod  ItemType = "FireRod"
	ItemIceRod   ItemType = "IceRod"
	ItemBombos   ItemType = "Bombos"
	ItemHammer   ItemType = "Hammer"
	ItemLamp     ItemType = "Lamp"
	ItemBoots    ItemType = "Boots"
	ItemGloves   ItemType = "Gloves"
	ItemFlippers ItemType = "Flippers"
	ItemSomaria  ItemType = "Somaria"
	ItemByrna    ItemType = "Byrna"
	ItemCape     ItemType = "Cape"
	ItemShield   ItemType = "Shield"
)

// BaseItems lists the inventory items requirements read
var BaseItems = []ItemType{
	ItemSword,
	ItemBow,
	ItemHookshot,
	ItemFireRod,
	ItemIceRod,
	ItemBombos,
	ItemHammer,
	ItemLamp,
	ItemBoots,
	ItemGloves,
	ItemFlippers,
	ItemSomaria,
	ItemByrna,
	ItemCape,
	ItemShield,
}

// KnownItem reports whether item is a base item or one of a dungeon's
// key, map or compass items
func KnownItem(item ItemType) bool {
	for _, base := range BaseItems {
		if item == base {
			return true
		}
	}
	for _, d := range AllDungeons {
		switch item {
		case SmallKeyItem(d), BigKeyItem(d), MapItem(d), CompassItem(d):
			return true
		}
	}
	return false
}

// SmallKeyItem returns the small key item type of a dungeon
func SmallKeyItem(d DungeonID) ItemType {
	return ItemType(string(d) + "SmallKey")
}

// BigKeyItem returns the big key item type of a dungeon
func BigKeyItem(d DungeonID) ItemType {
	return ItemType(string(d) + "BigKey")
}

// MapItem returns the map item type of a dungeon
func MapItem(d DungeonID) ItemType {
	return ItemType(string(d) + "Map")
}

// CompassItem returns the compass item type of a dungeon
func CompassItem(d DungeonID) ItemType {
	return ItemType(string(d) + "Compass")
}

// Sequence breaks
const (
	SequenceBreakDarkRoomHC  SequenceBreakID = "DarkRoomHC"
	SequenceBreakDarkRoomAT  SequenceBreakID = "DarkRoomAT"
	SequenceBreakDarkRoomEP  SequenceBreakID = "DarkRoomEP"
	SequenceBreakDarkRoomPoD SequenceBreakID = "DarkRoomPoD"
	SequenceBreakDarkRoomMM  SequenceBreakID = "DarkRoomMM"
	SequenceBreakDarkRoomTR  SequenceBreakID = "DarkRoomTR"
	// SequenceBreakTorchToH lights the Tower of Hera big key torches without a fire source
	SequenceBreakTorchToH SequenceBreakID = "TorchToH"
	// SequenceBreakIcePalaceEntry skips melting the entrance freezor
	SequenceBreakIcePalaceEntry SequenceBreakID = "IcePalaceEntry"
)

// AllSequenceBreaks lists every trick a mode can enable
var AllSequenceBreaks = []SequenceBreakID{
	SequenceBreakDarkRoomHC,
	SequenceBreakDarkRoomAT,
	SequenceBreakDarkRoomEP,
	SequenceBreakDarkRoomPoD,
	SequenceBreakDarkRoomMM,
	SequenceBreakDarkRoomTR,
	SequenceBreakTorchToH,
	SequenceBreakIcePalaceEntry,
}

// KnownSequenceBreak reports whether id names a trick
func KnownSequenceBreak(id SequenceBreakID) bool {
	for _, sb := range AllSequenceBreaks {
		if sb == id {
			return true
		}
	}
	return false
}

// Bosses
const (
	BossArmos      Boss = "Armos"
	BossLanmolas   Boss = "Lanmolas"
	BossMoldorm    Boss = "Moldorm"
	BossHelmasaur  Boss = "HelmasaurKing"
	BossArrghus    Boss = "Arrghus"
	BossMothula    Boss = "Mothula"
	BossBlind      Boss = "Blind"
	BossKholdstare Boss = "Kholdstare"
	BossVitreous   Boss = "Vitreous"
	BossTrinexx    Boss = "Trinexx"
	BossAgahnim    Boss = "Agahnim"
)

// Overworld entrance nodes
const (
	OverworldHCSanctuaryEntry OverworldNodeID = "HCSanctuaryEntry"
	OverworldHCFrontEntry     OverworldNodeID = "HCFrontEntry"
	OverworldATEntry          OverworldNodeID = "ATEntry"
	OverworldEPEntry          OverworldNodeID = "EPEntry"
	OverworldDPFrontEntry     OverworldNodeID = "DPFrontEntry"
	OverworldDPBackEntry      OverworldNodeID = "DPBackEntry"
	OverworldToHEntry         OverworldNodeID = "ToHEntry"
	OverworldPoDEntry         OverworldNodeID = "PoDEntry"
	OverworldSPEntry          OverworldNodeID = "SPEntry"
	OverworldSWFrontEntry     OverworldNodeID = "SWFrontEntry"
	OverworldSWWestLobbyEntry OverworldNodeID = "SWWestLobbyEntry"
	OverworldSWBigChestEntry  OverworldNodeID = "SWBigChestEntry"
	OverworldSWBackEntry      OverworldNodeID = "SWBackEntry"
	OverworldTTEntry          OverworldNodeID = "TTEntry"
	OverworldIPEntry          OverworldNodeID = "IPEntry"
	OverworldMMEntry          OverworldNodeID = "MMEntry"
	OverworldTRFrontEntry     OverworldNodeID = "TRFrontEntry"
	OverworldTRMiddleEntry    OverworldNodeID = "TRMiddleEntry"
	OverworldTRBackEntry      OverworldNodeID = "TRBackEntry"
	OverworldGTEntry          OverworldNodeID = "GTEntry"
)
