package entities

// Hyrule Castle item locations
const (
	HCSanctuaryChest     DungeonItemID = "HCSanctuaryChest"
	HCSecretRoomLeft     DungeonItemID = "HCSecretRoomLeft"
	HCSecretRoomMiddle   DungeonItemID = "HCSecretRoomMiddle"
	HCSecretRoomRight    DungeonItemID = "HCSecretRoomRight"
	HCDarkCross          DungeonItemID = "HCDarkCross"
	HCMapChest           DungeonItemID = "HCMapChest"
	HCBoomerangChest     DungeonItemID = "HCBoomerangChest"
	HCZeldasChest        DungeonItemID = "HCZeldasChest"
	HCMapGuardDrop       DungeonItemID = "HCMapGuardDrop"
	HCBoomerangGuardDrop DungeonItemID = "HCBoomerangGuardDrop"
	HCKeyRatDrop         DungeonItemID = "HCKeyRatDrop"
	HCBallNChainDrop     DungeonItemID = "HCBallNChainDrop"
)

// Agahnim's Tower item locations
const (
	ATRoom03         DungeonItemID = "ATRoom03"
	ATDarkMazeChest  DungeonItemID = "ATDarkMazeChest"
	ATDarkArcherDrop DungeonItemID = "ATDarkArcherDrop"
	ATCirclePotsDrop DungeonItemID = "ATCirclePotsDrop"
)

// Eastern Palace item locations
const (
	EPCannonballChest DungeonItemID = "EPCannonballChest"
	EPMapChest        DungeonItemID = "EPMapChest"
	EPCompassChest    DungeonItemID = "EPCompassChest"
	EPBigChest        DungeonItemID = "EPBigChest"
	EPBigKeyChest     DungeonItemID = "EPBigKeyChest"
	EPBoss            DungeonItemID = "EPBoss"
	EPDarkSquarePot   DungeonItemID = "EPDarkSquarePot"
	EPDarkEyegoreDrop DungeonItemID = "EPDarkEyegoreDrop"
)

// Desert Palace item locations
const (
	DPMapChest      DungeonItemID = "DPMapChest"
	DPTorchItem     DungeonItemID = "DPTorchItem"
	DPCompassChest  DungeonItemID = "DPCompassChest"
	DPBigKeyChest   DungeonItemID = "DPBigKeyChest"
	DPBigChest      DungeonItemID = "DPBigChest"
	DPBoss          DungeonItemID = "DPBoss"
	DPBeamosHallPot DungeonItemID = "DPBeamosHallPot"
	DPTiles1Pot     DungeonItemID = "DPTiles1Pot"
	DPTiles2Pot     DungeonItemID = "DPTiles2Pot"
)

// Tower of Hera item locations
const (
	ToHBasementCage DungeonItemID = "ToHBasementCage"
	ToHMapChest     DungeonItemID = "ToHMapChest"
	ToHBigKeyChest  DungeonItemID = "ToHBigKeyChest"
	ToHCompassChest DungeonItemID = "ToHCompassChest"
	ToHBigChest     DungeonItemID = "ToHBigChest"
	ToHBoss         DungeonItemID = "ToHBoss"
)

// Palace of Darkness item locations
const (
	PoDShooterRoom       DungeonItemID = "PoDShooterRoom"
	PoDMapChest          DungeonItemID = "PoDMapChest"
	PoDArenaLedgeChest   DungeonItemID = "PoDArenaLedgeChest"
	PoDArenaBridge       DungeonItemID = "PoDArenaBridge"
	PoDStalfosBasement   DungeonItemID = "PoDStalfosBasement"
	PoDBigKeyChest       DungeonItemID = "PoDBigKeyChest"
	PoDCompassChest      DungeonItemID = "PoDCompassChest"
	PoDDarkBasementLeft  DungeonItemID = "PoDDarkBasementLeft"
	PoDDarkBasementRight DungeonItemID = "PoDDarkBasementRight"
	PoDHarmlessHellway   DungeonItemID = "PoDHarmlessHellway"
	PoDDarkMazeTop       DungeonItemID = "PoDDarkMazeTop"
	PoDDarkMazeBottom    DungeonItemID = "PoDDarkMazeBottom"
	PoDBigChest          DungeonItemID = "PoDBigChest"
	PoDBoss              DungeonItemID = "PoDBoss"
)

// Swamp Palace item locations
const (
	SPEntranceChest    DungeonItemID = "SPEntranceChest"
	SPMapChest         DungeonItemID = "SPMapChest"
	SPWestChest        DungeonItemID = "SPWestChest"
	SPCompassChest     DungeonItemID = "SPCompassChest"
	SPBigKeyChest      DungeonItemID = "SPBigKeyChest"
	SPBigChest         DungeonItemID = "SPBigChest"
	SPFloodedRoomLeft  DungeonItemID = "SPFloodedRoomLeft"
	SPFloodedRoomRight DungeonItemID = "SPFloodedRoomRight"
	SPWaterfallRoom    DungeonItemID = "SPWaterfallRoom"
	SPBoss             DungeonItemID = "SPBoss"
	SPPotRowPot        DungeonItemID = "SPPotRowPot"
	SPTrench1Pot       DungeonItemID = "SPTrench1Pot"
	SPHookshotPot      DungeonItemID = "SPHookshotPot"
	SPTrench2Pot       DungeonItemID = "SPTrench2Pot"
	SPWaterwayPot      DungeonItemID = "SPWaterwayPot"
)

// Skull Woods item locations
const (
	SWMapChest        DungeonItemID = "SWMapChest"
	SWCompassChest    DungeonItemID = "SWCompassChest"
	SWPotPrison       DungeonItemID = "SWPotPrison"
	SWPinballRoom     DungeonItemID = "SWPinballRoom"
	SWBigKeyChest     DungeonItemID = "SWBigKeyChest"
	SWBigChest        DungeonItemID = "SWBigChest"
	SWBridgeRoom      DungeonItemID = "SWBridgeRoom"
	SWBoss            DungeonItemID = "SWBoss"
	SWWestLobbyPot    DungeonItemID = "SWWestLobbyPot"
	SWSpikeCornerDrop DungeonItemID = "SWSpikeCornerDrop"
)

// Thieves' Town item locations
const (
	TTMapChest        DungeonItemID = "TTMapChest"
	TTAmbushChest     DungeonItemID = "TTAmbushChest"
	TTCompassChest    DungeonItemID = "TTCompassChest"
	TTBigKeyChest     DungeonItemID = "TTBigKeyChest"
	TTAttic           DungeonItemID = "TTAttic"
	TTBlindsCellChest DungeonItemID = "TTBlindsCellChest"
	TTBigChest        DungeonItemID = "TTBigChest"
	TTBoss            DungeonItemID = "TTBoss"
	TTHallwayPot      DungeonItemID = "TTHallwayPot"
	TTSpikeSwitchPot  DungeonItemID = "TTSpikeSwitchPot"
)

// Ice Palace item locations
const (
	IPCompassChest    DungeonItemID = "IPCompassChest"
	IPSpikeRoom       DungeonItemID = "IPSpikeRoom"
	IPMapChest        DungeonItemID = "IPMapChest"
	IPBigKeyChest     DungeonItemID = "IPBigKeyChest"
	IPFreezorChest    DungeonItemID = "IPFreezorChest"
	IPBigChest        DungeonItemID = "IPBigChest"
	IPIcedT           DungeonItemID = "IPIcedT"
	IPBoss            DungeonItemID = "IPBoss"
	IPJellyDrop       DungeonItemID = "IPJellyDrop"
	IPConveyorDrop    DungeonItemID = "IPConveyorDrop"
	IPHammerBlockDrop DungeonItemID = "IPHammerBlockDrop"
	IPManyPotsPot     DungeonItemID = "IPManyPotsPot"
)

// Misery Mire item locations
const (
	MMBridgeChest  DungeonItemID = "MMBridgeChest"
	MMSpikeChest   DungeonItemID = "MMSpikeChest"
	MMMainLobby    DungeonItemID = "MMMainLobby"
	MMMapChest     DungeonItemID = "MMMapChest"
	MMCompassChest DungeonItemID = "MMCompassChest"
	MMBigKeyChest  DungeonItemID = "MMBigKeyChest"
	MMBigChest     DungeonItemID = "MMBigChest"
	MMBoss         DungeonItemID = "MMBoss"
	MMSpikesPot    DungeonItemID = "MMSpikesPot"
	MMFishbonePot  DungeonItemID = "MMFishbonePot"
	MMConveyorDrop DungeonItemID = "MMConveyorDrop"
)

// Turtle Rock item locations
const (
	TRCompassChest         DungeonItemID = "TRCompassChest"
	TRRollerRoomLeft       DungeonItemID = "TRRollerRoomLeft"
	TRRollerRoomRight      DungeonItemID = "TRRollerRoomRight"
	TRChainChomps          DungeonItemID = "TRChainChomps"
	TRBigKeyChest          DungeonItemID = "TRBigKeyChest"
	TRBigChest             DungeonItemID = "TRBigChest"
	TRCrystaroller         DungeonItemID = "TRCrystaroller"
	TREyeBridgeTopLeft     DungeonItemID = "TREyeBridgeTopLeft"
	TREyeBridgeTopRight    DungeonItemID = "TREyeBridgeTopRight"
	TREyeBridgeBottomLeft  DungeonItemID = "TREyeBridgeBottomLeft"
	TREyeBridgeBottomRight DungeonItemID = "TREyeBridgeBottomRight"
	TRBoss                 DungeonItemID = "TRBoss"
	TRPokey1Drop           DungeonItemID = "TRPokey1Drop"
	TRPokey2Drop           DungeonItemID = "TRPokey2Drop"
)

// Ganon's Tower item locations
const (
	GTHopeRoomLeft          DungeonItemID = "GTHopeRoomLeft"
	GTHopeRoomRight         DungeonItemID = "GTHopeRoomRight"
	GTBobsTorchItem         DungeonItemID = "GTBobsTorchItem"
	GTDMsTopLeft            DungeonItemID = "GTDMsTopLeft"
	GTDMsTopRight           DungeonItemID = "GTDMsTopRight"
	GTDMsBottomLeft         DungeonItemID = "GTDMsBottomLeft"
	GTDMsBottomRight        DungeonItemID = "GTDMsBottomRight"
	GTMapChest              DungeonItemID = "GTMapChest"
	GTFiresnakeRoom         DungeonItemID = "GTFiresnakeRoom"
	GTRandomizerTopLeft     DungeonItemID = "GTRandomizerTopLeft"
	GTRandomizerTopRight    DungeonItemID = "GTRandomizerTopRight"
	GTRandomizerBottomLeft  DungeonItemID = "GTRandomizerBottomLeft"
	GTRandomizerBottomRight DungeonItemID = "GTRandomizerBottomRight"
	GTTileRoom              DungeonItemID = "GTTileRoom"
	GTCompassTopLeft        DungeonItemID = "GTCompassTopLeft"
	GTCompassTopRight       DungeonItemID = "GTCompassTopRight"
	GTCompassBottomLeft     DungeonItemID = "GTCompassBottomLeft"
	GTCompassBottomRight    DungeonItemID = "GTCompassBottomRight"
	GTBobsChest             DungeonItemID = "GTBobsChest"
	GTBigKeyChest           DungeonItemID = "GTBigKeyChest"
	GTBigKeyRoomLeft        DungeonItemID = "GTBigKeyRoomLeft"
	GTBigKeyRoomRight       DungeonItemID = "GTBigKeyRoomRight"
	GTBigChest              DungeonItemID = "GTBigChest"
	GTMiniHelmasaurLeft     DungeonItemID = "GTMiniHelmasaurLeft"
	GTMiniHelmasaurRight    DungeonItemID = "GTMiniHelmasaurRight"
	GTPreMoldorm            DungeonItemID = "GTPreMoldorm"
	GTValidationChest       DungeonItemID = "GTValidationChest"
	GTConveyorCrossPot      DungeonItemID = "GTConveyorCrossPot"
	GTDoubleSwitchPot       DungeonItemID = "GTDoubleSwitchPot"
	GTConveyorStarPitsPot   DungeonItemID = "GTConveyorStarPitsPot"
	GTMiniHelmasaurDrop     DungeonItemID = "GTMiniHelmasaurDrop"
)
