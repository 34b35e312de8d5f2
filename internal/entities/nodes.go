package entities

// Hyrule Castle nodes
const (
	HCSanctuary               DungeonNodeID = "HCSanctuary"
	HCFront                   DungeonNodeID = "HCFront"
	HCMapRoom                 DungeonNodeID = "HCMapRoom"
	HCPastEscapeFirstKeyDoor  DungeonNodeID = "HCPastEscapeFirstKeyDoor"
	HCPastEscapeSecondKeyDoor DungeonNodeID = "HCPastEscapeSecondKeyDoor"
	HCZeldasCell              DungeonNodeID = "HCZeldasCell"
	HCDarkRoomFront           DungeonNodeID = "HCDarkRoomFront"
	HCPastDarkCrossKeyDoor    DungeonNodeID = "HCPastDarkCrossKeyDoor"
	HCSewerRatRoom            DungeonNodeID = "HCSewerRatRoom"
	HCPastSewerRatKeyDoor     DungeonNodeID = "HCPastSewerRatKeyDoor"
	HCDarkRoomBack            DungeonNodeID = "HCDarkRoomBack"
	HCSecretRoom              DungeonNodeID = "HCSecretRoom"
)

// Agahnim's Tower nodes
const (
	ATFront             DungeonNodeID = "ATFront"
	ATPastFirstKeyDoor  DungeonNodeID = "ATPastFirstKeyDoor"
	ATDarkMaze          DungeonNodeID = "ATDarkMaze"
	ATPastSecondKeyDoor DungeonNodeID = "ATPastSecondKeyDoor"
	ATPastThirdKeyDoor  DungeonNodeID = "ATPastThirdKeyDoor"
	ATPastFourthKeyDoor DungeonNodeID = "ATPastFourthKeyDoor"
	ATBossRoom          DungeonNodeID = "ATBossRoom"
)

// Eastern Palace nodes
const (
	EPFront              DungeonNodeID = "EPFront"
	EPBigChestRoom       DungeonNodeID = "EPBigChestRoom"
	EPDarkSquare         DungeonNodeID = "EPDarkSquare"
	EPBigKeyRoom         DungeonNodeID = "EPBigKeyRoom"
	EPPastBigKeyDoor     DungeonNodeID = "EPPastBigKeyDoor"
	EPPastEyegoreKeyDoor DungeonNodeID = "EPPastEyegoreKeyDoor"
	EPBossRoom           DungeonNodeID = "EPBossRoom"
)

// Desert Palace nodes
const (
	DPFront                 DungeonNodeID = "DPFront"
	DPTorch                 DungeonNodeID = "DPTorch"
	DPBigChestRoom          DungeonNodeID = "DPBigChestRoom"
	DPPastRightKeyDoor      DungeonNodeID = "DPPastRightKeyDoor"
	DPBack                  DungeonNodeID = "DPBack"
	DPPastBackFirstKeyDoor  DungeonNodeID = "DPPastBackFirstKeyDoor"
	DPPastBackSecondKeyDoor DungeonNodeID = "DPPastBackSecondKeyDoor"
	DPPastBigKeyDoor        DungeonNodeID = "DPPastBigKeyDoor"
	DPBossRoom              DungeonNodeID = "DPBossRoom"
)

// Tower of Hera nodes
const (
	ToHFront           DungeonNodeID = "ToHFront"
	ToHPastKeyDoor     DungeonNodeID = "ToHPastKeyDoor"
	ToHBigKeyChestRoom DungeonNodeID = "ToHBigKeyChestRoom"
	ToHUpper           DungeonNodeID = "ToHUpper"
	ToHBigChestRoom    DungeonNodeID = "ToHBigChestRoom"
	ToHBossRoom        DungeonNodeID = "ToHBossRoom"
)

// Palace of Darkness nodes
const (
	PoDFront               DungeonNodeID = "PoDFront"
	PoDPastFirstKeyDoor    DungeonNodeID = "PoDPastFirstKeyDoor"
	PoDArenaLedge          DungeonNodeID = "PoDArenaLedge"
	PoDBigKeyChestRoom     DungeonNodeID = "PoDBigKeyChestRoom"
	PoDPastBridgeKeyDoor   DungeonNodeID = "PoDPastBridgeKeyDoor"
	PoDDarkBasement        DungeonNodeID = "PoDDarkBasement"
	PoDHellway             DungeonNodeID = "PoDHellway"
	PoDDarkMaze            DungeonNodeID = "PoDDarkMaze"
	PoDBigChestRoom        DungeonNodeID = "PoDBigChestRoom"
	PoDPastBossAreaKeyDoor DungeonNodeID = "PoDPastBossAreaKeyDoor"
	PoDPastBigKeyDoor      DungeonNodeID = "PoDPastBigKeyDoor"
	PoDBossRoom            DungeonNodeID = "PoDBossRoom"
)

// Swamp Palace nodes
const (
	SPEntrance          DungeonNodeID = "SPEntrance"
	SPPastFirstKeyDoor  DungeonNodeID = "SPPastFirstKeyDoor"
	SPPastSecondKeyDoor DungeonNodeID = "SPPastSecondKeyDoor"
	SPBigChestRoom      DungeonNodeID = "SPBigChestRoom"
	SPPastHookshot      DungeonNodeID = "SPPastHookshot"
	SPPastThirdKeyDoor  DungeonNodeID = "SPPastThirdKeyDoor"
	SPBossRoom          DungeonNodeID = "SPBossRoom"
)

// Skull Woods nodes
const (
	SWFront            DungeonNodeID = "SWFront"
	SWPastFrontKeyDoor DungeonNodeID = "SWPastFrontKeyDoor"
	SWWestLobby        DungeonNodeID = "SWWestLobby"
	SWBigChestArea     DungeonNodeID = "SWBigChestArea"
	SWBigChestRoom     DungeonNodeID = "SWBigChestRoom"
	SWBack             DungeonNodeID = "SWBack"
	SWPastBackKeyDoor  DungeonNodeID = "SWPastBackKeyDoor"
	SWBossRoom         DungeonNodeID = "SWBossRoom"
)

// Thieves' Town nodes
const (
	TTFront             DungeonNodeID = "TTFront"
	TTPastBigKeyDoor    DungeonNodeID = "TTPastBigKeyDoor"
	TTPastFirstKeyDoor  DungeonNodeID = "TTPastFirstKeyDoor"
	TTBlindsCell        DungeonNodeID = "TTBlindsCell"
	TTPastSecondKeyDoor DungeonNodeID = "TTPastSecondKeyDoor"
	TTBigChestRoom      DungeonNodeID = "TTBigChestRoom"
	TTBossRoom          DungeonNodeID = "TTBossRoom"
)

// Ice Palace nodes
const (
	IPEntrance          DungeonNodeID = "IPEntrance"
	IPFront             DungeonNodeID = "IPFront"
	IPPastFirstKeyDoor  DungeonNodeID = "IPPastFirstKeyDoor"
	IPPastSecondKeyDoor DungeonNodeID = "IPPastSecondKeyDoor"
	IPHammerBlocks      DungeonNodeID = "IPHammerBlocks"
	IPFreezorRoom       DungeonNodeID = "IPFreezorRoom"
	IPBigChestRoom      DungeonNodeID = "IPBigChestRoom"
	IPIcedTRoom         DungeonNodeID = "IPIcedTRoom"
	IPPastBigKeyDoor    DungeonNodeID = "IPPastBigKeyDoor"
	IPPastThirdKeyDoor  DungeonNodeID = "IPPastThirdKeyDoor"
	IPBossRoom          DungeonNodeID = "IPBossRoom"
)

// Misery Mire nodes
const (
	MMEntrance          DungeonNodeID = "MMEntrance"
	MMFront             DungeonNodeID = "MMFront"
	MMPastFirstKeyDoor  DungeonNodeID = "MMPastFirstKeyDoor"
	MMPastSecondKeyDoor DungeonNodeID = "MMPastSecondKeyDoor"
	MMBigChestRoom      DungeonNodeID = "MMBigChestRoom"
	MMPastBigKeyDoor    DungeonNodeID = "MMPastBigKeyDoor"
	MMPastThirdKeyDoor  DungeonNodeID = "MMPastThirdKeyDoor"
	MMBossRoom          DungeonNodeID = "MMBossRoom"
)

// Turtle Rock nodes
const (
	TRFront             DungeonNodeID = "TRFront"
	TRRollerRoom        DungeonNodeID = "TRRollerRoom"
	TRPastFirstKeyDoor  DungeonNodeID = "TRPastFirstKeyDoor"
	TRPastSecondKeyDoor DungeonNodeID = "TRPastSecondKeyDoor"
	TRMiddle            DungeonNodeID = "TRMiddle"
	TRBigChestRoom      DungeonNodeID = "TRBigChestRoom"
	TRPastBigKeyDoor    DungeonNodeID = "TRPastBigKeyDoor"
	TRLaserBridge       DungeonNodeID = "TRLaserBridge"
	TRPastThirdKeyDoor  DungeonNodeID = "TRPastThirdKeyDoor"
	TRPastFourthKeyDoor DungeonNodeID = "TRPastFourthKeyDoor"
	TRBossRoom          DungeonNodeID = "TRBossRoom"
)

// Ganon's Tower nodes
const (
	GTFront            DungeonNodeID = "GTFront"
	GTBobsTorch        DungeonNodeID = "GTBobsTorch"
	GTLeftSide         DungeonNodeID = "GTLeftSide"
	GTDMsRoom          DungeonNodeID = "GTDMsRoom"
	GTMapRoom          DungeonNodeID = "GTMapRoom"
	GTPastFirstKeyDoor DungeonNodeID = "GTPastFirstKeyDoor"
	GTRightSide        DungeonNodeID = "GTRightSide"
	GTPastRightKeyDoor DungeonNodeID = "GTPastRightKeyDoor"
	GTBobsArea         DungeonNodeID = "GTBobsArea"
	GTBigChestRoom     DungeonNodeID = "GTBigChestRoom"
	GTUpstairs         DungeonNodeID = "GTUpstairs"
	GTPastUpperKeyDoor DungeonNodeID = "GTPastUpperKeyDoor"
	GTValidation       DungeonNodeID = "GTValidation"
)
