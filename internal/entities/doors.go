package entities

// Hyrule Castle key doors
const (
	HCEscapeFirstKeyDoor  KeyDoorID = "HCEscapeFirstKeyDoor"
	HCEscapeSecondKeyDoor KeyDoorID = "HCEscapeSecondKeyDoor"
	HCDarkCrossKeyDoor    KeyDoorID = "HCDarkCrossKeyDoor"
	HCSewerRatKeyDoor     KeyDoorID = "HCSewerRatKeyDoor"
	HCZeldasCellDoor      KeyDoorID = "HCZeldasCellDoor"
)

// Agahnim's Tower key doors
const (
	ATFirstKeyDoor  KeyDoorID = "ATFirstKeyDoor"
	ATSecondKeyDoor KeyDoorID = "ATSecondKeyDoor"
	ATThirdKeyDoor  KeyDoorID = "ATThirdKeyDoor"
	ATFourthKeyDoor KeyDoorID = "ATFourthKeyDoor"
)

// Eastern Palace key doors
const (
	EPDarkSquareKeyDoor KeyDoorID = "EPDarkSquareKeyDoor"
	EPEyegoreKeyDoor    KeyDoorID = "EPEyegoreKeyDoor"
	EPBigChestDoor      KeyDoorID = "EPBigChestDoor"
	EPBigKeyDoor        KeyDoorID = "EPBigKeyDoor"
)

// Desert Palace key doors
const (
	DPRightKeyDoor      KeyDoorID = "DPRightKeyDoor"
	DPBackFirstKeyDoor  KeyDoorID = "DPBackFirstKeyDoor"
	DPBackSecondKeyDoor KeyDoorID = "DPBackSecondKeyDoor"
	DPBigChestDoor      KeyDoorID = "DPBigChestDoor"
	DPBigKeyDoor        KeyDoorID = "DPBigKeyDoor"
)

// Tower of Hera key doors
const (
	ToHBasementKeyDoor KeyDoorID = "ToHBasementKeyDoor"
	ToHBigKeyDoor      KeyDoorID = "ToHBigKeyDoor"
	ToHBigChestDoor    KeyDoorID = "ToHBigChestDoor"
)

// Palace of Darkness key doors
const (
	PoDFirstKeyDoor       KeyDoorID = "PoDFirstKeyDoor"
	PoDBigKeyChestKeyDoor KeyDoorID = "PoDBigKeyChestKeyDoor"
	PoDBridgeKeyDoor      KeyDoorID = "PoDBridgeKeyDoor"
	PoDHellwayKeyDoor     KeyDoorID = "PoDHellwayKeyDoor"
	PoDDarkMazeKeyDoor    KeyDoorID = "PoDDarkMazeKeyDoor"
	PoDBossAreaKeyDoor    KeyDoorID = "PoDBossAreaKeyDoor"
	PoDBigChestDoor       KeyDoorID = "PoDBigChestDoor"
	PoDBigKeyDoor         KeyDoorID = "PoDBigKeyDoor"
)

// Swamp Palace key doors
const (
	SPFirstKeyDoor  KeyDoorID = "SPFirstKeyDoor"
	SPSecondKeyDoor KeyDoorID = "SPSecondKeyDoor"
	SPThirdKeyDoor  KeyDoorID = "SPThirdKeyDoor"
	SPBigChestDoor  KeyDoorID = "SPBigChestDoor"
)

// Skull Woods key doors
const (
	SWFrontKeyDoor     KeyDoorID = "SWFrontKeyDoor"
	SWWestLobbyKeyDoor KeyDoorID = "SWWestLobbyKeyDoor"
	SWBackKeyDoor      KeyDoorID = "SWBackKeyDoor"
	SWBigChestDoor     KeyDoorID = "SWBigChestDoor"
)

// Thieves' Town key doors
const (
	TTFirstKeyDoor   KeyDoorID = "TTFirstKeyDoor"
	TTSecondKeyDoor  KeyDoorID = "TTSecondKeyDoor"
	TTBigKeyDoor     KeyDoorID = "TTBigKeyDoor"
	TTBlindsCellDoor KeyDoorID = "TTBlindsCellDoor"
	TTBigChestDoor   KeyDoorID = "TTBigChestDoor"
)

// Ice Palace key doors
const (
	IPFirstKeyDoor  KeyDoorID = "IPFirstKeyDoor"
	IPSecondKeyDoor KeyDoorID = "IPSecondKeyDoor"
	IPThirdKeyDoor  KeyDoorID = "IPThirdKeyDoor"
	IPBigChestDoor  KeyDoorID = "IPBigChestDoor"
	IPBigKeyDoor    KeyDoorID = "IPBigKeyDoor"
)

// Misery Mire key doors
const (
	MMFirstKeyDoor  KeyDoorID = "MMFirstKeyDoor"
	MMSecondKeyDoor KeyDoorID = "MMSecondKeyDoor"
	MMThirdKeyDoor  KeyDoorID = "MMThirdKeyDoor"
	MMBigChestDoor  KeyDoorID = "MMBigChestDoor"
	MMBigKeyDoor    KeyDoorID = "MMBigKeyDoor"
)

// Turtle Rock key doors
const (
	TRFirstKeyDoor  KeyDoorID = "TRFirstKeyDoor"
	TRSecondKeyDoor KeyDoorID = "TRSecondKeyDoor"
	TRThirdKeyDoor  KeyDoorID = "TRThirdKeyDoor"
	TRFourthKeyDoor KeyDoorID = "TRFourthKeyDoor"
	TRBigChestDoor  KeyDoorID = "TRBigChestDoor"
	TRBigKeyDoor    KeyDoorID = "TRBigKeyDoor"
)

// Ganon's Tower key doors
const (
	GTMapKeyDoor   KeyDoorID = "GTMapKeyDoor"
	GTFirstKeyDoor KeyDoorID = "GTFirstKeyDoor"
	GTRightKeyDoor KeyDoorID = "GTRightKeyDoor"
	GTUpperKeyDoor KeyDoorID = "GTUpperKeyDoor"
	GTBigChestDoor KeyDoorID = "GTBigChestDoor"
	GTBigKeyDoor   KeyDoorID = "GTBigKeyDoor"
)
