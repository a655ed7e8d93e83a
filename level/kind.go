package level

// Kind identifies a block variant. Tile codes are only a lookup key; all
// dispatch happens on Kind.
type Kind uint8

const (
	KindNone Kind = iota

	// Terrain
	KindCorner
	KindWall
	KindTBlock
	KindPlatformTip
	KindPlain
	KindBordered
	KindGreen
	KindOrange
	KindDio
	KindCornerBlock
	KindLine
	KindSpikePlatform
	KindInvisible
	KindOneWayWall
	KindOneWay

	// Gate slides out of the way when the level's puzzle is solved.
	KindGate

	// Idle economy
	KindIdleGoal
	KindIdleRelocate
	KindIdleGain
	KindIdlePassive
	KindIdlePoint

	// Menu
	KindMenuSettings
	KindMenuStart
	KindMenuCredits

	// Enigma
	KindEnigmaDigit
	KindEnigmaCheck

	KindPool
	KindTimeStop
	KindPushable

	// Tic-tac-toe
	KindTicTacToeCursor
	KindTicTacToePlace
	KindTicTacToeCell
	KindMarkX
	KindMarkO

	KindReset
	KindPowerDrain
)

var kindNames = map[Kind]string{
	KindNone:            "none",
	KindCorner:          "corner",
	KindWall:            "wall",
	KindTBlock:          "t-block",
	KindPlatformTip:     "platform-tip",
	KindPlain:           "plain",
	KindBordered:        "bordered",
	KindGreen:           "green",
	KindOrange:          "orange",
	KindDio:             "dio",
	KindCornerBlock:     "corner-block",
	KindLine:            "line",
	KindSpikePlatform:   "spike-platform",
	KindInvisible:       "invisible",
	KindOneWayWall:      "one-way-wall",
	KindOneWay:          "one-way",
	KindGate:            "gate",
	KindIdleGoal:        "idle-goal",
	KindIdleRelocate:    "idle-relocate",
	KindIdleGain:        "idle-gain",
	KindIdlePassive:     "idle-passive",
	KindIdlePoint:       "idle-point",
	KindMenuSettings:    "menu-settings",
	KindMenuStart:       "menu-start",
	KindMenuCredits:     "menu-credits",
	KindEnigmaDigit:     "enigma-digit",
	KindEnigmaCheck:     "enigma-check",
	KindPool:            "pool",
	KindTimeStop:        "time-stop",
	KindPushable:        "pushable",
	KindTicTacToeCursor: "ttt-cursor",
	KindTicTacToePlace:  "ttt-place",
	KindTicTacToeCell:   "ttt-cell",
	KindMarkX:           "mark-x",
	KindMarkO:           "mark-o",
	KindReset:           "reset",
	KindPowerDrain:      "power-drain",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// OneWay reports whether the player can pass through the block moving up.
func (k Kind) OneWay() bool {
	return k == KindOneWay || k == KindOneWayWall
}

// Invisible blocks collide but are not drawn.
func (k Kind) Invisible() bool {
	return k == KindInvisible
}

// OrbKind is the jump orb variant, taken from the first letter of its code.
type OrbKind uint8

const (
	OrbYellow OrbKind = iota
	OrbBlue
	OrbGreen
	OrbDash
)

func (k OrbKind) String() string {
	switch k {
	case OrbYellow:
		return "yellow"
	case OrbBlue:
		return "blue"
	case OrbGreen:
		return "green"
	case OrbDash:
		return "dash"
	}
	return "unknown"
}

// FlipsGravity reports whether the orb toggles gravity.
func (k OrbKind) FlipsGravity() bool {
	return k == OrbBlue || k == OrbGreen
}

// PadKind is the jump pad variant.
type PadKind uint8

const (
	PadYellow PadKind = iota
	PadSpider
	PadPink
)

func (k PadKind) String() string {
	switch k {
	case PadYellow:
		return "yellow"
	case PadSpider:
		return "spider"
	case PadPink:
		return "pink"
	}
	return "unknown"
}
