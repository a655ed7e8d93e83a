package level

import "github.com/automoto/dietowin/shared/gamemath"

type blockInfo struct {
	kind     Kind
	rotation int
	mirror   bool
}

var blockCatalog = map[string]blockInfo{
	"1C0": {KindCorner, 0, false},
	"1C1": {KindCorner, 90, false},
	"1C2": {KindCorner, 180, false},
	"1C3": {KindCorner, 270, false},

	"1WH":  {KindWall, 0, false},
	"1WV":  {KindWall, 90, false},
	"1WVI": {KindGate, 90, false},

	"1TL": {KindTBlock, 0, false},
	"1TU": {KindTBlock, 90, false},
	"1TR": {KindTBlock, 180, false},
	"1TD": {KindTBlock, 270, false},

	"1PU": {KindPlatformTip, 0, false},
	"1PR": {KindPlatformTip, 90, false},
	"1PD": {KindPlatformTip, 180, false},
	"1PL": {KindPlatformTip, 270, false},

	"1E":  {KindPlain, 0, false},
	"1B":  {KindBordered, 0, false},
	"1BI": {KindEnigmaDigit, 0, false},
	"1BG": {KindGreen, 0, false},
	"1BO": {KindOrange, 0, false},
	"1BY": {KindDio, 0, false},

	"1I1": {KindIdleGoal, 0, false},
	"1I2": {KindIdleRelocate, 0, false},
	"1I3": {KindIdleGain, 0, false},
	"1I4": {KindIdlePassive, 0, false},
	"1IP": {KindIdlePoint, 0, false},

	"1S": {KindMenuSettings, 0, false},
	"1P": {KindMenuStart, 0, false},
	"1C": {KindMenuCredits, 0, false},

	"1IN": {KindEnigmaCheck, 0, false},
	"1BB": {KindPool, 0, false},
	"1SA": {KindTimeStop, 0, false},
	"1MV": {KindPushable, 0, false},

	"1XM": {KindTicTacToeCursor, 0, false},
	"1XI": {KindTicTacToePlace, 0, false},
	"1XE": {KindTicTacToeCell, 0, false},
	"1X":  {KindMarkX, 0, false},
	"1O":  {KindMarkO, 0, false},
	"1R":  {KindReset, 0, false},

	"1ZA": {KindPowerDrain, 0, false},

	"1K0": {KindCornerBlock, 0, false},
	"1K1": {KindCornerBlock, 90, false},
	"1K2": {KindCornerBlock, 180, false},
	"1K3": {KindCornerBlock, 270, false},

	"1LU": {KindLine, 0, false},
	"1LR": {KindLine, 90, false},
	"1LD": {KindLine, 180, false},
	"1LL": {KindLine, 270, false},

	"1JL": {KindOneWayWall, 0, false},
	"1JR": {KindOneWayWall, 0, true},
	"1J":  {KindOneWay, 0, false},

	"1Y": {KindInvisible, 0, false},

	// Platforms drawn with a spike; the spike hitbox is a separate tile.
	"3AU":  {KindSpikePlatform, 0, false},
	"3AR":  {KindSpikePlatform, 90, false},
	"3AD":  {KindSpikePlatform, 180, false},
	"3AL":  {KindSpikePlatform, 270, false},
	"3AUM": {KindSpikePlatform, 0, true},
	"3ARM": {KindSpikePlatform, 90, true},
	"3ADM": {KindSpikePlatform, 180, true},
	"3ALM": {KindSpikePlatform, 270, true},
	"3CU":  {KindSpikePlatform, 0, false},
	"3CR":  {KindSpikePlatform, 90, false},
	"3CD":  {KindSpikePlatform, 180, false},
	"3CL":  {KindSpikePlatform, 270, false},
	"3EU":  {KindSpikePlatform, 0, false},
	"3ER":  {KindSpikePlatform, 90, false},
	"3ED":  {KindSpikePlatform, 180, false},
	"3EL":  {KindSpikePlatform, 270, false},
}

type spikeInfo struct {
	big      bool
	rotation int
	mirror   bool
}

var spikeCatalog = map[string]spikeInfo{
	"2AU":  {false, 0, false},
	"2AR":  {false, 90, false},
	"2AD":  {false, 180, false},
	"2AL":  {false, 270, false},
	"2AUM": {false, 0, true},
	"2ARM": {false, 90, true},
	"2ADM": {false, 180, true},
	"2ALM": {false, 270, true},
	"2CU":  {false, 0, false},
	"2CR":  {false, 90, false},
	"2CD":  {false, 180, false},
	"2CL":  {false, 270, false},
	"2EU":  {true, 0, false},
	"2ER":  {true, 90, false},
	"2ED":  {true, 180, false},
	"2EL":  {true, 270, false},
}

type padInfo struct {
	kind     PadKind
	rotation int
}

var padCatalog = map[string]padInfo{
	"JU": {PadYellow, 0},
	"JD": {PadYellow, 180},
	"SU": {PadSpider, 0},
	"SR": {PadSpider, 90},
	"SD": {PadSpider, 180},
	"SL": {PadSpider, 270},
	"PU": {PadPink, 0},
	"PD": {PadPink, 180},
}

var orbKinds = map[byte]OrbKind{
	'Y': OrbYellow,
	'B': OrbBlue,
	'G': OrbGreen,
	'D': OrbDash,
}

// spikeHitbox returns the hazard rectangle for a spike tile at x, y. The
// hitbox covers only the spike point, not the whole tile.
func spikeHitbox(info spikeInfo, x, y, tile float64) gamemath.Rect {
	if info.big {
		if info.rotation == 0 || info.rotation == 180 {
			return gamemath.Rect{X: x + tile*2/5, Y: y + tile*3/10, W: tile / 5, H: tile * 2 / 5}
		}
		return gamemath.Rect{X: x + tile*3/10, Y: y + tile*2/5, W: tile * 2 / 5, H: tile / 5}
	}

	size := tile / 5
	switch info.rotation {
	case 90:
		return gamemath.Rect{X: x + tile/10, Y: y + tile*2/5, W: size, H: size}
	case 180:
		return gamemath.Rect{X: x + tile*2/5, Y: y + tile/10, W: size, H: size}
	case 270:
		return gamemath.Rect{X: x + tile*7/10, Y: y + tile*2/5, W: size, H: size}
	}
	return gamemath.Rect{X: x + tile*2/5, Y: y + tile*7/10, W: size, H: size}
}

// Visual returns the tile the spike is drawn in, following the hitbox as it
// moves. Big spikes fill the tile, small ones its outer half.
func (s *Spike) Visual(tile float64) (r gamemath.Rect, big bool) {
	info := spikeCatalog[s.Code]
	off := spikeHitbox(info, 0, 0, tile)
	return gamemath.Rect{X: s.X - off.X, Y: s.Y - off.Y, W: tile, H: tile}, info.big
}

// padHitbox returns the trigger rectangle for a pad tile at x, y. The second
// result is false for rotations the pad kind does not support.
func padHitbox(info padInfo, x, y, tile float64) (gamemath.Rect, bool) {
	if info.kind != PadSpider {
		switch info.rotation {
		case 0:
			return gamemath.Rect{X: x + tile/12, Y: y + tile*13/15, W: tile * 10 / 12, H: tile / 6}, true
		case 180:
			return gamemath.Rect{X: x + tile/12, Y: y - tile/30, W: tile * 10 / 12, H: tile / 6}, true
		}
		return gamemath.Rect{}, false
	}

	switch info.rotation {
	case 0:
		return gamemath.Rect{X: x + tile/30, Y: y + tile*3/4, W: tile * 14 / 15, H: tile * 2 / 5}, true
	case 90:
		return gamemath.Rect{X: x - tile*3/20, Y: y + tile/30, W: tile * 2 / 5, H: tile * 14 / 15}, true
	case 180:
		return gamemath.Rect{X: x + tile/30, Y: y - tile*3/20, W: tile * 14 / 15, H: tile * 2 / 5}, true
	case 270:
		return gamemath.Rect{X: x + tile*3/4, Y: y + tile/30, W: tile * 2 / 5, H: tile * 14 / 15}, true
	}
	return gamemath.Rect{}, false
}

// orbHitbox parses an orb code ("G", "BX", "YXY") into its kind and
// rectangle. Orbs are drawn larger than a tile and may sit half a tile off
// the grid.
func orbHitbox(code string, x, y, tile float64) (OrbKind, gamemath.Rect, bool) {
	if code == "" {
		return 0, gamemath.Rect{}, false
	}
	kind, ok := orbKinds[code[0]]
	if !ok {
		return 0, gamemath.Rect{}, false
	}

	var dx, dy float64
	switch code[1:] {
	case "":
	case "X":
		dx = tile / 2
	case "Y":
		dy = tile / 2
	case "XY":
		dx, dy = tile/2, tile/2
	default:
		return 0, gamemath.Rect{}, false
	}

	return kind, gamemath.Rect{
		X: x - tile/10 + dx,
		Y: y - tile/10 + dy,
		W: tile * 12 / 10,
		H: tile * 12 / 10,
	}, true
}
