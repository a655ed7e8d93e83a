package config

// Level names double as the interaction dispatch keys.
const (
	LevelCookies       = "Cookies"
	LevelEnigma        = "Enigma"
	LevelMoveToDie     = "Move to Die"
	LevelIllusionWorld = "Illusion World"
	LevelFiveNights    = "Five Nights"
	LevelTicTacToe     = "Tic Tac Toe"
	LevelVertigo       = "Vertigo"
)

// LevelEntry maps a level name to its embedded source file
type LevelEntry struct {
	Name string
	Path string
}

// Levels is the play order.
var Levels = []LevelEntry{
	{Name: LevelVertigo, Path: "levels/vertigo.tmx"},
	{Name: LevelCookies, Path: "levels/cookies.txt"},
	{Name: LevelEnigma, Path: "levels/enigma.txt"},
	{Name: LevelMoveToDie, Path: "levels/move_to_die.txt"},
	{Name: LevelTicTacToe, Path: "levels/tic_tac_toe.txt"},
	{Name: LevelIllusionWorld, Path: "levels/illusion_world.txt"},
	{Name: LevelFiveNights, Path: "levels/five_nights.txt"},
}

// LevelIndex returns the position of name in Levels, or -1.
func LevelIndex(name string) int {
	for i, l := range Levels {
		if l.Name == name {
			return i
		}
	}
	return -1
}
