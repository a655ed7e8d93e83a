package config

import "image/color"

// PhysicsConfig contains the player kinematics constants. Values are in
// pixels and seconds; every per-frame quantity is scaled by delta time.
type PhysicsConfig struct {
	XVelocity        float64 `yaml:"x_velocity"`
	JumpVelocity     float64 `yaml:"jump_velocity"` // magnitude, sign follows gravity
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	CoyoteTime       float64 `yaml:"coyote_time"`

	// Frame delta is clamped so a stalled frame cannot tunnel the player.
	MaxFrameTime float64 `yaml:"max_frame_time"`

	// Gap squeeze tolerance as a fraction of the tile size.
	GapToleranceDivisor float64 `yaml:"gap_tolerance_divisor"`
}

// PlayerConfig contains player body configuration
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Default spawn tile when a level has no spawn marker.
	SpawnCol int `yaml:"spawn_col"`
	SpawnRow int `yaml:"spawn_row"`
}

// OrbConfig contains launch factors for orbs and pads, relative to JumpVelocity.
type OrbConfig struct {
	BlueLaunchFactor   float64 `yaml:"blue_launch_factor"`
	GreenLaunchFactor  float64 `yaml:"green_launch_factor"`
	YellowPadFactor    float64 `yaml:"yellow_pad_factor"`
	PinkPadFactor      float64 `yaml:"pink_pad_factor"`
	DashSpeedFactor    float64 `yaml:"dash_speed_factor"`
	DashRiseFactor     float64 `yaml:"dash_rise_factor"` // 0 dashes level
	GreenRotationSpeed float64 `yaml:"green_rotation_speed"` // degrees per second
}

// PushableConfig contains pushable block configuration
type PushableConfig struct {
	PushSpeed     float64 `yaml:"push_speed"`
	CrushVelocity float64 `yaml:"crush_velocity"`
	// Width of the push sensor strip as a fraction of the tile size.
	SensorDivisor float64 `yaml:"sensor_divisor"`
}

// LevelConfig contains grid and view configuration
type LevelConfig struct {
	TileSize float64 `yaml:"tile_size"`
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`

	// Render offset that crops the outer border of the grid to the screen.
	ViewOffsetX float64 `yaml:"view_offset_x"`
	ViewOffsetY float64 `yaml:"view_offset_y"`

	// Unlock motion
	GateRiseTiles  float64 `yaml:"gate_rise_tiles"`
	GateSpeed      float64 `yaml:"gate_speed"`
	SpikeSinkTiles float64 `yaml:"spike_sink_tiles"`
	SpikeSpeed     float64 `yaml:"spike_speed"`
	RelocateSpeed  float64 `yaml:"relocate_speed"`
}

// UpgradeConfig describes one idle economy upgrade block
type UpgradeConfig struct {
	InitialCost uint64 `yaml:"initial_cost"`
	Cap         int    `yaml:"cap"`
}

// EconomyConfig contains the idle economy tunables
type EconomyConfig struct {
	StartingGain uint64        `yaml:"starting_gain"`
	Gain         UpgradeConfig `yaml:"gain"`
	Passive      UpgradeConfig `yaml:"passive"`
	Relocate     UpgradeConfig `yaml:"relocate"`
	GoalCost     uint64        `yaml:"goal_cost"`

	// Passive upgrade cost multipliers per tier
	PassiveTierSize     int      `yaml:"passive_tier_size"`
	PassiveTierMultiple []uint64 `yaml:"passive_tier_multiple"`

	RelocateFirstMultiple uint64 `yaml:"relocate_first_multiple"`
	RelocateMultiple      uint64 `yaml:"relocate_multiple"`
}

// PuzzleConfig contains timers for the puzzle levels
type PuzzleConfig struct {
	Economy EconomyConfig `yaml:"economy"`

	EnigmaDigits int `yaml:"enigma_digits"`

	TimeStopDuration float64 `yaml:"time_stop_duration"`

	PowerDrainRate     float64 `yaml:"power_drain_rate"` // percent per second
	PowerDrainBoost    float64 `yaml:"power_drain_boost"`
	PowerOutCueSeconds float64 `yaml:"power_out_cue_seconds"`
}

// DeathConfig contains the death and restart sequence timings
type DeathConfig struct {
	RestartDelayFrames int `yaml:"restart_delay_frames"`
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA `yaml:"-"`
	TitleText    string     `yaml:"title_text"`
	HintText     string     `yaml:"hint_text"`
}

// UIConfig contains HUD and debug drawing configuration
type UIConfig struct {
	HUDFontSize   float64 `yaml:"hud_font_size"`
	TitleFontSize float64 `yaml:"title_font_size"`
	HUDMargin     float64 `yaml:"hud_margin"`
	HUDLineHeight float64 `yaml:"hud_line_height"`

	PowerOutAlpha uint8 `yaml:"power_out_alpha"`
}

// DebugConfig contains debug drawing toggles
type DebugConfig struct {
	Enabled bool `yaml:"enabled"`

	// Seed fixes the puzzle RNG; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// Config is the top-level game configuration
type Config struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Title        string `yaml:"title"`
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Orb OrbConfig
var Pushable PushableConfig
var Level LevelConfig
var Puzzle PuzzleConfig
var Death DeathConfig
var LevelComplete LevelCompleteConfig
var UI UIConfig
var Debug DebugConfig

var (
	White       = color.RGBA{255, 255, 255, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	Background  = color.RGBA{24, 20, 37, 255}
	Terrain     = color.RGBA{90, 105, 136, 255}
	OneWay      = color.RGBA{139, 155, 180, 255}
	Gate        = color.RGBA{254, 174, 52, 255}
	Interactive = color.RGBA{99, 199, 77, 255}
	SpikeRed    = color.RGBA{228, 59, 68, 255}
	Crate       = color.RGBA{184, 111, 80, 255}
	PlayerBlue  = color.RGBA{0, 153, 219, 255}
	OrbYellow   = color.RGBA{254, 231, 97, 255}
	OrbBlue     = color.RGBA{44, 232, 245, 255}
	OrbGreen    = color.RGBA{62, 137, 72, 255}
	OrbDash     = color.RGBA{181, 80, 136, 255}
	PadPink     = color.RGBA{246, 117, 122, 255}
	Spider      = color.RGBA{104, 56, 108, 255}
	HUDText     = color.RGBA{255, 255, 255, 230}
	HUDShadow   = color.RGBA{0, 0, 0, 160}
	Overlay     = color.RGBA{0, 0, 0, 180}
)

// Tile returns the configured tile size.
func Tile() float64 {
	return Level.TileSize
}

func init() {
	C = &Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		Title:        "Die to Win",
	}

	Physics = PhysicsConfig{
		XVelocity:           500,
		JumpVelocity:        1400,
		Gravity:             6000,
		TerminalVelocity:    4000,
		CoyoteTime:          0.03,
		MaxFrameTime:        0.05,
		GapToleranceDivisor: 9,
	}

	// 720 / 10 rows visible
	Level = LevelConfig{
		TileSize:       72,
		Columns:        19,
		Rows:           11,
		ViewOffsetX:    -72 * 11 / 18,
		ViewOffsetY:    -72 * 9 / 18,
		GateRiseTiles:  3,
		GateSpeed:      150,
		SpikeSinkTiles: 1,
		SpikeSpeed:     72,
		RelocateSpeed:  144,
	}

	Player = PlayerConfig{
		Width:    72,
		Height:   72,
		SpawnCol: 3,
		SpawnRow: 9,
	}

	Orb = OrbConfig{
		BlueLaunchFactor:   0.4,
		GreenLaunchFactor:  1.0,
		YellowPadFactor:    1.3,
		PinkPadFactor:      0.8,
		DashSpeedFactor:    1.5,
		DashRiseFactor:     0,
		GreenRotationSpeed: 180,
	}

	Pushable = PushableConfig{
		PushSpeed:     300,
		CrushVelocity: 1500,
		SensorDivisor: 6,
	}

	Puzzle = PuzzleConfig{
		Economy: EconomyConfig{
			StartingGain:          1,
			Gain:                  UpgradeConfig{InitialCost: 10, Cap: 20},
			Passive:               UpgradeConfig{InitialCost: 50, Cap: 15},
			Relocate:              UpgradeConfig{InitialCost: 100, Cap: 3},
			GoalCost:              100000,
			PassiveTierSize:       5,
			PassiveTierMultiple:   []uint64{2, 3, 5},
			RelocateFirstMultiple: 100,
			RelocateMultiple:      4,
		},
		EnigmaDigits:       4,
		TimeStopDuration:   5,
		PowerDrainRate:     1,
		PowerDrainBoost:    4,
		PowerOutCueSeconds: 4,
	}

	Death = DeathConfig{
		RestartDelayFrames: 45,
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: color.RGBA{0, 0, 0, 150},
		TitleText:    "LEVEL CLEAR",
		HintText:     "Press Enter to continue",
	}

	UI = UIConfig{
		HUDFontSize:   22,
		TitleFontSize: 48,
		HUDMargin:     16,
		HUDLineHeight: 28,
		PowerOutAlpha: 235,
	}

	Debug = DebugConfig{
		Enabled: false,
	}
}
