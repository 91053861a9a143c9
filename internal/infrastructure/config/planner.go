package config

// PlannerConfig holds planner-level settings
type PlannerConfig struct {
	// GameVersion is stamped into save files as the game build the plan
	// targets. Optional, free-form (game builds are not SemVer).
	GameVersion string `mapstructure:"game_version"`

	// AutoloadSnapshot, when set, is the snapshot name loaded at startup.
	AutoloadSnapshot string `mapstructure:"autoload_snapshot"`
}
