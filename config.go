package deepline

import "github.com/BurntSushi/toml"

// Config holds the tunables for an engine run: search depth and the
// iterative-deepening starting depth, quiescence-lite extra depth, and a
// log level.
type Config struct {
	// FinalDepth is the nominal search horizon D.
	FinalDepth int `toml:"final_depth"`
	// InitialDepth is the depth the iterative-deepening loop starts from,
	// mirroring the original engine's configurable initial_depth rather
	// than hard-coding the loop to start at 1.
	InitialDepth int `toml:"initial_depth"`
	// ExtraDepth is the quiescence-lite extension E.
	ExtraDepth int `toml:"extra_depth"`
	// LogLevel is one of "debug", "info", "warn", "error". Nothing in this
	// module reads it: the logger passed to NewAdapter keeps its own level.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is loaded: a
// depth-6 search with no quiescence extension, matching spec.md §8's
// end-to-end scenarios.
func DefaultConfig() Config {
	return Config{
		FinalDepth:   6,
		InitialDepth: 1,
		ExtraDepth:   0,
		LogLevel:     "info",
	}
}

// LoadConfig reads a TOML configuration file at path, filling any field
// left unset with DefaultConfig's value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
