// Package config reads the module's TOML-driven runtime settings: log
// level, and the perft driver's default FEN, depth, and worker count.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings is the global configuration read in from file.
var Settings conf

var initialized = false

type conf struct {
	Log   logConfiguration
	Perft perftConfiguration
}

type logConfiguration struct {
	Level string
}

type perftConfiguration struct {
	DefaultDepth int
	DefaultFEN   string
	Workers      int
}

// Setup reads path into Settings, falling back to built-in defaults for any
// field the file doesn't set. It is safe to call more than once; only the
// first call has an effect.
func Setup(path string) {
	if initialized {
		return
	}
	defaults()

	if path == "" {
		initialized = true
		return
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		fmt.Println(err)
	}
	initialized = true
}

func defaults() {
	Settings = conf{
		Log: logConfiguration{Level: "INFO"},
		Perft: perftConfiguration{
			DefaultDepth: 4,
			DefaultFEN:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			Workers:      4,
		},
	}
}
