// Command bitengine decodes a FEN position, runs perft to a given depth,
// and prints the position reached after playing the first legal move —
// a small end-to-end exercise of decode, generate, make, and encode.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	gologging "github.com/op/go-logging"

	"github.com/corvidae/bitengine/chess"
	"github.com/corvidae/bitengine/config"
	"github.com/corvidae/bitengine/internal/logging"
	"github.com/corvidae/bitengine/internal/perft"
)

func main() {
	fen := flag.String("fen", "", "FEN position to load (defaults to the config's default FEN)")
	depth := flag.Int("perft", -1, "perft depth to run (defaults to the config's default depth)")
	parallel := flag.Bool("parallel", false, "run perft with the errgroup-parallel driver")
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	config.Setup(*configPath)

	level, err := gologging.LogLevel(config.Settings.Log.Level)
	if err != nil {
		level = gologging.INFO
	}
	log := logging.Get("bitengine", level)

	position := *fen
	if position == "" {
		position = config.Settings.Perft.DefaultFEN
	}
	runDepth := *depth
	if runDepth < 0 {
		runDepth = config.Settings.Perft.DefaultDepth
	}

	board, err := chess.NewBoard(position)
	if err != nil {
		log.Errorf("invalid FEN %q: %v", position, err)
		os.Exit(1)
	}

	start := time.Now()
	var nodes int
	if *parallel {
		nodes, err = perft.Parallel(context.Background(), board, runDepth, config.Settings.Perft.Workers)
		if err != nil {
			log.Errorf("perft failed: %v", err)
			os.Exit(1)
		}
	} else {
		nodes = perft.Count(board, runDepth)
	}
	log.Infof("perft(%d) from %q: %d nodes in %s", runDepth, position, nodes, time.Since(start))

	moves := board.GenerateLegalMoves()
	if len(moves) == 0 {
		log.Info("no legal moves available from this position")
		return
	}
	board.MakeMove(moves[0])
	fmt.Println(board.EncodeFEN())
}
