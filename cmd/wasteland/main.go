// Package main is the entry point for Wasteland Operator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/samdwyer/wasteland/internal/command"
	"github.com/samdwyer/wasteland/internal/config"
	"github.com/samdwyer/wasteland/internal/engine"
	"github.com/samdwyer/wasteland/internal/game"
	"github.com/samdwyer/wasteland/internal/gamedata"
	"github.com/samdwyer/wasteland/internal/rng"
	"github.com/samdwyer/wasteland/internal/script"
	"github.com/samdwyer/wasteland/internal/telemetry"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := flag.Int64("seed", cfg.Seed, "random seed (0 picks one from the clock)")
	scriptPath := flag.String("script", cfg.ScriptPath, "run a YAML command script headless and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("wasteland", version)
		return
	}

	telemetry.ConfigureHoneycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset)

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	if *scriptPath != "" {
		if err := runScript(ctx, catalog, *scriptPath, *seed, seedFlagSet()); err != nil {
			log.Fatalf("Script error: %v", err)
		}
		return
	}

	sess := game.NewSession(engine.New(catalog, rng.Seeded(*seed)), telemetry.Tracer("session"))
	g, err := game.New(sess)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// runScript plays a script to stdout. The script's own seed applies unless
// one was given on the command line.
func runScript(ctx context.Context, catalog *gamedata.Catalog, path string, seed int64, seedSet bool) error {
	sc, err := script.Load(path)
	if err != nil {
		return err
	}
	if !seedSet && sc.Seed != 0 {
		seed = sc.Seed
	}

	sess := game.NewSession(engine.New(catalog, rng.Seeded(seed)), telemetry.Tracer("session"))
	log.Printf("Running %s: %d commands, seed %d, session %s", path, len(sc.Actions), seed, sess.ID)

	report, err := game.RunScript(ctx, sess, command.New(), sc.Actions, os.Stdout)
	if err != nil {
		return err
	}
	log.Printf("Applied %d commands, rejected %d", report.Applied, report.Rejected)
	return nil
}

func seedFlagSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	return set
}
