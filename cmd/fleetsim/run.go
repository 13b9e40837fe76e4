package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/realmfleet/internal/ai"
	"github.com/talgya/realmfleet/internal/config"
	"github.com/talgya/realmfleet/internal/engine"
	"github.com/talgya/realmfleet/internal/entropy"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/persistence"
)

type runOptions struct {
	configPath string
	difficulty string
	turns      int
	realms     int
	seed       uint64
	mapSize    int
	speed      float64
	saveEvery  int
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a galaxy and play fleet AI turns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGame(cmd, root, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "TOML tuning file")
	f.StringVar(&opts.difficulty, "difficulty", "", "override difficulty: weak, normal, challenging")
	f.IntVar(&opts.turns, "turns", 100, "turns to play (0 runs until interrupted)")
	f.IntVar(&opts.realms, "realms", 4, "number of AI realms")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 = random)")
	f.IntVar(&opts.mapSize, "map-size", 64, "star map width and height")
	f.Float64Var(&opts.speed, "speed", 0, "turns per second (0 = as fast as possible)")
	f.IntVar(&opts.saveEvery, "save-every", 25, "turns between saves")
	return cmd
}

func runGame(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.difficulty != "" {
		if cfg.Difficulty, err = config.ParseDifficulty(opts.difficulty); err != nil {
			return err
		}
	}

	var rng *entropy.Seeded
	if opts.seed != 0 {
		rng = entropy.NewSeeded(opts.seed)
	} else {
		rng = entropy.NewRandom()
	}
	slog.Info("fleetsim starting", "version", Version, "seed", rng.Seed(), "difficulty", cfg.Difficulty)

	gen := galaxy.DefaultGenConfig()
	gen.Width, gen.Height = opts.mapSize, opts.mapSize
	gen.Seed = int64(rng.Seed() & (1<<63 - 1))
	sc, err := newScenario(cfg, gen, opts.realms, rng)
	if err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}
	slog.Info("galaxy generated", "map", sc.game.Map.String(), "realms", len(sc.game.Realms))

	if dir := filepath.Dir(root.dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save dir: %w", err)
		}
	}
	db, err := persistence.Open(root.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	slog.Info("database opened", "path", root.dbPath)

	fleetAI, err := ai.NewEngine(sc.game)
	if err != nil {
		return err
	}

	loop := engine.NewEngine()
	loop.MaxTurns = opts.turns
	loop.Speed = opts.speed
	loop.SaveEvery = opts.saveEvery
	loop.OnTurn = func(turn int) {
		sc.log.Turn = turn
		fleetAI.PlayTurn()
	}
	loop.OnReport = func(turn int) { report(sc, turn) }
	loop.OnSave = func(turn int) error {
		if _, err := db.SaveTurn(turn, sc.game.Realms, sc.log.Drain()); err != nil {
			return fmt.Errorf("save turn %d: %w", turn, err)
		}
		return nil
	}

	start := time.Now()
	if err := loop.Run(cmd.Context()); err != nil {
		return err
	}
	slog.Info("fleetsim finished", "turns", loop.Turn, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// report logs a one-line summary per realm.
func report(sc *scenario, turn int) {
	slog.Info("turn report", "turn", news.TurnLabel(turn), "records", sc.log.Len())
	for _, r := range sc.game.Realms {
		slog.Info("realm status",
			"realm", r.Name,
			"planets", len(sc.game.Map.PlanetsOf(r.ID)),
			"fleets", r.Fleets.Len(),
			"missions", r.Missions.Len(),
			"credits", humanize.Comma(int64(r.Credits)),
			"power", r.MilitaryPower(),
		)
	}
}
