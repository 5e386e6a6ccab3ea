package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/racesim/internal/config"
	"github.com/san-kum/racesim/internal/export"
	"github.com/san-kum/racesim/internal/logging"
	"github.com/san-kum/racesim/internal/prompt"
	"github.com/san-kum/racesim/internal/race"
	"github.com/san-kum/racesim/internal/tui"
	"github.com/san-kum/racesim/internal/view"
)

var (
	names      string
	rounds     int
	threshold  int
	seed       int64
	configFile string
	preset     string
	jsonOut    string
	plot       bool
	styled     bool
	logLevel   string
	logPretty  bool
	// live replay
	interval time.Duration
	// odds
	races int
)

// main registers the racesim commands and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "racesim",
		Short:         "multi-round car racing simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "log-pretty", true, "human readable log output")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a race and print every round",
		RunE:  runRace,
	}
	addRaceFlags(runCmd)
	runCmd.Flags().StringVar(&jsonOut, "json", "", "export the run as JSON to a path, or - for stdout")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot positions by round")
	runCmd.Flags().BoolVar(&styled, "styled", false, "styled terminal output")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a race and replay it round by round",
		RunE:  runLive,
	}
	addRaceFlags(liveCmd)
	liveCmd.Flags().DurationVar(&interval, "interval", tui.DefaultInterval, "time between rounds")

	oddsCmd := &cobra.Command{
		Use:   "odds",
		Short: "estimate win rates over many seeded races",
		RunE:  runOdds,
	}
	addRaceFlags(oddsCmd)
	oddsCmd.Flags().IntVar(&races, "races", 1000, "number of races")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCARS\tROUNDS\tTHRESHOLD")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", name, p.Names, p.Rounds, p.Threshold)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, oddsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		view.RenderError(os.Stderr, err)
		os.Exit(1)
	}
}

func addRaceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&names, "names", "", "comma separated car names (prompted when empty)")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "number of rounds (prompted when zero)")
	cmd.Flags().IntVar(&threshold, "threshold", race.DefaultThreshold, "a car moves when its draw (0-9) is above this")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func newLogger() (zerolog.Logger, error) {
	return logging.New(os.Stderr, logLevel, logPretty)
}

// resolveConfig layers defaults, preset, config file, environment and flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Rounds = 0

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := config.FromEnv(cfg); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("names") {
		cfg.Names = names
	}
	if cmd.Flags().Changed("rounds") {
		cfg.Rounds = rounds
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = threshold
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupRace builds the cars and round count from cfg, prompting on stdin for
// whatever cfg leaves out.
func setupRace(cfg *config.Config) (*race.Cars, int, error) {
	p := prompt.New(os.Stdin, os.Stdout)

	var (
		cars *race.Cars
		err  error
	)
	if cfg.Names == "" {
		cars, err = p.Cars()
	} else {
		cars, err = race.ParseCars(cfg.Names)
	}
	if err != nil {
		return nil, 0, err
	}

	n := cfg.Rounds
	if n == 0 {
		if n, err = p.Rounds(); err != nil {
			return nil, 0, err
		}
	}
	if n < 1 {
		return nil, 0, &race.RoundCountError{Rounds: n}
	}
	return cars, n, nil
}

func simulate(cmd *cobra.Command) (*race.Field, *config.Config, error) {
	log, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	cars, n, err := setupRace(cfg)
	if err != nil {
		return nil, nil, err
	}

	field := race.NewField(cars, race.NewRandDraw(cfg.Seed), race.WithThreshold(cfg.Threshold))
	field.AddObserver(logging.NewRoundLogger(log))

	log.Info().
		Strs("cars", cars.Names()).
		Int("rounds", n).
		Int("threshold", cfg.Threshold).
		Int64("seed", cfg.Seed).
		Msg("starting race")

	start := time.Now()
	if err := field.Run(n); err != nil {
		return nil, nil, err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Strs("winners", field.Winners()).Msg("race finished")

	return field, cfg, nil
}

func runRace(cmd *cobra.Command, args []string) error {
	field, cfg, err := simulate(cmd)
	if err != nil {
		return err
	}

	rec := field.Results()
	winners := field.Winners()

	if jsonOut == "-" {
		return export.ExportJSON(jsonOut, export.NewRun(field, cfg.Seed))
	}

	if styled {
		if err := view.RenderStyled(os.Stdout, rec, winners); err != nil {
			return err
		}
	} else {
		if err := view.RenderRecord(os.Stdout, rec); err != nil {
			return err
		}
		if err := view.RenderWinners(os.Stdout, winners); err != nil {
			return err
		}
	}

	if plot {
		graph, err := view.PlotPositions(rec)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(graph)
	}

	if jsonOut != "" {
		if err := export.ExportJSON(jsonOut, export.NewRun(field, cfg.Seed)); err != nil {
			return fmt.Errorf("failed to export run: %w", err)
		}
		fmt.Printf("exported to %s\n", jsonOut)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	field, _, err := simulate(cmd)
	if err != nil {
		return err
	}
	return tui.Run(field.Results(), field.Winners(), interval)
}

func runOdds(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cars, n, err := setupRace(cfg)
	if err != nil {
		return err
	}

	log.Info().Int("races", races).Int("rounds", n).Msg("estimating odds")
	start := time.Now()

	ens := race.NewEnsemble(cars.Names(), n, cfg.Threshold, races, cfg.Seed)
	tally, err := ens.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CAR\tWINS\tRATE")
	for _, name := range tally.Names {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", name, tally.Wins[name], 100*tally.WinRate(name))
	}
	fmt.Fprintf(w, "\nraces: %d\tties: %d\telapsed: %v\n", tally.Races, tally.Ties, time.Since(start).Round(time.Millisecond))
	return w.Flush()
}
