package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"

	"github.com/transit-tools/buslocator"
	"github.com/transit-tools/buslocator/config"
	"github.com/transit-tools/buslocator/gtfsrt"
	"github.com/transit-tools/buslocator/locator"
	"github.com/transit-tools/buslocator/poller"
	"github.com/transit-tools/buslocator/publish"
)

func main() {
	if os.Getenv("BUSLOCATOR_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("BUSLOCATOR_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	busesFlag := &cli.StringFlag{
		Name:     "buses",
		Usage:    "comma-separated vehicle identifiers to track",
		Required: true,
	}
	configFlag := &cli.StringFlag{
		Name:  "config",
		Usage: "path to config.yml",
	}

	app := &cli.App{
		Name:        "buslocator",
		Description: "Polls a GTFS-RT vehicle-positions feed and serves the tracked vehicle set as map-ready geospatial rows",

		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "run the poll loop and presentation server",
				Flags:  []cli.Flag{configFlag, busesFlag},
				Action: runAction,
			},
			{
				Name:   "oneshot",
				Usage:  "run a single poll cycle and print the snapshot as JSON",
				Flags:  []cli.Flag{configFlag, busesFlag},
				Action: oneshotAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

// setup loads config and builds the poller shared by both commands.
func setup(c *cli.Context) (*poller.Poller, config.AppConfig, error) {
	if err := config.LoadAppConfig(c.String("config")); err != nil {
		return nil, config.AppConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Config

	ids, err := locator.ParseVehicleIDs(c.String("buses"), cfg.Poll.MaxIdentifiers)
	if err != nil {
		return nil, config.AppConfig{}, err
	}

	loc, err := time.LoadLocation(cfg.Poll.TargetTimezone)
	if err != nil {
		return nil, config.AppConfig{}, fmt.Errorf("unknown target timezone %q: %w", cfg.Poll.TargetTimezone, err)
	}

	client := gtfsrt.NewClient(cfg.Feed.URL, cfg.Feed.FeedHeaders(), time.Duration(cfg.Feed.TimeoutMS)*time.Millisecond)
	interval := time.Duration(cfg.Poll.IntervalSeconds) * time.Second

	log.Info().
		Str("feed", cfg.Feed.URL).
		Ints("buses", ids).
		Dur("interval", interval).
		Str("timezone", cfg.Poll.TargetTimezone).
		Msg("Tracking vehicles")

	return poller.New(client, ids, interval, loc), cfg, nil
}

func runAction(c *cli.Context) error {
	p, cfg, err := setup(c)
	if err != nil {
		return err
	}

	var pub *publish.RedisPublisher
	if cfg.Redis.Address != "" {
		pub, err = publish.NewRedisPublisher(cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = pub.Close() }()
	}

	store := buslocator.NewSnapshotStore()
	ctx, cancel := context.WithCancel(c.Context)

	go p.Run(ctx)
	go func() {
		for snap := range p.Snapshots() {
			store.Set(snap)
			if snap.Empty() {
				log.Info().Msg("No buses in service")
			} else {
				log.Info().Int("vehicles", len(snap.Rows)).
					Float64("centerLat", snap.Center.Lat).
					Float64("centerLng", snap.Center.Lng).
					Msg("Updated vehicle positions")
			}
			if pub != nil {
				if err := pub.Publish(ctx, snap); err != nil {
					log.Error().Err(err).Msg("Failed to publish snapshot")
				}
			}
		}
	}()

	buslocator.StartServer(cfg.Server.Port, store)
	buslocator.HandleGracefulShutdown(cancel)
	return nil
}

func oneshotAction(c *cli.Context) error {
	p, _, err := setup(c)
	if err != nil {
		return err
	}

	snap := p.Cycle(c.Context)
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
