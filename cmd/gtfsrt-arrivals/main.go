package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	lib "github.com/theoremus-urban-solutions/gtfsrt-arrivals"
	"github.com/theoremus-urban-solutions/gtfsrt-arrivals/config"
	"github.com/theoremus-urban-solutions/gtfsrt-arrivals/formatter"
)

func main() {
	_ = godotenv.Load()

	lib.InitLogging()

	app := &cli.App{
		Name:  "gtfsrt-arrivals",
		Usage: "Upcoming transit arrivals derived from GTFS-Realtime feeds",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config.yml (defaults to the working directory)",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			boardCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the board API with a background feed refresh loop",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			svc := lib.NewService(cfg)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go svc.RunRefreshLoop(ctx)

			lib.StartServer(svc)
			lib.HandleGracefulShutdown()
			return nil
		},
	}
}

func boardCommand() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Refresh once and print arrival boards",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "routeID",
				Usage: "route to query (with --stopID; otherwise configured stops are printed)",
			},
			&cli.StringFlag{
				Name:  "stopID",
				Usage: "stop to query",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "text",
				Usage: "text|json",
			},
			&cli.StringFlag{
				Name:  "tripUpdates",
				Usage: "TripUpdates URL or local file (overrides config)",
			},
			&cli.StringFlag{
				Name:  "vehiclePositions",
				Usage: "VehiclePositions URL or local file (overrides config)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			tripUpdates := cfg.Feed.TripUpdatesURL
			if c.String("tripUpdates") != "" {
				tripUpdates = c.String("tripUpdates")
			}
			vehiclePositions := cfg.Feed.VehiclePositionsURL
			if c.String("vehiclePositions") != "" {
				vehiclePositions = c.String("vehiclePositions")
			}

			f := newFetcher(cfg.Feed.AuthHeaders(), cfg.Feed.Timeout())
			svc := lib.NewServiceWithSources(cfg, f.source(tripUpdates), f.source(vehiclePositions))

			ctx := context.Background()
			if err := svc.Refresh(ctx); err != nil {
				return err
			}

			var boards []lib.Board
			switch {
			case c.String("routeID") != "" && c.String("stopID") != "":
				boards = []lib.Board{svc.BoardFor(ctx, "", c.String("routeID"), c.String("stopID"))}
			case c.String("routeID") != "" || c.String("stopID") != "":
				return fmt.Errorf("routeID and stopID must be given together")
			default:
				boards = svc.ConfiguredBoards(ctx)
				if len(boards) == 0 {
					return fmt.Errorf("no stops configured; pass --routeID and --stopID")
				}
			}

			rb := formatter.NewResponseBuilder()
			if c.String("format") == "json" {
				fmt.Println(string(rb.BuildJSON(boards)))
				return nil
			}
			fmt.Print(string(rb.BuildText(boards)))
			return nil
		},
	}
}
