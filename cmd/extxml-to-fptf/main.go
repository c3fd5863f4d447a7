package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"

	extxmlfptf "github.com/saarmobil/extxml-to-fptf"
	"github.com/saarmobil/extxml-to-fptf/config"
	"github.com/saarmobil/extxml-to-fptf/extxml"
	"github.com/saarmobil/extxml-to-fptf/formatter"
	"github.com/saarmobil/extxml-to-fptf/internal"
)

var kinds = map[string]extxml.LocationKind{
	"station": extxml.KindStation,
	"address": extxml.KindAddress,
	"poi":     extxml.KindPOI,
	"any":     extxml.KindAny,
}

func main() {
	app := &cli.App{
		Name:  "extxml-to-fptf",
		Usage: "query an ExtXML endpoint and print normalized FPTF records",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "log unrecognized response elements"},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "search for stations, addresses or POIs",
				ArgsUsage: "<query text>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Value: "station", Usage: "station|address|poi|any"},
					&cli.StringFlag{Name: "filter", Usage: "only print results whose name contains this text"},
					&cli.BoolFlag{Name: "compact", Usage: "print compact JSON instead of indented"},
				},
				Action: runSearch,
			},
		},
		Before: func(c *cli.Context) error {
			internal.InitLogging(c.Bool("debug"))
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func runSearch(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("search needs a query text", 2)
	}
	kind, ok := kinds[c.String("type")]
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown location type %q", c.String("type")), 2)
	}

	if err := config.LoadAppConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	client, err := extxmlfptf.New(config.Config)
	if err != nil {
		return err
	}

	results, err := client.SearchBatch(context.Background(), []extxml.SearchQuery{
		{Text: c.Args().First(), Kind: kind},
	})
	if err != nil {
		return err
	}

	places := formatter.FilterPlaces(results[0], c.String("filter"))
	out, err := formatter.NewResultBuilder(!c.Bool("compact")).BuildJSON(places)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
