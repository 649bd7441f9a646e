package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"

	"github.com/twpayne/go-hexelevation"
)

const version = "v0.1.0"

var cli struct {
	Logging    string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version    versionFlag `help:"Print version information and quit." name:"version" short:"v"`
	Image      string      `help:"Global equirectangular grayscale elevation image." arg:"" type:"existingfile" placeholder:"<image>"`
	Lat        float64     `help:"Latitude of the center." default:"35.6895"`
	Lng        float64     `help:"Longitude of the center." default:"139.6917"`
	Resolution int         `help:"H3 resolution." default:"5"`
	K          int         `help:"Number of rings around the center cell." short:"k" default:"30"`
	Workers    int         `help:"Number of sampling workers, 0 for one per CPU." default:"0"`
	Format     string      `help:"Output format." enum:"text,geojson" default:"text"`
	Projection string      `help:"Target CRS for cell positions, e.g. epsg:3857. Empty for plain scaled degrees."`
	Scale      float64     `help:"Scale factor applied to cell positions." default:"400"`
}

type versionFlag string

func (v versionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v versionFlag) IsBool() bool                         { return true }
func (v versionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func run() error {
	grid, err := hexelevation.LoadRasterGrid(os.DirFS(filepath.Dir(cli.Image)), filepath.Base(cli.Image))
	if err != nil {
		return err
	}
	sigolo.Debugf("Loaded %dx%d raster from %s", grid.Width(), grid.Height(), cli.Image)

	index := hexelevation.NewH3Index()
	service, err := hexelevation.NewService(
		grid,
		hexelevation.WithGridIndex(index),
		hexelevation.WithResolution(cli.Resolution),
		hexelevation.WithServiceWorkers(cli.Workers),
	)
	if err != nil {
		return err
	}

	result, err := service.Disk(context.Background(), hexelevation.LatLng{Lat: cli.Lat, Lng: cli.Lng}, cli.K)
	if err != nil {
		return err
	}
	sigolo.Debugf("Sampled %d cells around %x", len(result.Cells), uint64(result.Center))

	switch cli.Format {
	case "geojson":
		fc, err := result.FeatureCollection(index)
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(fc)
	default:
		var layout hexelevation.Layout = hexelevation.ScaledLayout{Scale: cli.Scale}
		if cli.Projection != "" {
			layout, err = hexelevation.NewProjectedLayout(cli.Projection, cli.Scale)
			if err != nil {
				return err
			}
		}
		positions, err := result.Positions(layout)
		if err != nil {
			return err
		}
		for i, cell := range result.Cells {
			fmt.Printf("%x\t%.3f\t%.3f\t%s\t%s\n",
				uint64(cell.Cell), positions[i].X, positions[i].Y, cell.Color.Hex(),
				strings.ReplaceAll(cell.Label(), "\n", " "))
		}
		return nil
	}
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("hexelevation"),
		kong.Description("Samples the elevation and color of H3 cells around a point from an elevation image."),
		kong.Vars{
			"version": version,
		},
	)

	switch strings.ToLower(cli.Logging) {
	case "debug":
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	case "trace":
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	default:
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	}

	sigolo.FatalCheck(run())
}
