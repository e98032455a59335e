// Command locate-venues resolves every venue in the dataset directory to
// map coordinates and prints them as a table or as JSON lines. It uses the same
// configuration as the server, so it can warm up or audit the geocoder
// settings before deployment.
package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/okian/podium/internal/adapters/dataset"
	"github.com/okian/podium/internal/adapters/geocode"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/domain/venue"
	"github.com/okian/podium/pkg/logger"
)

type result struct {
	Venue string `json:"venue"`
	venue.Location
	Category string `json:"category"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command and returns its exit code. Every deferred
// cleanup has run by the time it returns.
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("locate-venues", flag.ContinueOnError)
	var (
		dataDir  = flags.String("data", "", "Dataset directory (overrides PODIUM_DATA_DIR)")
		offline  = flags.Bool("offline", false, "Use only the built-in fallback coordinates")
		onlyMiss = flags.Bool("unplaced", false, "Print only venues that could not be placed")
		format   = flags.String("format", "table", "Output format: table or json")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// Logs go to stderr so stdout stays machine-readable.
	if err := logger.Init(logger.WithOutput(os.Stderr), logger.WithColor()); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load config", logger.Error(err))
		return 1
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	_ = logger.SetLevelString(cfg.LogLevel)

	ds, err := dataset.NewLoader(cfg.DataDir).Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load datasets", logger.String("data_dir", cfg.DataDir), logger.Error(err))
		return 1
	}

	opts := []venue.Option{
		venue.WithWorkers(cfg.VenueWorkers),
		venue.WithAttemptTimeout(cfg.GeocoderTimeout()),
		venue.WithRegion(cfg.GeocoderCity, cfg.GeocoderCountry),
	}
	if cfg.GeocoderEnabled && !*offline {
		opts = append(opts, venue.WithGeocoder(geocode.New(cfg.GeocoderURL,
			geocode.WithHTTPClient(&http.Client{Timeout: cfg.GeocoderTimeout()}),
			geocode.WithUserAgent(cfg.GeocoderUserAgent),
			geocode.WithRate(cfg.GeocoderRatePerSec),
			geocode.WithBreaker(cfg.BreakerMaxFailures, cfg.BreakerOpen()),
		)))
	}
	loc := venue.NewLocator(opts...)
	defer loc.Close()

	names := make([]string, 0, len(ds.Venues))
	for _, v := range ds.Venues {
		names = append(names, v.Name)
	}
	located := loc.LocateAll(ctx, names)
	rows, placed := collect(located, *onlyMiss)

	if *format == "json" {
		if err := writeJSONLines(stdout, rows); err != nil {
			log.Error(ctx, "failed to write result", logger.Error(err))
			return 1
		}
	} else {
		renderTable(stdout, rows)
	}

	log.Info(ctx, "venues located",
		logger.Int("venues", len(located)),
		logger.Int("placed", placed),
		logger.Int("unplaced", len(located)-placed))
	return 0
}

// collect sorts located venues by name and counts the placed ones. With
// onlyMiss, placed venues are counted but left out of rows.
func collect(located map[string]venue.Location, onlyMiss bool) (rows []result, placed int) {
	keys := make([]string, 0, len(located))
	for name := range located {
		keys = append(keys, name)
	}
	slices.Sort(keys)

	rows = make([]result, 0, len(keys))
	for _, name := range keys {
		l := located[name]
		if l.Found {
			placed++
			if onlyMiss {
				continue
			}
		}
		rows = append(rows, result{Venue: name, Location: l, Category: string(venue.CategoryOf(name))})
	}
	return rows, placed
}

func writeJSONLines(w io.Writer, rows []result) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, rows []result) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Venue", "Category", "Latitude", "Longitude", "Source"})
	for _, r := range rows {
		lat, lon := "-", "-"
		if r.Found {
			lat = strconv.FormatFloat(r.Latitude, 'f', 4, 64)
			lon = strconv.FormatFloat(r.Longitude, 'f', 4, 64)
		}
		table.Append([]string{r.Venue, r.Category, lat, lon, r.Source})
	}
	table.Render()
}
