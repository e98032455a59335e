// Package dataset reads the Olympic CSV files through an in-memory DuckDB
// instance and maps them onto the domain records.
package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
	"golang.org/x/sync/errgroup"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

var mappers = map[string]func(*table, *model.Dataset){
	model.DatasetAthletes:    mapAthletes,
	model.DatasetMedals:      mapMedals,
	model.DatasetMedalTotals: mapMedalTotals,
	model.DatasetEvents:      mapEvents,
	model.DatasetNOCs:        mapNOCs,
	model.DatasetSchedules:   mapSchedule,
	model.DatasetVenues:      mapVenues,
	model.DatasetCoaches:     mapCoaches,
	model.DatasetTeams:       mapTeams,
	model.DatasetMedallists:  mapMedallists,
}

// Loader reads every dataset from a directory.
type Loader struct {
	log   logger.Logger
	dir   string
	files map[string]string
}

// NewLoader creates a Loader for dir. Each dataset is read from
// "<name>.csv" unless overridden with WithFiles.
func NewLoader(dir string, opts ...Option) *Loader {
	ld := &Loader{
		log:   logger.Named("dataset"),
		dir:   dir,
		files: make(map[string]string, len(mappers)),
	}
	for _, name := range model.DatasetNames() {
		ld.files[name] = name + ".csv"
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Path returns the file a dataset is read from.
func (ld *Loader) Path(name string) string {
	return filepath.Join(ld.dir, ld.files[name])
}

// Load reads all datasets. Any missing file fails the whole load with
// ErrMissingDataset before any file is parsed.
func (ld *Loader) Load(ctx context.Context) (*model.Dataset, error) {
	start := time.Now()

	var missing []error
	for _, name := range model.DatasetNames() {
		if _, err := os.Stat(ld.Path(name)); err != nil {
			missing = append(missing, fmt.Errorf("%w: %s: %w", ErrMissingDataset, name, err))
		}
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenDatabase, err)
	}
	defer func() { _ = db.Close() }()

	names := model.DatasetNames()
	tables := make([]*table, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			t, err := readCSV(gctx, db, ld.Path(name))
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrReadDataset, name, err)
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &model.Dataset{}
	for i, name := range names {
		mappers[name](tables[i], ds)
	}
	ds.LoadedAt = time.Now()

	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(elapsed)
	for name, n := range ds.Counts() {
		metrics.UpdateDatasetRows(name, n)
	}
	ld.log.Info(ctx, "datasets loaded",
		logger.String("dir", ld.dir),
		logger.Int("athletes", len(ds.Athletes)),
		logger.Int("medals", len(ds.Medals)),
		logger.Int("schedule", len(ds.Schedule)),
		logger.Duration("elapsed", elapsed))
	return ds, nil
}
