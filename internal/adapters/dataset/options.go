package dataset

import "github.com/okian/podium/pkg/logger"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger overrides the component logger.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// WithFiles overrides the file name read for a dataset, e.g.
// WithFiles(map[string]string{model.DatasetVenues: "venues_geo.csv"}).
func WithFiles(files map[string]string) Option {
	return func(ld *Loader) {
		for name, file := range files {
			if file != "" {
				ld.files[name] = file
			}
		}
	}
}
