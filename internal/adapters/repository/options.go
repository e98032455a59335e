package repository

import "github.com/okian/podium/pkg/logger"

// Option applies a configuration option to the SnapshotStore.
type Option func(*SnapshotStore)

// WithContinentResolver derives the continent of medals, medal totals and
// athletes from their country.
func WithContinentResolver(r ContinentResolver) Option {
	return func(s *SnapshotStore) {
		s.resolver = r
	}
}

// WithVenueAnnotator attaches coordinates and categories to venues.
func WithVenueAnnotator(a VenueAnnotator) Option {
	return func(s *SnapshotStore) {
		s.annotator = a
	}
}

// WithReferenceYear sets the year athlete ages are computed against.
func WithReferenceYear(year int) Option {
	return func(s *SnapshotStore) {
		if year > 0 {
			s.referenceYear = year
		}
	}
}

// WithLogger overrides the component logger.
func WithLogger(l logger.Logger) Option {
	return func(s *SnapshotStore) {
		if l != nil {
			s.log = l
		}
	}
}
