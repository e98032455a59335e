package venue_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/domain/venue"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// fakeGeocoder answers from a fixed query table and records every call.
type fakeGeocoder struct {
	mu      sync.Mutex
	answers map[string]venue.Coordinates
	queries []string
	delay   time.Duration
	block   bool
	failure error

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeGeocoder) Geocode(ctx context.Context, query string) (venue.Coordinates, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		cur := f.maxInFlight.Load()
		if n <= cur || f.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}

	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return venue.Coordinates{}, ctx.Err()
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	failure := f.failure
	f.mu.Unlock()
	if failure != nil {
		return venue.Coordinates{}, failure
	}
	if c, ok := f.answers[query]; ok {
		return c, nil
	}
	return venue.Coordinates{}, venue.ErrNotFound
}

func (f *fakeGeocoder) fail(err error) {
	f.mu.Lock()
	f.failure = err
	f.mu.Unlock()
}

func (f *fakeGeocoder) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func TestLocateAll(t *testing.T) {
	Convey("Given a locator backed by a fake geocoder", t, func() {
		ctx := context.Background()
		geo := &fakeGeocoder{answers: map[string]venue.Coordinates{
			"Paris Expo, Paris, France":  {Latitude: 48.8320, Longitude: 2.2870},
			"Le Golf Club, Paris":        {Latitude: 48.7000, Longitude: 2.1000},
			"Centre Aquatique Olympique": {Latitude: 48.9240, Longitude: 2.3560},
		}}
		loc := venue.NewLocator(venue.WithGeocoder(geo))
		defer loc.Close()

		Convey("When locating a venue present in the fallback table", func() {
			got := loc.LocateAll(ctx, []string{"Stade de France"})

			Convey("Then the fallback coordinates are returned without any external call", func() {
				So(got["Stade de France"].Found, ShouldBeTrue)
				So(got["Stade de France"].Latitude, ShouldEqual, 48.9244)
				So(got["Stade de France"].Longitude, ShouldEqual, 2.3601)
				So(got["Stade de France"].Source, ShouldEqual, "fallback")
				So(geo.calls(), ShouldBeEmpty)
			})
		})

		Convey("When a fallback key is a substring of the name in a different case", func() {
			got := loc.LocateAll(ctx, []string{"BERCY ARENA 2"})
			So(got["BERCY ARENA 2"].Latitude, ShouldEqual, 48.8386)
			So(geo.calls(), ShouldBeEmpty)
		})

		Convey("When the same unresolved venue is located twice", func() {
			first := loc.LocateAll(ctx, []string{"Paris Expo"})
			second := loc.LocateAll(ctx, []string{"Paris Expo"})

			Convey("Then only the first call reaches the geocoder", func() {
				So(first["Paris Expo"].Found, ShouldBeTrue)
				So(first["Paris Expo"].Source, ShouldEqual, "external")
				So(second["Paris Expo"].Coordinates, ShouldResemble, first["Paris Expo"].Coordinates)
				So(second["Paris Expo"].Source, ShouldEqual, "cache")
				So(geo.calls(), ShouldHaveLength, 1)
				So(loc.Cached(), ShouldEqual, 1)
			})
		})

		Convey("When earlier phrasings miss", func() {
			got := loc.LocateAll(ctx, []string{"Le Golf Club"})

			Convey("Then phrasings are tried in order until one hits", func() {
				So(got["Le Golf Club"].Found, ShouldBeTrue)
				So(geo.calls(), ShouldResemble, []string{
					"Le Golf Club, Paris, France",
					"Le Golf Club, Paris",
				})
			})
		})

		Convey("When only the bare name resolves", func() {
			got := loc.LocateAll(ctx, []string{"Centre Aquatique Olympique"})
			So(got["Centre Aquatique Olympique"].Found, ShouldBeTrue)
			So(geo.calls(), ShouldHaveLength, 3)
		})

		Convey("When no phrasing resolves", func() {
			got := loc.LocateAll(ctx, []string{"Nowhere Hall"})
			again := loc.LocateAll(ctx, []string{"Nowhere Hall"})

			Convey("Then the venue is reported unplaced and the miss is cached", func() {
				So(got, ShouldContainKey, "Nowhere Hall")
				So(got["Nowhere Hall"].Found, ShouldBeFalse)
				So(again["Nowhere Hall"].Found, ShouldBeFalse)
				So(geo.calls(), ShouldHaveLength, 3)
			})
		})

		Convey("When names repeat or are empty", func() {
			got := loc.LocateAll(ctx, []string{"Paris Expo", "", "Paris Expo", "Invalides"})

			Convey("Then each distinct name is resolved once", func() {
				So(got, ShouldHaveLength, 2)
				So(geo.calls(), ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given many venues and a slow geocoder", t, func() {
		geo := &fakeGeocoder{answers: map[string]venue.Coordinates{}, delay: 20 * time.Millisecond}
		loc := venue.NewLocator(venue.WithGeocoder(geo), venue.WithWorkers(3))
		defer loc.Close()

		names := []string{"A Hall", "B Hall", "C Hall", "D Hall", "E Hall", "F Hall", "G Hall", "H Hall"}
		got := loc.LocateAll(context.Background(), names)

		Convey("Then concurrency never exceeds the pool width", func() {
			So(got, ShouldHaveLength, len(names))
			So(geo.maxInFlight.Load(), ShouldBeLessThanOrEqualTo, 3)
			So(geo.maxInFlight.Load(), ShouldBeGreaterThan, 0)
		})
	})

	Convey("Given a geocoder that never answers", t, func() {
		geo := &fakeGeocoder{block: true}
		loc := venue.NewLocator(venue.WithGeocoder(geo), venue.WithAttemptTimeout(10*time.Millisecond))
		defer loc.Close()

		start := time.Now()
		got := loc.LocateAll(context.Background(), []string{"Hanging Hall"})

		Convey("Then every phrasing times out and the venue is unplaced", func() {
			So(got["Hanging Hall"].Found, ShouldBeFalse)
			So(geo.calls(), ShouldHaveLength, 3)
			So(time.Since(start), ShouldBeLessThan, 2*time.Second)
		})

		Convey("Then the timeout is not cached", func() {
			So(loc.Cached(), ShouldEqual, 0)
		})
	})

	Convey("Given a geocoder that is temporarily unavailable", t, func() {
		geo := &fakeGeocoder{answers: map[string]venue.Coordinates{
			"Venue One":   {Latitude: 48.1, Longitude: 2.1},
			"Venue Two":   {Latitude: 48.2, Longitude: 2.2},
			"Venue Three": {Latitude: 48.3, Longitude: 2.3},
		}}
		geo.fail(errors.New("service unavailable"))
		loc := venue.NewLocator(venue.WithGeocoder(geo), venue.WithWorkers(1))
		defer loc.Close()

		names := []string{"Venue One", "Venue Two", "Venue Three"}
		during := loc.LocateAll(context.Background(), names)

		Convey("When the outage ends and the venues are located again", func() {
			geo.fail(nil)
			after := loc.LocateAll(context.Background(), names)

			Convey("Then failed lookups were not cached and are retried", func() {
				for _, name := range names {
					So(during[name].Found, ShouldBeFalse)
					So(after[name].Found, ShouldBeTrue)
					So(after[name].Source, ShouldEqual, metrics.SourceExternal)
				}
				So(loc.Cached(), ShouldEqual, 3)
			})
		})
	})

	Convey("Given a locator without a geocoder", t, func() {
		loc := venue.NewLocator()
		defer loc.Close()

		got := loc.LocateAll(context.Background(), []string{"Grand Palais", "Mystery Dome"})
		So(got["Grand Palais"].Found, ShouldBeTrue)
		So(got["Mystery Dome"].Found, ShouldBeFalse)
	})
}

func TestCategoryOf(t *testing.T) {
	Convey("Given venue names", t, func() {
		Convey("Then the first matching category wins", func() {
			So(venue.CategoryOf("Stade de France"), ShouldEqual, types.Stadium)
			So(venue.CategoryOf("Bercy Arena"), ShouldEqual, types.Stadium)
			So(venue.CategoryOf("Paris La Defense Arena"), ShouldEqual, types.Stadium)
			So(venue.CategoryOf("Marseille Marina"), ShouldEqual, types.Aquatic)
			So(venue.CategoryOf("Grand Palais"), ShouldEqual, types.Indoor)
			So(venue.CategoryOf("Saint-Quentin-en-Yvelines Velodrome"), ShouldEqual, types.Indoor)
			So(venue.CategoryOf("Elancourt Hill"), ShouldEqual, types.Outdoor)
			So(venue.CategoryOf("Le Golf National"), ShouldEqual, types.Outdoor)
			So(venue.CategoryOf("Château de Versailles"), ShouldEqual, types.Historic)
			So(venue.CategoryOf("Pont Alexandre III"), ShouldEqual, types.Historic)
		})

		Convey("Then matching ignores case", func() {
			So(venue.CategoryOf("eiffel tower STADIUM"), ShouldEqual, types.Stadium)
			So(venue.CategoryOf("HÔTEL DE VILLE"), ShouldEqual, types.Historic)
		})

		Convey("Then unmatched names are Other", func() {
			So(venue.CategoryOf("La Concorde"), ShouldEqual, types.Other)
			So(venue.CategoryOf(""), ShouldEqual, types.Other)
		})

		Convey("Then each category has a palette", func() {
			So(venue.PaletteOf(types.Stadium).Hex, ShouldEqual, "#e74c3c")
			So(venue.PaletteOf(types.Aquatic).RGBA, ShouldResemble, [4]int{52, 152, 219, 200})
			So(venue.PaletteOf(types.VenueType("Moon")).Hex, ShouldEqual, "#95a5a6")
			So(venue.Palettes(), ShouldHaveLength, 6)
		})
	})
}

func TestAnnotate(t *testing.T) {
	Convey("Given venue rows with and without coordinates", t, func() {
		geo := &fakeGeocoder{answers: map[string]venue.Coordinates{}}
		loc := venue.NewLocator(venue.WithGeocoder(geo))
		defer loc.Close()

		lat, lon := 1.5, 2.5
		rows := []model.Venue{
			{Name: "Custom Stadium", Latitude: &lat, Longitude: &lon},
			{Name: "Stade de France"},
			{Name: "Unknown Shed"},
		}
		got := loc.Annotate(context.Background(), rows)

		Convey("Then supplied coordinates are kept and the rest are located", func() {
			So(*got[0].Latitude, ShouldEqual, 1.5)
			So(*got[1].Latitude, ShouldEqual, 48.9244)
			So(got[2].Latitude, ShouldBeNil)
			So(rows[1].Latitude, ShouldBeNil)
		})

		Convey("Then every row is categorised", func() {
			So(got[0].Type, ShouldEqual, types.Stadium)
			So(got[0].Color, ShouldEqual, "#e74c3c")
			So(got[2].Type, ShouldEqual, types.Other)
			So(got[2].ColorRGBA, ShouldResemble, [4]int{149, 165, 166, 200})
		})

		Convey("Then map points drop unplaced venues", func() {
			points := venue.MapPoints(got)
			So(points, ShouldHaveLength, 2)
			So(geo.calls(), ShouldNotContain, "Custom Stadium, Paris, France")
		})
	})
}
