package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/domain/venue"
	"github.com/okian/podium/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type fakeSource struct {
	calls int
	err   error
}

func (f *fakeSource) Load(context.Context) (*model.Dataset, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &model.Dataset{
		Athletes: []model.Athlete{
			{Name: "MARCHAND Leon", Country: "France", BirthDate: time.Date(2002, 5, 17, 0, 0, 0, 0, time.UTC)},
			{Name: "DOE Jane", Country: "Kenya"},
		},
		Medals: []model.Medal{
			{Country: "France", MedalType: types.Gold},
			{Country: "Atlantis", MedalType: types.Silver},
		},
		MedalTotals: []model.MedalTotal{{Country: "United States", Gold: 40}},
		Venues:      []model.Venue{{Name: "Stade de France"}, {Name: "Unknown Shed"}},
		LoadedAt:    time.Now(),
	}, nil
}

func TestSnapshotStore(t *testing.T) {
	Convey("Given a store with a resolver and a locator", t, func() {
		ctx := context.Background()
		src := &fakeSource{}
		loc := venue.NewLocator()
		defer loc.Close()
		store := repository.NewSnapshotStore(src,
			repository.WithContinentResolver(country.NewResolver()),
			repository.WithVenueAnnotator(loc),
			repository.WithReferenceYear(2025),
		)

		Convey("When nothing has been loaded", func() {
			_, err := store.Snapshot()
			So(errors.Is(err, repository.ErrNotLoaded), ShouldBeTrue)
		})

		Convey("When the dataset is loaded", func() {
			So(store.Load(ctx), ShouldBeNil)
			ds, err := store.Snapshot()
			So(err, ShouldBeNil)

			Convey("Then ages are derived from the reference year", func() {
				So(*ds.Athletes[0].Age, ShouldEqual, 23)
				So(ds.Athletes[1].Age, ShouldBeNil)
			})

			Convey("Then continents are attached", func() {
				So(ds.Medals[0].Continent, ShouldEqual, types.Europe)
				So(ds.Medals[1].Continent, ShouldEqual, types.Unknown)
				So(ds.MedalTotals[0].Continent, ShouldEqual, types.NorthAmerica)
				So(ds.Athletes[1].Continent, ShouldEqual, types.Africa)
			})

			Convey("Then venues are located and categorised", func() {
				So(ds.Venues[0].Located(), ShouldBeTrue)
				So(ds.Venues[0].Type, ShouldEqual, types.Stadium)
				So(ds.Venues[1].Located(), ShouldBeFalse)
			})
		})

		Convey("When a reload fails", func() {
			So(store.Load(ctx), ShouldBeNil)
			first, _ := store.Snapshot()
			src.err = errors.New("disk gone")
			err := store.Load(ctx)

			Convey("Then the previous snapshot is kept", func() {
				So(err, ShouldNotBeNil)
				current, _ := store.Snapshot()
				So(current, ShouldEqual, first)
				So(src.calls, ShouldEqual, 2)
			})
		})
	})

	Convey("Given a store without a source", t, func() {
		store := repository.NewSnapshotStore(nil)
		So(errors.Is(store.Load(context.Background()), repository.ErrNoSource), ShouldBeTrue)

		ds := &model.Dataset{}
		store.Set(ds)
		got, err := store.Snapshot()
		So(err, ShouldBeNil)
		So(got, ShouldEqual, ds)
	})
}

func TestAgeAt(t *testing.T) {
	Convey("Given birth dates", t, func() {
		So(*repository.AgeAt(time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), 2025), ShouldEqual, 26)
		So(repository.AgeAt(time.Time{}, 2025), ShouldBeNil)
	})
}
