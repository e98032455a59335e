package model_test

import (
	"testing"
	"time"

	model "github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/smartystreets/goconvey/convey"
)

func TestMedalTotal(t *testing.T) {
	convey.Convey("Given a medal total row", t, func() {
		row := model.MedalTotal{Country: "France", Gold: 16, Silver: 26, Bronze: 22}

		convey.Convey("Then Count should return the per-type value", func() {
			convey.So(row.Count(types.Gold), convey.ShouldEqual, 16)
			convey.So(row.Count(types.Silver), convey.ShouldEqual, 26)
			convey.So(row.Count(types.Bronze), convey.ShouldEqual, 22)
			convey.So(row.Count(types.MedalType("Wooden Spoon")), convey.ShouldEqual, 0)
		})
	})
}

func TestScheduleEntryDay(t *testing.T) {
	convey.Convey("Given schedule entries", t, func() {
		start := time.Date(2024, 7, 27, 9, 30, 0, 0, time.UTC)
		convey.So(model.ScheduleEntry{Start: start}.Day(), convey.ShouldEqual, "2024-07-27")
		convey.So(model.ScheduleEntry{}.Day(), convey.ShouldEqual, "")
	})
}

func TestVenueLocated(t *testing.T) {
	convey.Convey("Given venues with and without coordinates", t, func() {
		lat, lon := 48.9244, 2.3601
		convey.So(model.Venue{Latitude: &lat, Longitude: &lon}.Located(), convey.ShouldBeTrue)
		convey.So(model.Venue{Latitude: &lat}.Located(), convey.ShouldBeFalse)
	})
}

func TestDatasetCounts(t *testing.T) {
	convey.Convey("Given a dataset", t, func() {
		ds := &model.Dataset{Athletes: make([]model.Athlete, 3), Teams: make([]model.Team, 1)}
		counts := ds.Counts()

		convey.So(counts, convey.ShouldHaveLength, len(model.DatasetNames()))
		convey.So(counts[model.DatasetAthletes], convey.ShouldEqual, 3)
		convey.So(counts[model.DatasetTeams], convey.ShouldEqual, 1)

		var nilSet *model.Dataset
		convey.So(nilSet.Counts(), convey.ShouldBeEmpty)
	})
}
