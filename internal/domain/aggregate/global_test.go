package aggregate_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/aggregate"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTopCountries(t *testing.T) {
	Convey("Given the fixture dataset", t, func() {
		ds := fixture()

		Convey("When ranking by bronze", func() {
			l := aggregate.TopCountries(ds, aggregate.Filter{Medals: []types.MedalType{types.Bronze}}, 3)

			Convey("Then the total only counts the selected type", func() {
				So(l.Countries, ShouldHaveLength, 3)
				So(l.Countries[0].Country, ShouldEqual, "United States")
				So(l.Countries[0].Total, ShouldEqual, 42)
				So(l.Countries[1].Country, ShouldEqual, "China")
				So(l.Countries[2].Country, ShouldEqual, "Italy")
				So(l.Countries[2].Total, ShouldEqual, 15)
			})
		})

		Convey("When totals are equal", func() {
			tied := &model.Dataset{MedalTotals: []model.MedalTotal{
				{Country: "Fiji", CountryCode: "FIJ", Continent: types.Oceania, Gold: 1, Silver: 1, Bronze: 1, Total: 3},
				{Country: "Kenya", CountryCode: "KEN", Continent: types.Africa, Gold: 1, Silver: 2, Bronze: 0, Total: 3},
				{Country: "Japan", CountryCode: "JPN", Continent: types.Asia, Gold: 2, Silver: 0, Bronze: 1, Total: 3},
			}}
			l := aggregate.TopCountries(tied, aggregate.Filter{}, 3)

			Convey("Then gold breaks the tie, then silver", func() {
				So(l.Countries, ShouldHaveLength, 3)
				So(l.Countries[0].Country, ShouldEqual, "Japan")
				So(l.Countries[1].Country, ShouldEqual, "Kenya")
				So(l.Countries[2].Country, ShouldEqual, "Fiji")
			})
		})

		Convey("When nothing matches", func() {
			l := aggregate.TopCountries(ds, aggregate.Filter{Countries: []string{"Atlantis"}}, 10)
			So(l.NoData, ShouldBeTrue)
		})
	})
}

func TestByContinent(t *testing.T) {
	Convey("Given the fixture dataset", t, func() {
		l := aggregate.ByContinent(fixture(), aggregate.Filter{})

		Convey("Then continents are ordered by gold with ties alphabetical", func() {
			So(l.Continents, ShouldResemble, []aggregate.ContinentMedals{
				{Continent: types.Asia, Gold: 40, Silver: 27, Bronze: 24},
				{Continent: types.NorthAmerica, Gold: 40, Silver: 44, Bronze: 42},
				{Continent: types.Europe, Gold: 39, Silver: 33, Bronze: 35},
				{Continent: types.Africa, Gold: 4, Silver: 2, Bronze: 5},
				{Continent: types.Oceania, Gold: 0, Silver: 1, Bronze: 0},
			})
		})
	})
}

func TestMedalHierarchy(t *testing.T) {
	Convey("Given two small medal tables", t, func() {
		h := aggregate.MedalHierarchy(fixture(), aggregate.Filter{Countries: []string{"Fiji", "Kenya"}})

		Convey("Then zero counts are skipped", func() {
			So(h.Nodes, ShouldResemble, []aggregate.HierarchyNode{
				{Continent: types.Africa, Country: "Kenya", Medal: "Gold", Count: 4},
				{Continent: types.Africa, Country: "Kenya", Medal: "Silver", Count: 2},
				{Continent: types.Africa, Country: "Kenya", Medal: "Bronze", Count: 5},
				{Continent: types.Oceania, Country: "Fiji", Medal: "Silver", Count: 1},
			})
		})

		Convey("Then an unselected type disappears", func() {
			gold := aggregate.MedalHierarchy(fixture(), aggregate.Filter{
				Countries: []string{"Fiji"},
				Medals:    []types.MedalType{types.Gold},
			})
			So(gold.NoData, ShouldBeTrue)
		})
	})
}

func TestSummaryStats(t *testing.T) {
	Convey("Given the fixture dataset", t, func() {
		So(aggregate.SummaryStats(fixture(), aggregate.Filter{}), ShouldResemble, aggregate.Summary{
			Countries: 7, Gold: 123, Silver: 107, Bronze: 106,
		})

		Convey("When the medal table is empty", func() {
			s := aggregate.SummaryStats(&model.Dataset{}, aggregate.Filter{})
			So(s.NoData, ShouldBeTrue)
			So(s.Gold+s.Silver+s.Bronze, ShouldEqual, 0)
		})
	})
}

func TestWorldMap(t *testing.T) {
	Convey("Given the fixture medal records", t, func() {
		ds := fixture()

		Convey("When mapping every medal with a European detail", func() {
			m := aggregate.WorldMap(ds, aggregate.Filter{}, types.Europe)

			Convey("Then countries are keyed by ISO-3", func() {
				So(m.Countries, ShouldHaveLength, 4)
				So(m.Countries[0].Country, ShouldEqual, "France")
				So(m.Countries[0].Total, ShouldEqual, 3)
				So(m.Countries[1].ISO3, ShouldEqual, "DEU")
				So(m.Countries[2].ISO3, ShouldEqual, "JPN")
				So(m.Countries[3].Gold, ShouldEqual, 1)
			})

			Convey("Then the continent detail lists only European rows", func() {
				So(m.ContinentDetail, ShouldResemble, []aggregate.CountryMedalCount{
					{Country: "France", Medal: types.Gold, Count: 2},
					{Country: "France", Medal: types.Silver, Count: 1},
					{Country: "Germany", Medal: types.Bronze, Count: 1},
					{Country: "Germany", Medal: types.Gold, Count: 1},
				})
				So(m.ContinentNoData, ShouldBeFalse)
			})
		})

		Convey("When mapping silver only with an empty continent", func() {
			m := aggregate.WorldMap(ds, aggregate.Filter{Medals: []types.MedalType{types.Silver}}, types.Oceania)
			So(m.Countries, ShouldHaveLength, 2)
			So(m.Countries[0].Total, ShouldEqual, 1)
			So(m.ContinentNoData, ShouldBeTrue)
		})

		Convey("When the country filter excludes everyone", func() {
			m := aggregate.WorldMap(ds, aggregate.Filter{Countries: []string{"Fiji"}}, "")
			So(m.NoData, ShouldBeTrue)
		})
	})
}

func TestCompare(t *testing.T) {
	Convey("Given the fixture medal records", t, func() {
		ds := fixture()

		Convey("When comparing France and Germany", func() {
			h := aggregate.Compare(ds, "France", "Germany")

			Convey("Then every statistic is split", func() {
				So(h.A.Stats, ShouldResemble, []aggregate.Stat{
					{Name: aggregate.StatTotal, Value: 3},
					{Name: aggregate.StatGold, Value: 2},
					{Name: aggregate.StatSilver, Value: 1},
					{Name: aggregate.StatBronze, Value: 0},
					{Name: aggregate.StatSports, Value: 2},
					{Name: aggregate.StatEvents, Value: 3},
				})
				So(h.TotalA, ShouldEqual, 3)
				So(h.TotalB, ShouldEqual, 2)
				So(h.Outcome, ShouldEqual, types.OutcomeA)
				So(h.Splits[3].PercentA, ShouldEqual, 0)
				So(h.Splits[3].PercentB, ShouldEqual, 100)
			})
		})

		Convey("When the second country is stronger", func() {
			So(aggregate.Compare(ds, "Germany", "France").Outcome, ShouldEqual, types.OutcomeB)
		})

		Convey("When equal totals span different numbers of sports", func() {
			h := aggregate.Compare(ds, "Japan", "France")

			Convey("Then only the medal total decides and the result is a tie", func() {
				So(h.TotalA, ShouldEqual, 3)
				So(h.TotalB, ShouldEqual, 3)
				So(h.Splits[4].A, ShouldEqual, 1)
				So(h.Splits[4].B, ShouldEqual, 2)
				So(h.Outcome, ShouldEqual, types.OutcomeTie)
			})
		})

		Convey("When five golds in one event meet five golds across five sports", func() {
			spread := &model.Dataset{Medals: []model.Medal{
				medal("A", "AAA", types.Europe, types.Gold, "Judo", "E1", "2024-07-27"),
				medal("A", "AAA", types.Europe, types.Gold, "Judo", "E1", "2024-07-28"),
				medal("A", "AAA", types.Europe, types.Gold, "Judo", "E1", "2024-07-29"),
				medal("A", "AAA", types.Europe, types.Gold, "Judo", "E1", "2024-07-30"),
				medal("A", "AAA", types.Europe, types.Gold, "Judo", "E1", "2024-07-31"),
				medal("B", "BBB", types.Asia, types.Gold, "Judo", "E1", "2024-07-27"),
				medal("B", "BBB", types.Asia, types.Gold, "Rowing", "E2", "2024-07-28"),
				medal("B", "BBB", types.Asia, types.Gold, "Fencing", "E3", "2024-07-29"),
				medal("B", "BBB", types.Asia, types.Gold, "Sailing", "E4", "2024-07-30"),
				medal("B", "BBB", types.Asia, types.Gold, "Boxing", "E5", "2024-07-31"),
			}}
			h := aggregate.Compare(spread, "A", "B")
			So(h.TotalA, ShouldEqual, 5)
			So(h.TotalB, ShouldEqual, 5)
			So(h.Outcome, ShouldEqual, types.OutcomeTie)
		})

		Convey("When both countries have identical records", func() {
			tied := &model.Dataset{Medals: []model.Medal{
				medal("A", "AAA", types.Europe, types.Gold, "Judo", "E1", "2024-07-27"),
				medal("B", "BBB", types.Europe, types.Gold, "Judo", "E1", "2024-07-27"),
			}}
			h := aggregate.Compare(tied, "A", "B")
			So(h.Outcome, ShouldEqual, types.OutcomeTie)
			So(h.Splits[0].PercentA, ShouldEqual, 50)
		})

		Convey("When neither country has medals", func() {
			h := aggregate.Compare(ds, "Atlantis", "Lemuria")

			Convey("Then every split is even and the result is a tie", func() {
				So(h.Outcome, ShouldEqual, types.OutcomeTie)
				for _, s := range h.Splits {
					So(s.PercentA, ShouldEqual, 50)
					So(s.PercentB, ShouldEqual, 50)
				}
			})
		})
	})
}
