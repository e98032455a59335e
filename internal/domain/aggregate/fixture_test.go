package aggregate_test

import (
	"time"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

func intp(v int) *int { return &v }

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func medal(country, code string, c types.Continent, m types.MedalType, discipline, event, date string) model.Medal {
	return model.Medal{
		Country: country, CountryCode: code, Continent: c, MedalType: m,
		Discipline: discipline, Event: event, Date: day(date),
	}
}

func fixture() *model.Dataset {
	return &model.Dataset{
		Athletes: []model.Athlete{
			{Name: "MARCHAND Leon", Gender: "Male", Country: "France", Continent: types.Europe,
				Disciplines: "['Swimming']", Events: "['Men''s 400m IM']", Age: intp(23),
				Coach: "BOWMAN Bob (USA)<br>NICOLAS Fabrice"},
			{Name: "RINER Teddy", Gender: "Male", Country: "France", Continent: types.Europe,
				Disciplines: "['Judo']", Age: intp(36)},
			{Name: "SCHEFFLER Scottie", Gender: "Male", Country: "United States", Continent: types.NorthAmerica,
				Disciplines: "['Golf']", Age: intp(29), Coach: "SMITH Randy, BROWN Joe"},
			{Name: "BILES Simone", Gender: "Female", Country: "United States", Continent: types.NorthAmerica,
				Disciplines: "['Artistic Gymnastics']", Age: intp(28)},
			{Name: "KIPYEGON Faith", Gender: "Female", Country: "Kenya", Continent: types.Africa,
				Disciplines: "['Athletics']"},
		},
		MedalTotals: []model.MedalTotal{
			{Country: "United States", CountryCode: "USA", Continent: types.NorthAmerica, Gold: 40, Silver: 44, Bronze: 42, Total: 126},
			{Country: "China", CountryCode: "CHN", Continent: types.Asia, Gold: 40, Silver: 27, Bronze: 24, Total: 91},
			{Country: "Germany", CountryCode: "GER", Continent: types.Europe, Gold: 12, Silver: 13, Bronze: 8, Total: 33},
			{Country: "Italy", CountryCode: "ITA", Continent: types.Europe, Gold: 12, Silver: 13, Bronze: 15, Total: 40},
			{Country: "Netherlands", CountryCode: "NED", Continent: types.Europe, Gold: 15, Silver: 7, Bronze: 12, Total: 34},
			{Country: "Kenya", CountryCode: "KEN", Continent: types.Africa, Gold: 4, Silver: 2, Bronze: 5, Total: 11},
			{Country: "Fiji", CountryCode: "FIJ", Continent: types.Oceania, Gold: 0, Silver: 1, Bronze: 0, Total: 1},
		},
		Medals: []model.Medal{
			medal("France", "FRA", types.Europe, types.Gold, "Swimming", "Men's 400m IM", "2024-07-28"),
			medal("France", "FRA", types.Europe, types.Gold, "Judo", "Men +100kg", "2024-08-02"),
			medal("France", "FRA", types.Europe, types.Silver, "Judo", "Mixed Team", "2024-08-03"),
			medal("Germany", "GER", types.Europe, types.Bronze, "Swimming", "Men's 400m IM", "2024-07-28"),
			medal("Germany", "GER", types.Europe, types.Gold, "Rowing", "Men's Single Sculls", "2024-08-03"),
			medal("Kenya", "KEN", types.Africa, types.Gold, "Athletics", "Women's 1500m", "2024-08-10"),
			medal("Japan", "JPN", types.Asia, types.Gold, "Judo", "Men -60kg", "2024-07-27"),
			medal("Japan", "JPN", types.Asia, types.Gold, "Judo", "Women -48kg", "2024-07-27"),
			medal("Japan", "JPN", types.Asia, types.Silver, "Judo", "Mixed Team", "2024-08-03"),
		},
		Events: []model.Event{
			{Event: "Men's 400m IM", Sport: "Swimming"},
			{Event: "Women's 100m Freestyle", Sport: "Swimming"},
			{Event: "Men +100kg", Sport: "Judo"},
			{Event: "Men's Individual Stroke Play", Sport: "Golf"},
		},
		NOCs: []model.NOC{
			{Code: "FRA", Country: "France"},
			{Code: "USA", Country: "United States"},
			{Code: "KEN", Country: "Kenya"},
		},
		Schedule: []model.ScheduleEntry{
			{Start: at("2024-07-28T20:30:00+02:00"), End: at("2024-07-28T20:40:00+02:00"), Discipline: "Swimming", Event: "Men's 400m IM", Venue: "Paris La Defense Arena", Phase: "Final", MedalEvent: true},
			{Start: at("2024-07-28T11:00:00+02:00"), End: at("2024-07-28T13:00:00+02:00"), Discipline: "Swimming", Event: "Men's 400m IM", Venue: "Paris La Defense Arena", Phase: "Heats"},
			{Start: at("2024-08-02T10:00:00+02:00"), End: at("2024-08-02T18:00:00+02:00"), Discipline: "Judo", Event: "Men +100kg", Venue: "Champ de Mars Arena"},
			{Start: at("2024-07-27T09:00:00+02:00"), End: at("2024-07-27T17:00:00+02:00"), Discipline: "Judo", Event: "Men -60kg", Venue: "Champ de Mars Arena"},
		},
		Coaches: []model.Coach{
			{Name: "SMITH John", Category: "AC", Disciplines: "['Golf']"},
			{Name: "Bowman Robert", Category: "HC", Disciplines: "['Swimming']", Events: "['Men''s 400m IM']"},
		},
		Medallists: []model.Medallist{
			{Name: "MARCHAND Leon", Gender: "Male", Country: "France", MedalType: types.Gold, Discipline: "Swimming"},
			{Name: "MARCHAND Leon", Gender: "Male", Country: "France", MedalType: types.Gold, Discipline: "Swimming"},
			{Name: "MARCHAND Leon", Gender: "Male", Country: "France", MedalType: types.Bronze, Discipline: "Swimming"},
			{Name: "BILES Simone", Gender: "Female", Country: "United States", MedalType: types.Gold, Discipline: "Artistic Gymnastics"},
			{Name: "BILES Simone", Gender: "Female", Country: "United States", MedalType: types.Gold, Discipline: "Artistic Gymnastics"},
			{Name: "BILES Simone", Gender: "Female", Country: "United States", MedalType: types.Silver, Discipline: "Artistic Gymnastics"},
			{Name: "ANDRADE Rebeca", Gender: "Female", Country: "Brazil", MedalType: types.Gold, Discipline: "Artistic Gymnastics"},
			{Name: "ANDRADE Rebeca", Gender: "Female", Country: "Brazil", MedalType: types.Silver, Discipline: "Artistic Gymnastics"},
			{Name: "ANDRADE Rebeca", Gender: "Female", Country: "Brazil", MedalType: types.Silver, Discipline: "Artistic Gymnastics"},
			{Name: "SCHEFFLER Scottie", Gender: "Male", Country: "United States", MedalType: types.Gold, Discipline: "Golf"},
		},
	}
}
