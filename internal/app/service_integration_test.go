package service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/okian/podium/internal/adapters/http/api"
	"github.com/okian/podium/internal/adapters/http/swagger"
	service "github.com/okian/podium/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

var integrationFixtures = map[string]string{
	"athletes.csv": `code,name,gender,function,country_code,country,nationality,height,weight,disciplines,events,birth_date,birth_place,birth_country,coach
1532872,MARCHAND Leon,Male,Athlete,FRA,France,France,187,77,['Swimming'],"['Men''s 200m Butterfly', 'Men''s 400m Individual Medley']",2002-05-17,TOULOUSE,France,"BOWMAN Bob (USA)<br>NICOLAS Fabrice"
1533000,KIPYEGON Faith,Female,Athlete,KEN,Kenya,Kenya,157,42,['Athletics'],"['Women''s 1500m']",1994-01-10,,,
`,
	"medals.csv": `medal_type,medal_code,medal_date,name,gender,discipline,event,event_type,url_event,code,country_code,country,country_long
Gold Medal,1,2024-07-28,MARCHAND Leon,M,Swimming,Men's 400m Individual Medley,ATH,/x,1532872,FRA,France,France
Gold Medal,1,2024-08-10,KIPYEGON Faith,W,Athletics,Women's 1500m,ATH,/y,1533000,KEN,Kenya,Kenya
`,
	"medals_total.csv": `country_code,country,country_long,Gold Medal,Silver Medal,Bronze Medal,Total
USA,United States,United States of America,40,44,42,126
FRA,France,France,16,26,22,64
KEN,Kenya,Kenya,4,2,5,11
`,
	"events.csv": `event,tag,sport,sport_code,sport_url
Men's 400m Individual Medley,swimming,Swimming,SWM,/swm
`,
	"nocs.csv": `code,country,country_long,tag,note
FRA,France,France,france,P
`,
	"schedules.csv": `start_date,end_date,day,status,discipline,discipline_code,event,event_medal,phase,gender,event_type,venue,venue_code
2024-07-28T20:30:00+02:00,2024-07-28T20:40:00+02:00,2024-07-28,FINISHED,Swimming,SWM,Men's 400m Individual Medley,1,Final,M,ATH,Paris La Defense Arena,LDA
`,
	"venues.csv": `venue,sports,date_start,date_end,tag,url,latitude,longitude
Stade de France,['Athletics'],2024-07-24,2024-08-11,stade-de-france,/sdf,,
Mystery Shed,['Basketball'],2024-07-27,2024-08-11,shed,/shed,,
`,
	"coaches.csv": `code,current,name,gender,function,category,country_code,country,country_long,disciplines,events,birth_date
C1,True,BOWMAN Bob,Male,Coach,HC,USA,United States,United States of America,Swimming,['Men''s 400m Individual Medley'],1965-04-06
`,
	"teams.csv": `code,current,team,team_gender,country_code,country,country_long,discipline,disciplines_code,events,athletes,coaches,athletes_codes,num_athletes,coaches_codes,num_coaches
T1,True,France,M,FRA,France,France,Swimming,SWM,Relay,a,b,c,4.0,d,1.0
`,
	"medallists.csv": `medal_date,medal_type,medal_code,name,gender,country_code,country,country_long,nationality_code,nationality,nationality_long,team,team_gender,discipline,event,event_type,url_event,birth_date,code_athlete,code_team,is_medallist
2024-07-28,Gold Medal,1.0,MARCHAND Leon,Male,FRA,France,France,FRA,France,France,,,Swimming,Men's 400m Individual Medley,ATH,/x,2002-05-17,1532872,,True
`,
}

// startServer loads the fixtures through a real service and serves the
// full HTTP surface.
func startServer(t *testing.T) (*httptest.Server, *service.Service) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range integrationFixtures {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cfg := offline()
	cfg.DataDir = dir
	svc := service.New(service.WithConfig(cfg))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	mux := http.NewServeMux()
	api.NewServer(svc, svc, api.WithMaxScheduleRows(cfg.MaxScheduleRows)).Register(ctx, mux)
	swagger.Register(ctx, mux)
	return httptest.NewServer(mux), svc
}

func TestHealthWhileLoading(t *testing.T) {
	Convey("Given a server whose datasets are still loading", t, func() {
		ctx := context.Background()
		src := newGatedSource()
		svc := service.New(service.WithConfig(offline()), service.WithSource(src))
		defer svc.Stop()

		mux := http.NewServeMux()
		api.NewServer(svc, svc).Register(ctx, mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		done := make(chan error, 1)
		go func() { done <- svc.Start(ctx) }()
		<-src.entered

		var loading map[string]any
		loadingCode, loadingErr := getJSON(srv, "/healthz", &loading)
		close(src.release)
		startErr := <-done

		var ready map[string]any
		readyCode, readyErr := getJSON(srv, "/healthz", &ready)

		Convey("Then health reports loading, then ok", func() {
			So(loadingErr, ShouldBeNil)
			So(loadingCode, ShouldEqual, http.StatusServiceUnavailable)
			So(loading["status"], ShouldEqual, "loading")
			So(startErr, ShouldBeNil)
			So(readyErr, ShouldBeNil)
			So(readyCode, ShouldEqual, http.StatusOK)
			So(ready["status"], ShouldEqual, "ok")
		})
	})
}

func getJSON(srv *httptest.Server, path string, v any) (int, error) {
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if v == nil {
		return resp.StatusCode, nil
	}
	return resp.StatusCode, json.Unmarshal(body, v)
}

func TestIntegration_Dashboard(t *testing.T) {
	Convey("Given a service serving the fixture datasets", t, func() {
		srv, svc := startServer(t)
		defer srv.Close()
		defer svc.Stop()

		Convey("When checking health", func() {
			var body map[string]any
			code, err := getJSON(srv, "/healthz", &body)
			So(err, ShouldBeNil)
			So(code, ShouldEqual, http.StatusOK)
			So(body["status"], ShouldEqual, "ok")
		})

		Convey("When reading the overview", func() {
			var body map[string]any
			code, err := getJSON(srv, "/api/v1/overview", &body)

			Convey("Then the KPIs come from the medal totals", func() {
				So(err, ShouldBeNil)
				So(code, ShouldEqual, http.StatusOK)
				So(body["countries"], ShouldEqual, float64(1))
				So(body["athletes"], ShouldEqual, float64(2))
				So(body["medals"], ShouldEqual, float64(201))
			})
		})

		Convey("When drilling into a continent on the world map", func() {
			var body struct {
				Countries []map[string]any `json:"countries"`
				Detail    []map[string]any `json:"continent_detail"`
			}
			_, err := getJSON(srv, "/api/v1/choropleth?continent=Africa", &body)

			Convey("Then continents were resolved while loading", func() {
				So(err, ShouldBeNil)
				So(body.Countries, ShouldHaveLength, 2)
				So(body.Detail, ShouldHaveLength, 1)
				So(body.Detail[0]["country"], ShouldEqual, "Kenya")
			})
		})

		Convey("When opening a profile with image search disabled", func() {
			var body map[string]any
			code, err := getJSON(srv, "/api/v1/athletes/profile?name=MARCHAND+Leon", &body)

			Convey("Then avatars stand in for photos and the coach is matched", func() {
				So(err, ShouldBeNil)
				So(code, ShouldEqual, http.StatusOK)
				So(body["photo_url"], ShouldStartWith, "https://ui-avatars.com/api/")
				So(body["age"], ShouldEqual, float64(23))
				coach, ok := body["coach_profile"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(coach["role"], ShouldEqual, "Head Coach")
			})
		})

		Convey("When listing venues without a geocoder", func() {
			var body struct {
				Venues   []map[string]any `json:"venues"`
				Unplaced int              `json:"unplaced"`
			}
			_, err := getJSON(srv, "/api/v1/venues?located=true", &body)

			Convey("Then only fallback venues are placed", func() {
				So(err, ShouldBeNil)
				So(body.Venues, ShouldHaveLength, 1)
				So(body.Venues[0]["name"], ShouldEqual, "Stade de France")
				So(body.Unplaced, ShouldEqual, 1)
			})
		})

		Convey("When asking who won a day", func() {
			var body map[string]any
			code, err := getJSON(srv, "/api/v1/days/2024-07-28", &body)
			So(err, ShouldBeNil)
			So(code, ShouldEqual, http.StatusOK)
			So(body["no_medals"], ShouldEqual, false)
		})

		Convey("When fetching the API docs", func() {
			code, err := getJSON(srv, "/openapi.yaml", nil)
			So(err, ShouldBeNil)
			So(code, ShouldEqual, http.StatusOK)
		})

		Convey("When reloading the datasets", func() {
			before, _ := svc.Snapshot()
			So(svc.Reload(context.Background()), ShouldBeNil)
			after, _ := svc.Snapshot()

			Convey("Then a fresh snapshot is published", func() {
				So(after, ShouldNotEqual, before)
				So(after.Counts(), ShouldResemble, before.Counts())
			})
		})
	})
}
