package imagesearch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/okian/podium/internal/adapters/imagesearch"
	"github.com/okian/podium/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const resultsPage = `<html><body>
<img src="https://www.gstatic.com/logo.png">
["https://encrypted-tbn0.gstatic.com/images?q=tbn.jpg",1,2]
["https://cdn.example.org/athletes/leon.JPG",640,480]
<img data-src="https://cdn.example.org/second.png">
</body></html>`

func TestLookup(t *testing.T) {
	Convey("Given an image search server", t, func() {
		var hits atomic.Int32
		var lastQuery, lastMode, lastUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			lastQuery = r.URL.Query().Get("q")
			lastMode = r.URL.Query().Get("tbm")
			lastUA = r.Header.Get("User-Agent")
			switch lastQuery {
			case "Leon Marchand France olympic athlete":
				_, _ = w.Write([]byte(resultsPage))
			case "Only Icons  olympic athlete":
				_, _ = w.Write([]byte(`<img data-src="https://example.org/favicon.ico">`))
			case "Legacy Page Kenya olympic athlete":
				_, _ = w.Write([]byte(`{"ou":"https://images.example.org/runner"}`))
			default:
				w.WriteHeader(http.StatusTooManyRequests)
			}
		}))
		defer srv.Close()

		c := imagesearch.New(srv.URL)
		ctx := context.Background()

		Convey("When the page carries direct image links", func() {
			got, ok := c.Lookup(ctx, "Leon Marchand", "France")

			Convey("Then the first non-provider link is returned", func() {
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, "https://cdn.example.org/athletes/leon.JPG")
				So(lastMode, ShouldEqual, "isch")
				So(lastUA, ShouldStartWith, "Mozilla/5.0")
			})

			Convey("Then a repeated lookup is served from the cache", func() {
				again, ok := c.Lookup(ctx, "Leon Marchand", "France")
				So(ok, ShouldBeTrue)
				So(again, ShouldEqual, got)
				So(hits.Load(), ShouldEqual, 1)
				So(c.Cached(), ShouldEqual, 1)
			})
		})

		Convey("When only the original-url pattern matches", func() {
			got, ok := c.Lookup(ctx, "Legacy Page", "Kenya")
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, "https://images.example.org/runner")
		})

		Convey("When every candidate is rejected", func() {
			_, ok := c.Lookup(ctx, "Only Icons", "")
			_, again := c.Lookup(ctx, "Only Icons", "")

			Convey("Then the miss is reported and cached", func() {
				So(ok, ShouldBeFalse)
				So(again, ShouldBeFalse)
				So(hits.Load(), ShouldEqual, 1)
			})
		})

		Convey("When the provider refuses the request", func() {
			got := c.PhotoURL(ctx, "Simone Biles", "Female", "United States")

			Convey("Then the avatar is used", func() {
				So(got, ShouldEqual, "https://ui-avatars.com/api/?name=S+B&size=200&background=e74c3c&color=fff&bold=true")
				So(lastQuery, ShouldEqual, "Simone Biles United States olympic athlete")
			})
		})

		Convey("When the name is blank", func() {
			_, ok := c.Lookup(ctx, "  ", "France")
			So(ok, ShouldBeFalse)
			So(hits.Load(), ShouldEqual, 0)
		})
	})

	Convey("Given a server slower than the timeout", t, func() {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		c := imagesearch.New(srv.URL, imagesearch.WithTimeout(20*time.Millisecond))
		start := time.Now()
		got := c.PhotoURL(context.Background(), "Armand Duplantis", "Male", "Sweden")

		Convey("Then the avatar is returned promptly", func() {
			So(got, ShouldContainSubstring, "name=A+D")
			So(got, ShouldContainSubstring, "background=3498db")
			So(time.Since(start), ShouldBeLessThan, 2*time.Second)
		})
	})

	Convey("Given a nil client", t, func() {
		var c *imagesearch.Client
		So(c.PhotoURL(context.Background(), "Teddy Riner", "Male", "France"), ShouldContainSubstring, "name=T+R")
		So(c.Cached(), ShouldEqual, 0)
	})
}

func TestInitials(t *testing.T) {
	Convey("Given person names", t, func() {
		So(imagesearch.Initials("leon marchand"), ShouldEqual, "L+M")
		So(imagesearch.Initials("Ma Long Jr"), ShouldEqual, "M+L")
		So(imagesearch.Initials("Neymar"), ShouldEqual, "N")
		So(imagesearch.Initials("élodie clouvel"), ShouldEqual, "É+C")
		So(imagesearch.Initials(""), ShouldEqual, "A")
		So(imagesearch.Initials("   "), ShouldEqual, "A")
	})
}
