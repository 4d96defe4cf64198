package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/instasnap-cli/instasnap/filesystem"
	"github.com/instasnap-cli/instasnap/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAll(t *testing.T) {
	Convey("Given a server and an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		var inflight, peak int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := atomic.AddInt32(&inflight, 1)
			defer atomic.AddInt32(&inflight, -1)
			for {
				observed := atomic.LoadInt32(&peak)
				if current <= observed || atomic.CompareAndSwapInt32(&peak, observed, current) {
					break
				}
			}

			switch r.URL.Path {
			case "/missing":
				w.WriteHeader(http.StatusNotFound)
			default:
				_, _ = w.Write([]byte("payload-" + r.URL.Path))
			}
		}))
		defer server.Close()

		file := func(path, name string) media.SelectedFile {
			return media.SelectedFile{URL: server.URL + path, Filename: name, Mime: "image/jpeg"}
		}

		Convey("All files land in the destination directory", func() {
			files := []media.SelectedFile{
				file("/a", "a.jpg"),
				file("/b", "b.jpg"),
				file("/c", "c.mp4"),
			}

			results := All(context.Background(), files, &Options{Dir: "/downloads", Concurrency: 2, Client: server.Client()})

			So(results, ShouldHaveLength, 3)
			for _, r := range results {
				So(r.Err, ShouldBeNil)
				exists, _ := filesystem.API().Exists(r.Path)
				So(exists, ShouldBeTrue)
			}

			content, err := filesystem.API().ReadFile("/downloads/a.jpg")
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "payload-/a")
		})

		Convey("A failing file does not abort its siblings", func() {
			files := []media.SelectedFile{
				file("/a", "a.jpg"),
				file("/missing", "gone.jpg"),
				file("/b", "b.jpg"),
			}

			results := All(context.Background(), files, &Options{Dir: "/downloads", Concurrency: 3, Client: server.Client()})

			var failed, succeeded int
			for _, r := range results {
				if r.Err != nil {
					failed++
					So(r.Message(), ShouldContainSubstring, "Error downloading")
				} else {
					succeeded++
				}
			}
			So(failed, ShouldEqual, 1)
			So(succeeded, ShouldEqual, 2)

			exists, _ := filesystem.API().Exists("/downloads/gone.jpg")
			So(exists, ShouldBeFalse)
		})

		Convey("Concurrency never exceeds the configured bound", func() {
			var files []media.SelectedFile
			for i := 0; i < 12; i++ {
				files = append(files, file("/a", "a"+string(rune('a'+i))+".jpg"))
			}

			atomic.StoreInt32(&peak, 0)
			All(context.Background(), files, &Options{Dir: "/downloads", Concurrency: 4, Client: server.Client()})

			So(peak, ShouldBeLessThanOrEqualTo, 4)
		})

		Convey("OnResult observes every completion", func() {
			var (
				mu   sync.Mutex
				seen []Result
			)

			files := []media.SelectedFile{file("/a", "a.jpg"), file("/b", "b.jpg")}
			All(context.Background(), files, &Options{
				Dir:         "/downloads",
				Concurrency: 2,
				Client:      server.Client(),
				OnResult: func(r Result) {
					mu.Lock()
					seen = append(seen, r)
					mu.Unlock()
				},
			})

			So(seen, ShouldHaveLength, 2)
		})

		Convey("An empty batch returns no results", func() {
			results := All(context.Background(), nil, &Options{Dir: "/downloads", Client: server.Client()})
			So(results, ShouldBeEmpty)
		})
	})
}
