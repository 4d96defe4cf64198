// Package download implements concurrent retrieval of selected media files to local storage.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/instasnap-cli/instasnap/filesystem"
	"github.com/instasnap-cli/instasnap/key"
	"github.com/instasnap-cli/instasnap/log"
	"github.com/instasnap-cli/instasnap/media"
	"github.com/instasnap-cli/instasnap/network"
	"github.com/instasnap-cli/instasnap/where"
	"github.com/spf13/viper"
)

// Result is the per-file outcome of a retrieval. Exactly one of Path and Err
// is meaningful; a failed sibling never affects the others.
type Result struct {
	File media.SelectedFile
	Path string
	Err  error
}

// Message renders the outcome as a display string, mirroring the
// path-or-error-string contract of the retrieval side.
func (r Result) Message() string {
	if r.Err != nil {
		return fmt.Sprintf("Error downloading %s: %s", r.File.URL, r.Err)
	}
	return r.Path
}

// Options configures a batch retrieval.
type Options struct {
	// Dir is the destination directory. Empty resolves to the configured
	// downloads path, falling back to the platform downloads folder.
	Dir string
	// Concurrency bounds the worker pool. Zero resolves from configuration.
	Concurrency int
	// Client performs the HTTP requests. Nil uses the shared client.
	Client *http.Client
	// OnResult, when set, observes each completed retrieval as it finishes.
	OnResult func(Result)
}

func (o *Options) fill() {
	if o.Dir == "" {
		o.Dir = viper.GetString(key.DownloadsPath)
	}
	if o.Dir == "" {
		o.Dir = where.Downloads()
	}
	if o.Concurrency <= 0 {
		o.Concurrency = viper.GetInt(key.DownloadsConcurrency)
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 5
	}
	if o.Client == nil {
		o.Client = network.Client
	}
}

// All retrieves the selected files through a bounded worker pool and collects
// per-item results. Completion order may differ from submission order; the
// returned slice is ordered by completion.
func All(ctx context.Context, files []media.SelectedFile, options *Options) []Result {
	if options == nil {
		options = &Options{}
	}
	options.fill()

	jobs := make(chan media.SelectedFile)
	results := make([]Result, 0, len(files))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	workers := options.Concurrency
	if workers > len(files) {
		workers = len(files)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				result := one(ctx, file, options)

				mu.Lock()
				results = append(results, result)
				mu.Unlock()

				if options.OnResult != nil {
					options.OnResult(result)
				}
			}
		}()
	}

	for _, file := range files {
		jobs <- file
	}
	close(jobs)
	wg.Wait()

	return results
}

// one retrieves a single file into the destination directory, creating it if
// absent. The write goes through a temporary file and an atomic rename so a
// failed transfer never leaves a truncated download behind.
func one(ctx context.Context, file media.SelectedFile, options *Options) Result {
	fail := func(err error) Result {
		log.Errorf("download %s: %v", file.URL, err)
		return Result{File: file, Err: err}
	}

	if err := filesystem.API().MkdirAll(options.Dir, os.ModePerm); err != nil {
		return fail(err)
	}

	timeout := viper.GetDuration(key.DownloadsTimeout)
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.URL, nil)
	if err != nil {
		return fail(err)
	}

	resp, err := options.Client.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fail(fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	path := filepath.Join(options.Dir, file.Filename)
	tmpPath := path + ".tmp"

	f, err := filesystem.API().Create(tmpPath)
	if err != nil {
		return fail(err)
	}

	if _, err = io.Copy(f, resp.Body); err != nil {
		f.Close()
		_ = filesystem.API().Remove(tmpPath)
		return fail(err)
	}
	f.Close()

	if err := filesystem.API().Rename(tmpPath, path); err != nil {
		_ = filesystem.API().Remove(tmpPath)
		return fail(err)
	}

	log.Infof("downloaded %s", path)
	return Result{File: file, Path: path}
}
