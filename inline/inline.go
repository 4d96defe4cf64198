// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/instasnap-cli/instasnap/download"
	"github.com/instasnap-cli/instasnap/history"
	"github.com/instasnap-cli/instasnap/instagram"
	"github.com/instasnap-cli/instasnap/log"
	"github.com/instasnap-cli/instasnap/media"
	"github.com/instasnap-cli/instasnap/util"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Provider == nil {
		options.Provider = instagram.NewWebProvider()
	}

	// Step 1: Resolve the URL into descriptors.
	result := instagram.Resolve(context.Background(), options.Provider, options.URL)

	// Step 2: Apply selection logic if a picker is defined.
	if picker, ok := options.Picker.Get(); ok && result.Ok() {
		result.Data = picker(result.Data)
		if result.Data == nil {
			result.Data = []*media.Descriptor{}
		}
	}

	// Step 3: Dispatch the processed result to the configured output writer.
	if options.Json {
		if err := writeJson(options.Out, options.URL, result); err != nil {
			return err
		}
	} else {
		if !result.Ok() {
			return errors.New(result.Message)
		}
		for _, d := range result.Data {
			fmt.Fprintln(options.Out, d.URL)
		}
	}

	if !options.Download || !result.Ok() {
		return nil
	}

	// Step 4: Retrieve the selected files.
	return retrieve(options, result)
}

func retrieve(options *Options, result *media.Result) error {
	timestamp := time.Now().Unix()
	files := make([]media.SelectedFile, len(result.Data))
	for i, d := range result.Data {
		files[i] = media.NewSelectedFile(d, result.Username, timestamp, i)
	}

	results := download.All(context.Background(), files, &download.Options{})

	var paths []string
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintln(os.Stderr, r.Message())
			continue
		}
		paths = append(paths, r.Path)
	}

	if len(paths) > 0 {
		shortcode, err := instagram.ExtractShortcode(options.URL)
		if err == nil {
			if err := history.Save(&history.SavedDownload{
				Shortcode: shortcode,
				URL:       options.URL,
				Username:  result.Username,
				Files:     paths,
			}); err != nil {
				log.Warnf("failed to save history: %v", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to download %s", util.Quantify(failed, "file", "files"))
	}

	return nil
}
