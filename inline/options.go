// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/instasnap-cli/instasnap/instagram"
	"github.com/instasnap-cli/instasnap/media"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picker narrows the resolved descriptors down to the subset to act on.
type Picker func([]*media.Descriptor) []*media.Descriptor

// Options encapsulates one inline invocation.
type Options struct {
	Out      io.Writer
	Provider instagram.Provider
	URL      string
	Json     bool
	Download bool
	Picker   mo.Option[Picker]
}

// ParsePicker parses the CLI description of a selection filter.
// Supported forms: "all", "first", "last", "images", "videos", or an index
// (starting from 0).
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "all":
		return func(descriptors []*media.Descriptor) []*media.Descriptor {
			return descriptors
		}, nil
	case "first":
		return func(descriptors []*media.Descriptor) []*media.Descriptor {
			if len(descriptors) == 0 {
				return nil
			}
			return descriptors[:1]
		}, nil
	case "last":
		return func(descriptors []*media.Descriptor) []*media.Descriptor {
			if len(descriptors) == 0 {
				return nil
			}
			return descriptors[len(descriptors)-1:]
		}, nil
	case "images":
		return kindPicker(media.Image), nil
	case "videos":
		return kindPicker(media.Video), nil
	default:
		index, err := strconv.Atoi(description)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("unknown picker: %s", description)
		}
		return func(descriptors []*media.Descriptor) []*media.Descriptor {
			if index >= len(descriptors) {
				return nil
			}
			return descriptors[index : index+1]
		}, nil
	}
}

func kindPicker(kind media.Kind) Picker {
	return func(descriptors []*media.Descriptor) []*media.Descriptor {
		return lo.Filter(descriptors, func(d *media.Descriptor, _ int) bool {
			return d.Kind == kind
		})
	}
}
