// Package media defines the domain models for normalized post media and their retrieval metadata.
package media

import "fmt"

// Kind discriminates between the two retrievable media types.
type Kind string

const (
	Image Kind = "image"
	Video Kind = "video"
)

// Descriptor represents one retrievable media unit in its normalized form.
//
// Preview and URL are independently selected: the preview points at the
// smallest available resolution variant, while URL, Width and Height come
// from the largest one. For videos the URL is the direct stream and the
// dimensions are approximated from the largest image variant, since video
// nodes reuse image resolution metadata.
type Descriptor struct {
	// Preview is the URL of a low-resolution representative image.
	Preview string `json:"preview"`
	// Kind is either Image or Video.
	Kind Kind `json:"type"`
	// URL points at the highest-resolution retrievable asset.
	URL string `json:"url"`
	// Width and Height of the selected full-resolution variant.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String returns a human-readable summary for terminal display.
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s %dx%d", d.Kind, d.Width, d.Height)
}

// Extension returns the file extension matching the descriptor kind.
func (d *Descriptor) Extension() string {
	if d.Kind == Video {
		return "mp4"
	}
	return "jpg"
}

// Mime returns the MIME type matching the descriptor kind.
func (d *Descriptor) Mime() string {
	if d.Kind == Video {
		return "video/mp4"
	}
	return "image/jpeg"
}
