// Package media defines the domain models for normalized post media and their retrieval metadata.
package media

import (
	"fmt"

	"github.com/instasnap-cli/instasnap/util"
)

// SelectedFile is one media unit chosen for retrieval: the asset URL plus the
// local filename and MIME type it will be stored under.
type SelectedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Mime     string `json:"mime"`
}

// NewSelectedFile builds the retrieval tuple for a descriptor.
// Filenames follow the <username>_<timestamp>_<index>.<ext> convention so a
// carousel selection never collides on disk.
func NewSelectedFile(d *Descriptor, username string, timestamp int64, index int) SelectedFile {
	name := fmt.Sprintf("%s_%d_%d.%s", util.SanitizeFilename(username), timestamp, index, d.Extension())
	return SelectedFile{
		URL:      d.URL,
		Filename: name,
		Mime:     d.Mime(),
	}
}
