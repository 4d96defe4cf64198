// Package media defines the domain models for normalized post media and their retrieval metadata.
package media

// Variant is one available rendition of an image: a source URL with its dimensions.
type Variant struct {
	Src    string `json:"src"`
	Width  int    `json:"config_width"`
	Height int    `json:"config_height"`
}

// Owner carries the ownership metadata attached to a top-level post node.
type Owner struct {
	Username string `json:"username"`
}

type sidecarEdge struct {
	Node *Node `json:"node"`
}

type sidecar struct {
	Edges []sidecarEdge `json:"edges"`
}

// Node is one raw metadata node as returned by the provider: a single
// image/video unit, or a carousel holding child units.
type Node struct {
	DisplayResources []Variant `json:"display_resources"`
	IsVideo          bool      `json:"is_video"`
	VideoURL         string    `json:"video_url"`
	Owner            *Owner    `json:"owner"`
	Sidecar          *sidecar  `json:"edge_sidecar_to_children"`
}

// UnknownUsername is the sentinel used when a node omits ownership metadata.
const UnknownUsername = "unknown"

// Username returns the owner's username, or the UnknownUsername sentinel.
func (n *Node) Username() string {
	if n.Owner == nil || n.Owner.Username == "" {
		return UnknownUsername
	}
	return n.Owner.Username
}

// Units returns the individual media units held by the node: the carousel
// children when present, otherwise the node itself as a single unit.
func (n *Node) Units() []*Node {
	if n.Sidecar == nil || len(n.Sidecar.Edges) == 0 {
		return []*Node{n}
	}

	units := make([]*Node, 0, len(n.Sidecar.Edges))
	for _, edge := range n.Sidecar.Edges {
		if edge.Node != nil {
			units = append(units, edge.Node)
		}
	}
	return units
}

// Descriptors normalizes a single unit into zero or one Descriptor.
// A unit without resolution variants yields nothing.
//
// The smallest variant by height becomes the preview; the largest one
// supplies the dimensions and, absent a direct video URL, the asset URL.
// Equal heights resolve to the first occurrence.
func (n *Node) Descriptors() []*Descriptor {
	if len(n.DisplayResources) == 0 {
		return nil
	}

	smallest := n.DisplayResources[0]
	largest := n.DisplayResources[0]
	for _, v := range n.DisplayResources[1:] {
		if v.Height < smallest.Height {
			smallest = v
		}
		if v.Height > largest.Height {
			largest = v
		}
	}

	url := n.VideoURL
	if url == "" {
		url = largest.Src
	}

	kind := Image
	if n.IsVideo {
		kind = Video
	}

	return []*Descriptor{{
		Preview: smallest.Src,
		Kind:    kind,
		URL:     url,
		Width:   largest.Width,
		Height:  largest.Height,
	}}
}

// Flatten expands a post node into the ordered list of descriptors for all
// of its units, skipping units that carry no resolution variants.
func Flatten(n *Node) []*Descriptor {
	var descriptors []*Descriptor
	for _, unit := range n.Units() {
		descriptors = append(descriptors, unit.Descriptors()...)
	}
	return descriptors
}
