package domain

import "strings"

// Agent is the compact artist reference embedded in artwork records.
type Agent struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// IsPlaceholder reports whether the reference points at no real artist.
// The collection API uses an "unknown" resource for unattributed works.
func (a *Agent) IsPlaceholder() bool {
	if a == nil {
		return true
	}
	if a.URI == "" {
		return true
	}
	return strings.EqualFold(IDFromURI(a.URI), "unknown")
}

type Location struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

type Artwork struct {
	URI              string            `json:"uri"`
	Title            string            `json:"title"`
	TitleRO          string            `json:"title_ro,omitempty"`
	Artist           *Agent            `json:"artist,omitempty"`
	CurrentLocation  *Location         `json:"current_location,omitempty"`
	CreationDate     string            `json:"creation_date,omitempty"`
	ArtworkType      string            `json:"artwork_type,omitempty"`
	Medium           string            `json:"medium,omitempty"`
	Description      string            `json:"description,omitempty"`
	ImageURL         string            `json:"imageURL,omitempty"`
	Images           []string          `json:"images,omitempty"`
	RomanianHeritage bool              `json:"romanian_heritage"`
	ProvenanceChain  []ProvenanceEvent `json:"provenance_chain"`
}

// ID is the route identifier of the artwork.
func (a *Artwork) ID() string {
	return IDFromURI(a.URI)
}

// PrimaryImage returns the image to show for the artwork, or "".
func (a *Artwork) PrimaryImage() string {
	if a.ImageURL != "" {
		return a.ImageURL
	}
	if len(a.Images) > 0 {
		return a.Images[0]
	}
	return ""
}

// HasProvenance distinguishes "no provenance data" from an empty chain.
func (a *Artwork) HasProvenance() bool {
	return a.ProvenanceChain != nil
}

func (a *Artwork) ArtistName() string {
	if a.Artist == nil {
		return ""
	}
	return a.Artist.Name
}

func (a *Artwork) LocationName() string {
	if a.CurrentLocation == nil {
		return ""
	}
	return a.CurrentLocation.Name
}

type ArtworkList struct {
	Count    int       `json:"count"`
	Artworks []Artwork `json:"artworks"`
}

const (
	DefaultArtworkLimit = 20
	MaxArtworkLimit     = 100
	ArtistArtworksLimit = 50
)

// ArtworkFilter selects artworks from the collection listing.
type ArtworkFilter struct {
	TypeID     string
	MaterialID string
	SubjectID  string
	ArtistID   string
	LocationID string
	Limit      int
}

// Normalize applies the listing limit bounds.
func (f ArtworkFilter) Normalize() ArtworkFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultArtworkLimit
	}
	if f.Limit > MaxArtworkLimit {
		f.Limit = MaxArtworkLimit
	}
	return f
}

// IsZero reports whether no attribute filter is set.
func (f ArtworkFilter) IsZero() bool {
	return f.TypeID == "" && f.MaterialID == "" && f.SubjectID == "" &&
		f.ArtistID == "" && f.LocationID == ""
}
