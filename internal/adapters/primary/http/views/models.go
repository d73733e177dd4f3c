package views

import (
	"fmt"
	"time"

	"heritage-web/internal/core/domain"
	"heritage-web/internal/core/services"
)

const (
	listingURL  = "/artworks"
	unknownDate = "Unknown date"
	staleLayout = "2006-01-02 15:04 MST"
)

// Layout is shared by every page.
type Layout struct {
	Title      string
	LinkedData interface{}
	Stale      bool
	StaleSince string
}

func staleLayoutFor(stale bool, since time.Time) (bool, string) {
	if !stale {
		return false, ""
	}
	return true, since.UTC().Format(staleLayout)
}

// ArtworkCard is a grid tile linking to an artwork page.
type ArtworkCard struct {
	ID               string
	URI              string
	Title            string
	Image            string
	ArtistName       string
	Date             string
	Type             string
	RomanianHeritage bool
}

func NewArtworkCard(a domain.Artwork) ArtworkCard {
	return ArtworkCard{
		ID:               a.ID(),
		URI:              a.URI,
		Title:            domain.OrDefault(a.Title, "Untitled"),
		Image:            a.PrimaryImage(),
		ArtistName:       a.ArtistName(),
		Date:             domain.OrDefault(a.CreationDate, unknownDate),
		Type:             a.ArtworkType,
		RomanianHeritage: a.RomanianHeritage,
	}
}

func newArtworkCards(artworks []domain.Artwork) []ArtworkCard {
	cards := make([]ArtworkCard, 0, len(artworks))
	for _, a := range artworks {
		if a.URI == "" {
			continue
		}
		cards = append(cards, NewArtworkCard(a))
	}
	return cards
}

type RecommendationCard struct {
	ArtworkCard
	MatchPercent int
	Reasons      []string
}

// ============================================================================
// Artwork page
// ============================================================================

type ArtworkView struct {
	Layout
	ID                string
	URI               string
	Title             string
	TitleRO           string
	Image             string
	ArtistName        string
	ArtistID          string
	Date              string
	Type              string
	Location          string
	Medium            string
	Description       string
	ProvenanceSummary string
	Recommendations   []RecommendationCard
}

func NewArtworkView(page *services.ArtworkPage) ArtworkView {
	a := page.Artwork
	v := ArtworkView{
		ID:                page.ID,
		URI:               a.URI,
		Title:             domain.OrDefault(a.Title, "Untitled"),
		TitleRO:           a.TitleRO,
		Image:             a.PrimaryImage(),
		ArtistName:        domain.OrUnknown(a.ArtistName()),
		Date:              domain.OrUnknown(a.CreationDate),
		Type:              domain.OrUnknown(a.ArtworkType),
		Location:          domain.OrUnknown(a.LocationName()),
		Medium:            a.Medium,
		Description:       a.Description,
		ProvenanceSummary: ProvenanceSummary(a),
		Recommendations:   make([]RecommendationCard, 0, len(page.Recommendations)),
	}
	if !a.Artist.IsPlaceholder() {
		v.ArtistID = domain.IDFromURI(a.Artist.URI)
	}
	for _, rec := range page.Recommendations {
		if rec.Artwork.URI == "" {
			continue
		}
		v.Recommendations = append(v.Recommendations, RecommendationCard{
			ArtworkCard:  NewArtworkCard(rec.Artwork),
			MatchPercent: rec.MatchPercent(),
			Reasons:      rec.TopReasons(domain.ShownReasons),
		})
	}
	v.Layout.Title = v.Title
	v.Layout.LinkedData = ArtworkLinkedData(a)
	v.Layout.Stale, v.Layout.StaleSince = staleLayoutFor(page.Stale, page.StaleSince)
	return v
}

// ProvenanceSummary describes how much provenance the artwork record carries.
func ProvenanceSummary(a *domain.Artwork) string {
	if !a.HasProvenance() {
		return "No provenance data available."
	}
	return fmt.Sprintf("%d recorded events in history.", len(a.ProvenanceChain))
}

// ============================================================================
// Artist page
// ============================================================================

type LinkView struct {
	URL   string
	Label string
}

type ArtistView struct {
	Layout
	ID            string
	URI           string
	SchemaType    string
	Name          string
	Type          string
	Image         string
	BirthDate     string
	DeathDate     string
	Nationality   string
	Description   string
	WikidataURL   string
	ExternalLinks []LinkView
	Artworks      []ArtworkCard
}

func NewArtistView(page *services.ArtistPage) ArtistView {
	a := page.Artist
	birth, death := a.LifeSpan()
	v := ArtistView{
		ID:          page.ID,
		URI:         a.URI,
		SchemaType:  a.SchemaType(),
		Name:        domain.OrUnknown(a.Name),
		Type:        a.Type,
		Image:       a.ImageURL(),
		BirthDate:   birth,
		DeathDate:   death,
		Nationality: a.DisplayNationality(),
		Description: a.Description(),
		WikidataURL: a.WikidataURL(),
		Artworks:    newArtworkCards(page.Artworks),
	}
	for _, l := range a.ExternalLinks {
		if l.URI == "" {
			continue
		}
		v.ExternalLinks = append(v.ExternalLinks, LinkView{URL: l.URI, Label: l.Label()})
	}
	v.Layout.Title = v.Name
	v.Layout.LinkedData = ArtistLinkedData(a)
	v.Layout.Stale, v.Layout.StaleSince = staleLayoutFor(page.Stale, page.StaleSince)
	return v
}

// WorkCount is the "N works" badge text.
func (v ArtistView) WorkCount() string {
	return fmt.Sprintf("%d works", len(v.Artworks))
}

// ============================================================================
// Provenance page
// ============================================================================

type EventView struct {
	Position     int
	Date         string
	Type         string
	AgentName    string
	AgentID      string
	LocationName string
	Description  string
}

type ArtistSummary struct {
	ID          string
	Name        string
	BirthDate   string
	DeathDate   string
	Nationality string
	Image       string
}

type ProvenanceView struct {
	Layout
	ID           string
	ArtworkTitle string
	ArtworkURI   string
	Image        string
	Events       []EventView
	Artist       *ArtistSummary
}

func NewProvenanceView(page *services.ProvenancePage) ProvenanceView {
	v := ProvenanceView{
		ID:           page.ID,
		ArtworkTitle: "Artwork " + page.ID,
		Events:       make([]EventView, 0, len(page.Chain.Events)),
	}
	if page.Artwork != nil {
		v.ArtworkTitle = domain.OrDefault(page.Artwork.Title, v.ArtworkTitle)
		v.ArtworkURI = page.Artwork.URI
		v.Image = page.Artwork.PrimaryImage()
	}
	if v.ArtworkURI == "" {
		v.ArtworkURI = page.Chain.ArtworkURI
	}

	for i, e := range page.Chain.Events {
		ev := EventView{
			Position:    i + 1,
			Date:        domain.OrDefault(e.DisplayDate(), unknownDate),
			Type:        domain.OrDefault(e.EventType, "Event"),
			Description: e.Description,
		}
		if e.Agent != nil {
			ev.AgentName = domain.OrUnknown(e.Agent.Name)
			if !e.Agent.IsPlaceholder() {
				ev.AgentID = domain.IDFromURI(e.Agent.URI)
			}
		}
		if e.Location != nil {
			ev.LocationName = e.Location.Name
		}
		v.Events = append(v.Events, ev)
	}

	if a := page.Artist; a != nil {
		birth, death := a.LifeSpan()
		v.Artist = &ArtistSummary{
			ID:          a.ID(),
			Name:        domain.OrUnknown(a.Name),
			BirthDate:   birth,
			DeathDate:   death,
			Nationality: a.DisplayNationality(),
			Image:       a.ImageURL(),
		}
	}

	v.Layout.Title = "Provenance of " + v.ArtworkTitle
	v.Layout.LinkedData = ProvenanceLinkedData(v.ArtworkTitle, v.ArtworkURI, page.Chain)
	v.Layout.Stale, v.Layout.StaleSince = staleLayoutFor(page.Stale, page.StaleSince)
	return v
}

// ============================================================================
// Listing and home pages
// ============================================================================

type FilterView struct {
	TypeID     string
	MaterialID string
	SubjectID  string
	ArtistID   string
	LocationID string
	Limit      int
	Active     bool
}

type CatalogView struct {
	Layout
	Filter   FilterView
	Count    int
	Artworks []ArtworkCard
}

func NewCatalogView(page *services.CatalogPage) CatalogView {
	f := page.Filter
	v := CatalogView{
		Filter: FilterView{
			TypeID:     f.TypeID,
			MaterialID: f.MaterialID,
			SubjectID:  f.SubjectID,
			ArtistID:   f.ArtistID,
			LocationID: f.LocationID,
			Limit:      f.Limit,
			Active:     !f.IsZero(),
		},
		Count:    page.Count,
		Artworks: newArtworkCards(page.Artworks),
	}
	v.Layout.Title = "Collection"
	v.Layout.LinkedData = CatalogLinkedData("Collection", page.Artworks)
	return v
}

type HomeView struct {
	Layout
	Featured []ArtworkCard
}

func NewHomeView(featured []domain.Artwork) HomeView {
	v := HomeView{Featured: newArtworkCards(featured)}
	v.Layout.Title = "Heritage Collection"
	v.Layout.LinkedData = WebsiteLinkedData()
	return v
}

// ============================================================================
// Error panel
// ============================================================================

type ErrorView struct {
	Layout
	Message   string
	BackURL   string
	BackLabel string
}

// NewErrorView builds the error panel for a failed primary record.
func NewErrorView(kind domain.RecordKind, err error) ErrorView {
	label := "Back to Collection"
	if kind == domain.KindArtwork {
		label = "Back to Artworks"
	}
	subject := string(kind)
	if kind == domain.KindArtworks {
		subject = "collection"
	}
	v := ErrorView{
		Message:   fmt.Sprintf("Error loading %s: %s", subject, domain.UserMessage(err)),
		BackURL:   listingURL,
		BackLabel: label,
	}
	v.Layout.Title = "Error"
	return v
}

func NewNotFoundView() ErrorView {
	v := ErrorView{
		Message:   "Page not found",
		BackURL:   listingURL,
		BackLabel: "Back to Collection",
	}
	v.Layout.Title = "Not found"
	return v
}
