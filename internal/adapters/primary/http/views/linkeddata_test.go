package views

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heritage-web/internal/core/domain"
)

func TestArtworkLinkedData(t *testing.T) {
	doc := ArtworkLinkedData(sampleArtwork())

	assert.Equal(t, "VisualArtwork", doc["@type"])
	assert.Equal(t, base+"artwork/a1", doc["@id"])
	assert.Equal(t, "Car cu boi (RO)", doc["alternateName"])
	assert.Equal(t, "https://img/a1.jpg", doc["image"])

	creator, ok := doc["creator"].(ld)
	require.True(t, ok)
	assert.Equal(t, base+"artist/grigorescu", creator["@id"])

	place, ok := doc["contentLocation"].(ld)
	require.True(t, ok)
	assert.Equal(t, "MNAR", place["name"])

	_, err := json.Marshal(doc)
	assert.NoError(t, err)
}

func TestArtworkLinkedData_PlaceholderArtist(t *testing.T) {
	doc := ArtworkLinkedData(&domain.Artwork{URI: base + "artwork/a2", Artist: &domain.Agent{URI: base + "artist/unknown"}})

	assert.Equal(t, "Untitled", doc["name"])
	assert.NotContains(t, doc, "creator")
	assert.NotContains(t, doc, "contentLocation")
	assert.NotContains(t, doc, "dateCreated")
}

func TestArtistLinkedData(t *testing.T) {
	person := ArtistLinkedData(&domain.Artist{
		URI:                base + "artist/grigorescu",
		Name:               "Nicolae Grigorescu",
		BirthDate:          "1838",
		DeathDate:          "1907",
		WikidataEnrichment: &domain.WikidataEnrichment{WikidataID: "Q359576"},
		ExternalLinks:      []domain.ExternalLink{{URI: "https://ulan/1"}},
	})
	assert.Equal(t, "Person", person["@type"])
	assert.Equal(t, "1838", person["birthDate"])
	assert.Equal(t, "1907", person["deathDate"])
	assert.Equal(t, []string{"https://www.wikidata.org/wiki/Q359576", "https://ulan/1"}, person["sameAs"])

	org := ArtistLinkedData(&domain.Artist{Name: "Atelier", Type: "Organization", BirthDate: "1900"})
	assert.Equal(t, "Organization", org["@type"])
	assert.Equal(t, "1900", org["foundingDate"])
	assert.NotContains(t, org, "birthDate")
	assert.NotContains(t, org, "sameAs")
}

func TestProvenanceLinkedData(t *testing.T) {
	chain := &domain.ProvenanceChain{Events: []domain.ProvenanceEvent{
		{EventType: "Creation", Date: "1899", Agent: &domain.Agent{Name: "Nicolae Grigorescu"}},
		{EventType: "Loan", StartDate: "1950", EndDate: "1951", Location: &domain.Location{Name: "Paris"}},
	}}

	doc := ProvenanceLinkedData("Car cu boi", base+"artwork/a1", chain)

	assert.Equal(t, "ItemList", doc["@type"])
	assert.Equal(t, "Provenance of Car cu boi", doc["name"])
	assert.Equal(t, 2, doc["numberOfItems"])

	items := doc["itemListElement"].([]ld)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0]["position"])
	first := items[0]["item"].(ld)
	assert.Equal(t, "1899", first["startDate"])
	second := items[1]["item"].(ld)
	assert.Equal(t, "1950", second["startDate"])
	assert.Equal(t, "1951", second["endDate"])
	assert.Contains(t, second, "location")

	about := doc["about"].(ld)
	assert.Equal(t, base+"artwork/a1", about["@id"])
}

func TestCatalogLinkedData_SkipsRecordsWithoutURI(t *testing.T) {
	doc := CatalogLinkedData("Collection", []domain.Artwork{{Title: "no uri"}, *sampleArtwork()})

	items := doc["itemListElement"].([]ld)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0]["position"])
	assert.Equal(t, 1, doc["numberOfItems"])
}
