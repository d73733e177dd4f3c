package domain

import "fmt"

const wikidataBaseURL = "https://www.wikidata.org/wiki/"

type ExternalLink struct {
	URI    string `json:"uri"`
	Source string `json:"source,omitempty"`
}

// Label is the link text shown on the artist page.
func (l ExternalLink) Label() string {
	return OrDefault(l.Source, "External Link")
}

type WikidataData struct {
	ImageURL    string `json:"image_url,omitempty"`
	BirthDate   string `json:"birth_date,omitempty"`
	DeathDate   string `json:"death_date,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Description string `json:"description,omitempty"`
}

type WikidataEnrichment struct {
	WikidataID string       `json:"wikidata_id,omitempty"`
	Data       WikidataData `json:"data"`
}

type Artist struct {
	URI                string              `json:"uri"`
	Name               string              `json:"name"`
	Type               string              `json:"type,omitempty"`
	BirthDate          string              `json:"birth_date,omitempty"`
	DeathDate          string              `json:"death_date,omitempty"`
	Nationality        string              `json:"nationality,omitempty"`
	WikidataEnrichment *WikidataEnrichment `json:"wikidata_enrichment,omitempty"`
	ExternalLinks      []ExternalLink      `json:"external_links,omitempty"`
}

func (a *Artist) wikidata() WikidataData {
	if a.WikidataEnrichment == nil {
		return WikidataData{}
	}
	return a.WikidataEnrichment.Data
}

func (a *Artist) ID() string {
	return IDFromURI(a.URI)
}

// SchemaType is the schema.org type the artist is annotated with.
func (a *Artist) SchemaType() string {
	if a.Type == "Organization" {
		return "Organization"
	}
	return "Person"
}

func (a *Artist) DisplayBirthDate() string {
	return firstNonEmpty(a.BirthDate, a.wikidata().BirthDate)
}

func (a *Artist) DisplayDeathDate() string {
	return firstNonEmpty(a.DeathDate, a.wikidata().DeathDate)
}

func (a *Artist) DisplayNationality() string {
	return firstNonEmpty(a.Nationality, a.wikidata().Nationality)
}

func (a *Artist) ImageURL() string {
	return a.wikidata().ImageURL
}

func (a *Artist) Description() string {
	return a.wikidata().Description
}

// LifeSpan returns the birth and death labels. A known birth with no death
// reads "Present"; with neither known, death reads "?".
func (a *Artist) LifeSpan() (birth, death string) {
	birth = a.DisplayBirthDate()
	death = a.DisplayDeathDate()
	if death == "" {
		if birth != "" {
			death = "Present"
		} else {
			death = "?"
		}
	}
	return birth, death
}

// WikidataURL links to the Wikidata entity, or "" when not enriched.
func (a *Artist) WikidataURL() string {
	if a.WikidataEnrichment == nil || a.WikidataEnrichment.WikidataID == "" {
		return ""
	}
	return fmt.Sprintf("%s%s", wikidataBaseURL, a.WikidataEnrichment.WikidataID)
}
