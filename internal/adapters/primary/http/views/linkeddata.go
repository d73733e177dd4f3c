package views

import "heritage-web/internal/core/domain"

const schemaContext = "https://schema.org"

type ld = map[string]interface{}

func setIf(m ld, key, value string) {
	if value != "" {
		m[key] = value
	}
}

// ArtworkLinkedData describes an artwork as a schema.org VisualArtwork.
func ArtworkLinkedData(a *domain.Artwork) ld {
	doc := ld{
		"@context": schemaContext,
		"@type":    "VisualArtwork",
		"name":     domain.OrDefault(a.Title, "Untitled"),
	}
	setIf(doc, "@id", a.URI)
	setIf(doc, "alternateName", a.TitleRO)
	setIf(doc, "image", a.PrimaryImage())
	setIf(doc, "dateCreated", a.CreationDate)
	setIf(doc, "artform", a.ArtworkType)
	setIf(doc, "artMedium", a.Medium)
	setIf(doc, "description", a.Description)

	if !a.Artist.IsPlaceholder() {
		creator := ld{"@type": "Person", "@id": a.Artist.URI}
		setIf(creator, "name", a.Artist.Name)
		doc["creator"] = creator
	}
	if a.CurrentLocation != nil && a.CurrentLocation.Name != "" {
		place := ld{"@type": "Place", "name": a.CurrentLocation.Name}
		setIf(place, "@id", a.CurrentLocation.URI)
		doc["contentLocation"] = place
	}
	return doc
}

// ArtistLinkedData describes an artist as a schema.org Person or Organization.
func ArtistLinkedData(a *domain.Artist) ld {
	doc := ld{
		"@context": schemaContext,
		"@type":    a.SchemaType(),
		"name":     domain.OrUnknown(a.Name),
	}
	setIf(doc, "@id", a.URI)
	setIf(doc, "image", a.ImageURL())
	setIf(doc, "description", a.Description())
	setIf(doc, "nationality", a.DisplayNationality())
	if a.SchemaType() == "Person" {
		setIf(doc, "birthDate", a.DisplayBirthDate())
		setIf(doc, "deathDate", a.DisplayDeathDate())
	} else {
		setIf(doc, "foundingDate", a.DisplayBirthDate())
		setIf(doc, "dissolutionDate", a.DisplayDeathDate())
	}

	var sameAs []string
	if u := a.WikidataURL(); u != "" {
		sameAs = append(sameAs, u)
	}
	for _, l := range a.ExternalLinks {
		if l.URI != "" {
			sameAs = append(sameAs, l.URI)
		}
	}
	if len(sameAs) > 0 {
		doc["sameAs"] = sameAs
	}
	return doc
}

// ProvenanceLinkedData lists the custody events of an artwork in order.
func ProvenanceLinkedData(title, artworkURI string, chain *domain.ProvenanceChain) ld {
	items := make([]ld, 0, len(chain.Events))
	for i, e := range chain.Events {
		event := ld{
			"@type": "Event",
			"name":  domain.OrDefault(e.EventType, "Event"),
		}
		setIf(event, "@id", e.URI)
		setIf(event, "description", e.Description)
		if e.Date != "" {
			event["startDate"] = e.Date
		} else {
			setIf(event, "startDate", e.StartDate)
			setIf(event, "endDate", e.EndDate)
		}
		if e.Location != nil && e.Location.Name != "" {
			event["location"] = ld{"@type": "Place", "name": e.Location.Name}
		}
		if e.Agent != nil && e.Agent.Name != "" {
			event["organizer"] = ld{"@type": "Person", "name": e.Agent.Name}
		}
		items = append(items, ld{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     event,
		})
	}

	doc := ld{
		"@context":        schemaContext,
		"@type":           "ItemList",
		"name":            "Provenance of " + title,
		"numberOfItems":   len(items),
		"itemListOrder":   "https://schema.org/ItemListOrderAscending",
		"itemListElement": items,
	}
	if artworkURI != "" {
		doc["about"] = ld{"@type": "VisualArtwork", "@id": artworkURI, "name": title}
	}
	return doc
}

// CatalogLinkedData lists artworks as a schema.org ItemList.
func CatalogLinkedData(name string, artworks []domain.Artwork) ld {
	items := make([]ld, 0, len(artworks))
	for _, a := range artworks {
		if a.URI == "" {
			continue
		}
		items = append(items, ld{
			"@type":    "ListItem",
			"position": len(items) + 1,
			"item": ld{
				"@type": "VisualArtwork",
				"@id":   a.URI,
				"name":  domain.OrDefault(a.Title, "Untitled"),
			},
		})
	}
	return ld{
		"@context":        schemaContext,
		"@type":           "ItemList",
		"name":            name,
		"numberOfItems":   len(items),
		"itemListElement": items,
	}
}

func WebsiteLinkedData() ld {
	return ld{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     "Heritage Collection",
		"about":    "Romanian cultural heritage artworks, artists and provenance",
	}
}
