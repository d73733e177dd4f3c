package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProvenanceEvent is one custody or exhibition event in an artwork's history.
type ProvenanceEvent struct {
	URI         string    `json:"uri,omitempty"`
	EventType   string    `json:"event_type,omitempty"`
	Date        string    `json:"date,omitempty"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	Agent       *Agent    `json:"agent,omitempty"`
	Location    *Location `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	Sequence    int       `json:"sequence,omitempty"`
}

// DisplayDate picks the most specific date the event carries.
func (e ProvenanceEvent) DisplayDate() string {
	if e.Date != "" {
		return e.Date
	}
	switch {
	case e.StartDate != "" && e.EndDate != "":
		return e.StartDate + " – " + e.EndDate
	case e.StartDate != "":
		return e.StartDate
	case e.EndDate != "":
		return e.EndDate
	}
	return ""
}

type ProvenanceChain struct {
	ArtworkURI string            `json:"artwork_uri,omitempty"`
	Events     []ProvenanceEvent `json:"events"`
}

// UnmarshalJSON accepts a bare event array or an object carrying the events
// under "events" or "provenance_chain".
func (c *ProvenanceChain) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var events []ProvenanceEvent
		if err := json.Unmarshal(data, &events); err != nil {
			return fmt.Errorf("decode provenance events: %w", err)
		}
		c.Events = events
		return nil
	}

	var raw struct {
		ArtworkURI      string            `json:"artwork_uri"`
		Events          []ProvenanceEvent `json:"events"`
		ProvenanceChain []ProvenanceEvent `json:"provenance_chain"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode provenance chain: %w", err)
	}
	c.ArtworkURI = raw.ArtworkURI
	c.Events = raw.Events
	if c.Events == nil {
		c.Events = raw.ProvenanceChain
	}
	return nil
}
