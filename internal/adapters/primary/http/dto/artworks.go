package dto

import "heritage-web/internal/core/domain"

// ArtworkListQuery binds the listing page query string.
type ArtworkListQuery struct {
	TypeID     string `form:"type_id"`
	MaterialID string `form:"material_id"`
	SubjectID  string `form:"subject_id"`
	ArtistID   string `form:"artist_id"`
	LocationID string `form:"location_id"`
	Limit      int    `form:"limit" binding:"omitempty,min=0"`
}

func (q ArtworkListQuery) ToFilter() domain.ArtworkFilter {
	return domain.ArtworkFilter{
		TypeID:     q.TypeID,
		MaterialID: q.MaterialID,
		SubjectID:  q.SubjectID,
		ArtistID:   q.ArtistID,
		LocationID: q.LocationID,
		Limit:      q.Limit,
	}.Normalize()
}
