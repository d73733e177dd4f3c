package domain

import (
	"math"
	"strings"
)

const (
	DefaultMaxRecommendations = 10
	MaxRecommendations        = 50
	ShownReasons              = 2
)

var DefaultCriteria = []string{"artist", "period", "type", "location"}

type Recommendation struct {
	Artwork         Artwork  `json:"artwork"`
	SimilarityScore float64  `json:"similarity_score"`
	Reasons         []string `json:"reasons,omitempty"`
}

// MatchPercent is the similarity score as a whole percentage.
func (r Recommendation) MatchPercent() int {
	return int(math.Round(r.SimilarityScore * 100))
}

// TopReasons returns at most n reasons in upstream order.
func (r Recommendation) TopReasons(n int) []string {
	if n <= 0 || len(r.Reasons) == 0 {
		return nil
	}
	if len(r.Reasons) <= n {
		return r.Reasons
	}
	return r.Reasons[:n]
}

type RecommendationQuery struct {
	MaxResults int
	Criteria   []string
}

func (q RecommendationQuery) Normalize() RecommendationQuery {
	if q.MaxResults <= 0 {
		q.MaxResults = DefaultMaxRecommendations
	}
	if q.MaxResults > MaxRecommendations {
		q.MaxResults = MaxRecommendations
	}
	criteria := make([]string, 0, len(q.Criteria))
	for _, c := range q.Criteria {
		if c = strings.TrimSpace(c); c != "" {
			criteria = append(criteria, c)
		}
	}
	if len(criteria) == 0 {
		criteria = append(criteria, DefaultCriteria...)
	}
	q.Criteria = criteria
	return q
}
