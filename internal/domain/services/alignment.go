package services

import "github.com/zaibaitech/asrar-core/internal/domain/entities"

// Harmony scores for the three element pairings. A fixed lookup, not a
// continuous function: there is no interpolation between cases.
const (
	ScoreIdentical     = 85
	ScoreComplementary = 65
	ScoreNeutral       = 40
)

// AlignmentService scores the harmony between a user's element and the
// ruling hour's element.
type AlignmentService struct{}

// NewAlignmentService creates a new alignment service.
func NewAlignmentService() *AlignmentService {
	return &AlignmentService{}
}

// Score returns the harmony between the user's element and the element of
// the current hour's ruler: identical elements score 85, the classically
// complementary pairs (Fire–Air, Water–Earth) score 65, anything else 40.
func (s *AlignmentService) Score(user, hour entities.Element) entities.Alignment {
	score := ScoreNeutral
	switch {
	case user == hour:
		score = ScoreIdentical
	case user.Complements(hour):
		score = ScoreComplementary
	}
	return entities.Alignment{
		UserElement: user,
		HourElement: hour,
		Score:       score,
		Advisory:    entities.AdvisoryForScore(score),
	}
}
