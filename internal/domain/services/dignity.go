package services

import (
	"fmt"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
	"github.com/zaibaitech/asrar-core/internal/domain/tables"
)

// DignityService evaluates essential dignity. It is stateless; every
// evaluation is a pure function of its inputs and the reference tables.
type DignityService struct{}

// NewDignityService creates a new dignity service.
func NewDignityService() *DignityService {
	return &DignityService{}
}

// Evaluate scores the placement of a planet against the seven classical
// dignity rules plus the retrograde penalty, and classifies the total.
// The rules are checked independently; several categories can apply at
// once and their scores sum. The degree must lie in [0,30).
func (s *DignityService) Evaluate(planet entities.Planet, sign entities.ZodiacSign, degree float64, day, retrograde bool) (entities.DignityResult, error) {
	if !planet.IsValid() {
		return entities.DignityResult{}, fmt.Errorf("invalid planet %d", int(planet))
	}
	if !sign.IsValid() {
		return entities.DignityResult{}, fmt.Errorf("invalid zodiac sign %d", int(sign))
	}
	if degree < 0 || degree >= entities.SignSpan {
		return entities.DignityResult{}, fmt.Errorf("degree %v out of range [0,%v)", degree, entities.SignSpan)
	}

	result := entities.DignityResult{
		Planet:     planet,
		Sign:       sign,
		Degree:     degree,
		Day:        day,
		Retrograde: retrograde,
	}

	addEntry := func(rule entities.DignityRule) {
		result.Entries = append(result.Entries, entities.DignityEntry{
			Rule:  rule,
			Score: rule.Score(),
			Label: rule.ArabicName(),
		})
		result.Total += rule.Score()
	}

	if tables.InExaltation(planet, sign) {
		addEntry(entities.RuleExaltation)
	}
	if tables.InDomicile(planet, sign) {
		addEntry(entities.RuleDomicile)
	}
	if tables.HasTriplicity(planet, sign, day) {
		addEntry(entities.RuleTriplicity)
	}
	if tables.HasTerm(planet, sign, degree) {
		addEntry(entities.RuleTerms)
	}
	if tables.HasFace(planet, sign, degree) {
		addEntry(entities.RuleFace)
	}

	// Peregrine is derived: it holds exactly when no positive dignity
	// applied. It contributes nothing to the score but is reported, being
	// a meaningful classical condition in its own right.
	if len(result.Entries) == 0 {
		addEntry(entities.RulePeregrine)
	}

	if tables.InFall(planet, sign) {
		addEntry(entities.RuleFall)
	}
	if tables.InDetriment(planet, sign) {
		addEntry(entities.RuleDetriment)
	}

	if retrograde {
		result.Total += entities.RetrogradePenalty
	}

	result.Tier = entities.TierForScore(result.Total)
	return result, nil
}

// EvaluatePosition scores an externally supplied ecliptic position.
func (s *DignityService) EvaluatePosition(pos entities.EclipticPosition, day bool) (entities.DignityResult, error) {
	if err := pos.Validate(); err != nil {
		return entities.DignityResult{}, fmt.Errorf("validating position: %w", err)
	}
	return s.Evaluate(pos.Planet, pos.Sign, pos.Degree, day, pos.Retrograde)
}
