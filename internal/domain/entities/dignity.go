package entities

import "fmt"

// DignityRule is one of the classical essential dignity and debility rule
// categories. The declaration order is the canonical table order, used to
// break ties when selecting a primary entry.
type DignityRule int

const (
	RuleExaltation DignityRule = iota
	RuleDomicile
	RuleTriplicity
	RuleTerms
	RuleFace
	RulePeregrine
	RuleFall
	RuleDetriment
)

// DignityRuleCount is the number of dignity rule categories.
const DignityRuleCount = 8

type ruleInfo struct {
	name   string
	arabic string
	score  int
}

var ruleTable = [DignityRuleCount]ruleInfo{
	RuleExaltation: {name: "Exaltation", arabic: "شرف", score: 5},
	RuleDomicile:   {name: "Domicile", arabic: "بيت", score: 5},
	RuleTriplicity: {name: "Triplicity", arabic: "مثلثة", score: 3},
	RuleTerms:      {name: "Terms", arabic: "حد", score: 2},
	RuleFace:       {name: "Face", arabic: "وجه", score: 1},
	RulePeregrine:  {name: "Peregrine", arabic: "غريب", score: 0},
	RuleFall:       {name: "Fall", arabic: "هبوط", score: -4},
	RuleDetriment:  {name: "Detriment", arabic: "ضرر", score: -5},
}

// IsValid reports whether r is a known rule category.
func (r DignityRule) IsValid() bool {
	return r >= RuleExaltation && r <= RuleDetriment
}

// String returns the English rule name.
func (r DignityRule) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("DignityRule(%d)", int(r))
	}
	return ruleTable[r].name
}

// ArabicName returns the classical Arabic term for the rule.
func (r DignityRule) ArabicName() string {
	if !r.IsValid() {
		return ""
	}
	return ruleTable[r].arabic
}

// Score returns the signed score the rule contributes when it applies.
func (r DignityRule) Score() int {
	if !r.IsValid() {
		return 0
	}
	return ruleTable[r].score
}

// RetrogradePenalty is applied once to the total score of a retrograde
// planet, independent of which rules matched.
const RetrogradePenalty = -2

// DignityEntry records one rule category that applies to a placement.
type DignityEntry struct {
	Rule  DignityRule `json:"rule"`
	Score int         `json:"score"`
	Label string      `json:"label"`
}

// ConditionTier is the coarse user-facing classification of a total score.
type ConditionTier int

const (
	TierFavorable ConditionTier = iota
	TierModerate
	TierCautious
)

var tierNames = [3]string{"Favorable", "Moderate", "Cautious"}
var tierArabic = [3]string{"سعيد", "معتدل", "محذور"}

// String returns the English tier name.
func (t ConditionTier) String() string {
	if t < TierFavorable || t > TierCautious {
		return fmt.Sprintf("ConditionTier(%d)", int(t))
	}
	return tierNames[t]
}

// ArabicName returns the Arabic tier name.
func (t ConditionTier) ArabicName() string {
	if t < TierFavorable || t > TierCautious {
		return ""
	}
	return tierArabic[t]
}

// TierForScore collapses a total dignity score into its tier. The
// boundaries are exact integer cutoffs: +5 and above is Favorable, −4 and
// below is Cautious, everything strictly between is Moderate.
func TierForScore(total int) ConditionTier {
	switch {
	case total >= 5:
		return TierFavorable
	case total <= -4:
		return TierCautious
	default:
		return TierModerate
	}
}

// DignityResult is the full evaluation of one planet's placement.
// Computed fresh per query and immutable once produced.
type DignityResult struct {
	Planet     Planet         `json:"planet"`
	Sign       ZodiacSign     `json:"sign"`
	Degree     float64        `json:"degree"`
	Day        bool           `json:"day"`
	Retrograde bool           `json:"retrograde"`
	Total      int            `json:"total"`
	Tier       ConditionTier  `json:"tier"`
	Entries    []DignityEntry `json:"entries"`
}

// Peregrine reports whether the placement carries no positive dignity.
func (r DignityResult) Peregrine() bool {
	for _, e := range r.Entries {
		if e.Rule == RulePeregrine {
			return true
		}
	}
	return false
}

// Primary returns the single most significant entry: the applicable rule
// with the highest absolute score, ties broken by table order. The second
// return is false only when no rule applied at all, which cannot happen
// for a well-formed result since Peregrine fills that case.
func (r DignityResult) Primary() (DignityEntry, bool) {
	var best DignityEntry
	found := false
	for _, e := range r.Entries {
		if !found {
			best, found = e, true
			continue
		}
		if abs(e.Score) > abs(best.Score) {
			best = e
			continue
		}
		if abs(e.Score) == abs(best.Score) && e.Rule < best.Rule {
			best = e
		}
	}
	return best, found
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
