package entities

import "fmt"

// Advisory is the five-tier guidance label derived from a harmony score.
// The element scorer only ever produces scores of 85, 65 and 40, so in
// practice only the top three tiers are reachable; the full scale keeps
// the labeling total over the 0–100 range.
type Advisory int

const (
	AdvisoryAct Advisory = iota
	AdvisoryMaintain
	AdvisoryHold
	AdvisoryPause
	AdvisoryAvoid
)

var advisoryNames = [5]string{"Act", "Maintain", "Hold", "Pause", "Avoid"}

// String returns the English advisory label.
func (a Advisory) String() string {
	if a < AdvisoryAct || a > AdvisoryAvoid {
		return fmt.Sprintf("Advisory(%d)", int(a))
	}
	return advisoryNames[a]
}

// AdvisoryForScore maps a 0–100 harmony score onto the advisory scale.
func AdvisoryForScore(score int) Advisory {
	switch {
	case score >= 80:
		return AdvisoryAct
	case score >= 60:
		return AdvisoryMaintain
	case score >= 40:
		return AdvisoryHold
	case score >= 20:
		return AdvisoryPause
	default:
		return AdvisoryAvoid
	}
}

// Alignment is the harmony between a user's personal element and the
// element of the currently ruling hour's planet.
type Alignment struct {
	UserElement Element  `json:"user_element"`
	HourElement Element  `json:"hour_element"`
	Score       int      `json:"score"`
	Advisory    Advisory `json:"advisory"`
}
