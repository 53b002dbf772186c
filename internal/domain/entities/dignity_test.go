package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDignityRule_Scores(t *testing.T) {
	assert.Equal(t, 5, RuleExaltation.Score())
	assert.Equal(t, 5, RuleDomicile.Score())
	assert.Equal(t, 3, RuleTriplicity.Score())
	assert.Equal(t, 2, RuleTerms.Score())
	assert.Equal(t, 1, RuleFace.Score())
	assert.Equal(t, 0, RulePeregrine.Score())
	assert.Equal(t, -4, RuleFall.Score())
	assert.Equal(t, -5, RuleDetriment.Score())
}

func TestTierForScore(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		expected ConditionTier
	}{
		{name: "high positive is favorable", total: 10, expected: TierFavorable},
		{name: "exactly five is favorable", total: 5, expected: TierFavorable},
		{name: "four is moderate", total: 4, expected: TierModerate},
		{name: "zero is moderate", total: 0, expected: TierModerate},
		{name: "minus three is moderate", total: -3, expected: TierModerate},
		{name: "exactly minus four is cautious", total: -4, expected: TierCautious},
		{name: "deep negative is cautious", total: -11, expected: TierCautious},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TierForScore(tt.total))
		})
	}
}

func TestDignityResult_Primary(t *testing.T) {
	tests := []struct {
		name     string
		entries  []DignityEntry
		expected DignityRule
	}{
		{
			name: "highest absolute weight wins",
			entries: []DignityEntry{
				{Rule: RuleTriplicity, Score: 3},
				{Rule: RuleDomicile, Score: 5},
				{Rule: RuleFace, Score: 1},
			},
			expected: RuleDomicile,
		},
		{
			name: "debility outranks smaller dignity",
			entries: []DignityEntry{
				{Rule: RuleTerms, Score: 2},
				{Rule: RuleFall, Score: -4},
			},
			expected: RuleFall,
		},
		{
			name: "tie broken by table order",
			entries: []DignityEntry{
				{Rule: RuleDomicile, Score: 5},
				{Rule: RuleExaltation, Score: 5},
			},
			expected: RuleExaltation,
		},
		{
			name: "detriment ties fall-adjacent exaltation by magnitude",
			entries: []DignityEntry{
				{Rule: RuleDetriment, Score: -5},
				{Rule: RuleExaltation, Score: 5},
			},
			expected: RuleExaltation,
		},
		{
			name:     "peregrine alone",
			entries:  []DignityEntry{{Rule: RulePeregrine, Score: 0}},
			expected: RulePeregrine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DignityResult{Entries: tt.entries}
			primary, ok := result.Primary()
			require.True(t, ok)
			assert.Equal(t, tt.expected, primary.Rule)
		})
	}
}

func TestDignityResult_PrimaryEmpty(t *testing.T) {
	_, ok := DignityResult{}.Primary()
	assert.False(t, ok)
}

func TestDignityRule_TableOrder(t *testing.T) {
	// The enum order is the tie-break order and must not drift.
	expected := []DignityRule{
		RuleExaltation, RuleDomicile, RuleTriplicity, RuleTerms,
		RuleFace, RulePeregrine, RuleFall, RuleDetriment,
	}
	for i, r := range expected {
		assert.Equal(t, DignityRule(i), r)
	}
}
