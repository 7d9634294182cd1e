package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shreyescodes/doc-parser-updated/constants"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want constants.Category
	}{
		{
			name: "capital call notice",
			text: "CAPITAL CALL NOTICE\nThis capital call represents a drawdown against your commitment.",
			want: constants.CapitalCall,
		},
		{
			name: "distribution notice",
			text: "DISTRIBUTION NOTICE\nWe are pleased to announce a cash distribution of proceeds.",
			want: constants.Distribution,
		},
		{
			name: "keyword casing is irrelevant",
			text: "subject: Capital Call and Funding Request",
			want: constants.CapitalCall,
		},
		{
			name: "empty text",
			text: "",
			want: constants.Other,
		},
		{
			name: "unrelated text",
			text: "Quarterly portfolio commentary and market outlook.",
			want: constants.Other,
		},
		{
			name: "tie resolves to other",
			// two hits each side: capital call + commitment vs distribution + dividend
			text: "This capital call follows your commitment; a distribution and dividend will follow.",
			want: constants.Other,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewClassifier()
	text := "capital call drawdown distribution dividend proceeds"
	first := c.Classify(text)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, c.Classify(text))
	}
}

func TestScores(t *testing.T) {
	c := NewClassifier()

	call, dist := c.Scores("capital call notice with a drawdown")
	assert.Equal(t, 3, call) // capital call, call notice, drawdown
	assert.Equal(t, 0, dist)

	call, dist = c.Scores("cash distribution of proceeds")
	assert.Equal(t, 0, call)
	assert.Equal(t, 3, dist) // distribution, cash distribution, proceeds
}

func TestCountMatchesCountsPhrasesOnce(t *testing.T) {
	// repeating a phrase does not inflate the score
	n := countMatches("distribution distribution distribution", defaultDistributionKeywords)
	assert.Equal(t, 1, n)
}
