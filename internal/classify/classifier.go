package classify

import (
	"strings"

	"github.com/shreyescodes/doc-parser-updated/constants"
)

// Classifier scores text against two fixed keyword vocabularies and picks a
// category. It holds no state beyond the vocabularies and performs no I/O.
type Classifier struct {
	capitalCallKeywords  []string
	distributionKeywords []string
}

// Vocabulary phrases are matched as plain substrings of the lowered text.
// A phrase matching inside a larger word still counts; that imprecision is
// accepted in exchange for predictable behavior.
var (
	defaultCapitalCallKeywords = []string{
		"capital call",
		"call notice",
		"capital contribution",
		"commitment",
		"drawdown",
		"capital request",
		"contribution request",
		"funding request",
	}
	defaultDistributionKeywords = []string{
		"distribution",
		"dividend",
		"return of capital",
		"proceeds",
		"distribution notice",
		"cash distribution",
		"return to limited partners",
	}
)

func NewClassifier() *Classifier {
	return &Classifier{
		capitalCallKeywords:  defaultCapitalCallKeywords,
		distributionKeywords: defaultDistributionKeywords,
	}
}

// Classify assigns a category to the text. The category with the strictly
// greater score wins; any tie, including 0-0, resolves to Other. The tie
// break is deliberate: an unclassified document is recoverable, a
// misclassified one is not.
func (c *Classifier) Classify(text string) constants.Category {
	lower := strings.ToLower(text)

	callScore := countMatches(lower, c.capitalCallKeywords)
	distScore := countMatches(lower, c.distributionKeywords)

	switch {
	case callScore > distScore && callScore > 0:
		return constants.CapitalCall
	case distScore > callScore && distScore > 0:
		return constants.Distribution
	default:
		return constants.Other
	}
}

// Scores returns the raw per-vocabulary scores, used for audit logging.
func (c *Classifier) Scores(text string) (capitalCall, distribution int) {
	lower := strings.ToLower(text)
	return countMatches(lower, c.capitalCallKeywords), countMatches(lower, c.distributionKeywords)
}

func countMatches(lower string, vocabulary []string) int {
	n := 0
	for _, phrase := range vocabulary {
		if strings.Contains(lower, phrase) {
			n++
		}
	}
	return n
}
