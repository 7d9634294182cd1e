// Package fields implements the keyword-anchored rule engine that turns
// normalized document text into typed field sets. Extraction is
// deterministic: keywords are tried in declaration order and the first
// successful parse wins. There is no candidate ranking.
package fields

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

var (
	reCurrency   = regexp.MustCompile(`\$[\d,]+\.?\d*|\d+\.?\d*\s*(USD|EUR|GBP|CAD|AUD)`)
	reDate       = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}-\d{1,2}-\d{1,2}\b`)
	rePercentage = regexp.MustCompile(`\d+\.?\d*\s*%`)
	reAmount     = regexp.MustCompile(`[\d,]+\.?\d*`)
	reNonNumeric = regexp.MustCompile(`[^\d.,]`)
)

// Ordered date layouts; the first layout that parses wins.
var dateLayouts = []string{
	"01/02/2006",
	"01-02-2006",
	"2006-01-02",
	"01/02/06",
}

// extractDate scans for the first keyword-anchored line containing a
// date-shaped token and parses it against the ordered layouts.
func (e *Engine) extractDate(text string, keywords []string) *time.Time {
	lines := strings.Split(text, "\n")
	for _, keyword := range keywords {
		for _, line := range lines {
			if !strings.Contains(strings.ToLower(line), keyword) {
				continue
			}
			match := reDate.FindString(line)
			if match == "" {
				continue
			}
			for _, layout := range dateLayouts {
				if t, err := time.Parse(layout, match); err == nil {
					return &t
				}
			}
			e.logger.Debug("date token did not parse", "token", match, "keyword", keyword)
		}
	}
	return nil
}

// extractAmount prefers a currency-shaped token on the keyword line, falling
// back to a bare numeric literal. Returns nil on total failure, never an
// error.
func (e *Engine) extractAmount(text string, keywords []string) *float64 {
	lines := strings.Split(text, "\n")
	for _, keyword := range keywords {
		for _, line := range lines {
			if !strings.Contains(strings.ToLower(line), keyword) {
				continue
			}
			if match := reCurrency.FindString(line); match != "" {
				if v, ok := parseNumeric(match); ok {
					return &v
				}
			}
			if match := reAmount.FindString(line); match != "" {
				if v, ok := parseNumeric(match); ok {
					return &v
				}
			}
		}
	}
	return nil
}

func parseNumeric(token string) (float64, bool) {
	cleaned := reNonNumeric.ReplaceAllString(token, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (e *Engine) extractPercentage(text string, keywords []string) *float64 {
	lines := strings.Split(text, "\n")
	for _, keyword := range keywords {
		for _, line := range lines {
			if !strings.Contains(strings.ToLower(line), keyword) {
				continue
			}
			match := rePercentage.FindString(line)
			if match == "" {
				continue
			}
			cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(match), "%"))
			if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
				return &v
			}
		}
	}
	return nil
}

// Fund name patterns are applied over the whole document, not line-scoped.
var fundNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`fund[:\s]+([A-Z][^.\n]*)`),
	regexp.MustCompile(`([A-Z][A-Z\s]+fund)`),
	regexp.MustCompile(`([A-Z][A-Z\s]+partners)`),
	regexp.MustCompile(`([A-Z][A-Z\s]+capital)`),
}

func (e *Engine) extractFundName(text string) *string {
	for _, pattern := range fundNamePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" {
				return &name
			}
		}
	}
	return nil
}

var lpNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)dear\s+([^,\n]+)`),
	regexp.MustCompile(`(?i)to:\s*([^,\n]+)`),
	regexp.MustCompile(`(?i)limited partner[:\s]+([^,\n]+)`),
	regexp.MustCompile(`(?i)lp[:\s]+([^,\n]+)`),
}

func (e *Engine) extractLPName(text string) *string {
	for _, pattern := range lpNamePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" {
				return &name
			}
		}
	}
	return nil
}

// Section headers that open a payment-instructions block.
var paymentSections = []string{
	"payment instructions",
	"wire instructions",
	"payment details",
	"banking information",
}

// Closing salutations terminate the block early.
var closingSalutations = []string{"sincerely", "regards", "best"}

// extractPaymentInstructions collects up to 9 lines after the first section
// header, stopping at a closing salutation.
func (e *Engine) extractPaymentInstructions(text string) *string {
	lines := strings.Split(text, "\n")
	for _, section := range paymentSections {
		start := -1
		for i, line := range lines {
			if strings.Contains(strings.ToLower(line), section) {
				start = i
				break
			}
		}
		if start < 0 {
			continue
		}
		var collected []string
		end := start + 10
		if end > len(lines) {
			end = len(lines)
		}
		for i := start + 1; i < end; i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}
			if startsWithAny(strings.ToLower(line), closingSalutations) {
				break
			}
			collected = append(collected, line)
		}
		if len(collected) > 0 {
			joined := strings.Join(collected, "\n")
			return &joined
		}
	}
	return nil
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Wire-transfer sub-fields and their anchor keywords, in declaration order.
var wireFields = []struct {
	name     string
	keywords []string
}{
	{"bank_name", []string{"bank name", "bank:"}},
	{"account_number", []string{"account number", "account no", "acct no"}},
	{"routing_number", []string{"routing number", "routing no", "aba"}},
	{"swift_code", []string{"swift", "bic"}},
	{"beneficiary", []string{"beneficiary", "pay to"}},
}

// extractWireTransferInfo scans all lines for "keyword ... : value" pairs and
// keeps the first match per sub-field. Returns nil when nothing matched.
func (e *Engine) extractWireTransferInfo(text string) map[string]string {
	lines := strings.Split(text, "\n")
	info := map[string]string{}
	for _, f := range wireFields {
		for _, keyword := range f.keywords {
			if _, ok := info[f.name]; ok {
				break
			}
			for _, line := range lines {
				if !strings.Contains(strings.ToLower(line), keyword) {
					continue
				}
				if idx := strings.Index(line, ":"); idx >= 0 {
					value := strings.TrimSpace(line[idx+1:])
					if value != "" {
						info[f.name] = value
						break
					}
				}
			}
		}
	}
	if len(info) == 0 {
		return nil
	}
	return info
}

var paymentMethods = []string{"wire transfer", "ach", "check", "electronic transfer", "direct deposit"}

func (e *Engine) extractPaymentMethod(text string) *string {
	lower := strings.ToLower(text)
	for _, method := range paymentMethods {
		if strings.Contains(lower, method) {
			m := method
			return &m
		}
	}
	return nil
}
