package fields

import "strings"

// FundInfo is the document-level fund identity, extracted regardless of
// category.
type FundInfo struct {
	FundName *string `json:"fund_name,omitempty"`
	FundID   *string `json:"fund_id,omitempty"`
	FundSize *string `json:"fund_size,omitempty"`
}

var fundInfoKeywords = []struct {
	name     string
	keywords []string
}{
	{"fund_name", []string{"fund name", "fund:", "investment fund"}},
	{"fund_id", []string{"fund id", "fund identifier", "fund number"}},
	{"fund_size", []string{"fund size", "total commitments", "fund commitments"}},
}

// ExtractFundInfo scans for "keyword ... : value" lines. The first keyword
// hit per field wins.
func (e *Engine) ExtractFundInfo(text string) FundInfo {
	values := map[string]string{}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, f := range fundInfoKeywords {
			if _, ok := values[f.name]; ok {
				continue
			}
			for _, keyword := range f.keywords {
				if !strings.Contains(lower, keyword) {
					continue
				}
				if idx := strings.Index(line, ":"); idx >= 0 {
					if value := strings.TrimSpace(line[idx+1:]); value != "" {
						values[f.name] = value
					}
				}
				break
			}
		}
	}

	var info FundInfo
	if v, ok := values["fund_name"]; ok {
		info.FundName = &v
	}
	if v, ok := values["fund_id"]; ok {
		info.FundID = &v
	}
	if v, ok := values["fund_size"]; ok {
		info.FundSize = &v
	}
	return info
}
