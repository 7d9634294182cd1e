package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"capital_call", CapitalCall, true},
		{"Capital Call", CapitalCall, true},
		{"drawdown", CapitalCall, true},
		{"distribution", Distribution, true},
		{"  dist  ", Distribution, true},
		{"other", Other, true},
		{"", Other, false},
		{"prospectus", Other, false},
	}
	for _, tt := range tests {
		got, ok := Canonicalize(tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
	}
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat(".PDF"))
	assert.Equal(t, IMAGE, MapExtToFormat("jpeg"))
	assert.Equal(t, "", MapExtToFormat("docx"))
}
