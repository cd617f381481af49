//go:build unit

package request_test

import (
	"testing"
	"time"

	"lendhub/internal/domain/request"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	ref := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "days", input: "3 Days", want: ref.Add(72 * time.Hour)},
		{name: "hours", input: "5 Hours", want: ref.Add(5 * time.Hour)},
		{name: "single day", input: "1 Days", want: ref.Add(24 * time.Hour)},
		{name: "lowercase unit", input: "2 days", want: ref.Add(48 * time.Hour)},
		{name: "singular day", input: "2 day", want: ref.Add(48 * time.Hour)},
		{name: "blank falls back to default", input: "", want: ref.Add(24 * time.Hour)},
		{name: "whitespace only falls back to default", input: "   ", want: ref.Add(24 * time.Hour)},
		{name: "unparsable count becomes one", input: "abc Days", want: ref.Add(24 * time.Hour)},
		{name: "unparsable count with hours", input: "x Hours", want: ref.Add(time.Hour)},
		{name: "unknown unit counts as hours", input: "3 Weeks", want: ref.Add(3 * time.Hour)},
		{name: "count only counts as hours", input: "4", want: ref.Add(4 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := request.ParseDuration(tt.input, ref)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDuration(t *testing.T) {
	assert.Equal(t, request.DefaultDuration, request.NormalizeDuration(""))
	assert.Equal(t, request.DefaultDuration, request.NormalizeDuration("  "))
	assert.Equal(t, "2 Hours", request.NormalizeDuration("2 Hours"))
}
