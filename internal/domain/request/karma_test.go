//go:build unit

package request_test

import (
	"testing"
	"time"

	"lendhub/internal/domain/request"

	"github.com/stretchr/testify/assert"
)

func TestSettle(t *testing.T) {
	due := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		completed time.Time
		wantLabel string
		wantKarma int
	}{
		{
			name:      "early return",
			completed: due.Add(-2 * time.Hour),
			wantLabel: request.OnTimeLabel,
			wantKarma: 10,
		},
		{
			name:      "exactly on time",
			completed: due,
			wantLabel: request.OnTimeLabel,
			wantKarma: 10,
		},
		{
			name:      "one second late rounds up to one hour",
			completed: due.Add(time.Second),
			wantLabel: "1 hours late",
			wantKarma: 8,
		},
		{
			name:      "just under two hours late floors to one",
			completed: due.Add(time.Hour + 59*time.Minute),
			wantLabel: "1 hours late",
			wantKarma: 8,
		},
		{
			name:      "two hours late",
			completed: due.Add(2 * time.Hour),
			wantLabel: "2 hours late",
			wantKarma: 6,
		},
		{
			name:      "four hours late hits the floor",
			completed: due.Add(4 * time.Hour),
			wantLabel: "4 hours late",
			wantKarma: 2,
		},
		{
			name:      "deep lateness stays at the floor",
			completed: due.Add(23 * time.Hour),
			wantLabel: "23 hours late",
			wantKarma: 2,
		},
		{
			name:      "just over a day switches to day label",
			completed: due.Add(25 * time.Hour),
			wantLabel: "1 days late",
			wantKarma: 2,
		},
		{
			name:      "several days late",
			completed: due.Add(73 * time.Hour),
			wantLabel: "3 days late",
			wantKarma: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := request.Settle(due, tt.completed)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantKarma, got.BorrowerKarma)
		})
	}
}
