//go:build unit

package request_test

import (
	"testing"

	"lendhub/internal/domain/request"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	all := []request.Status{
		request.StatusPending,
		request.StatusApproved,
		request.StatusCompleted,
		request.StatusRejected,
	}

	legal := map[request.Status]map[request.Status]bool{
		request.StatusPending:  {request.StatusApproved: true, request.StatusRejected: true},
		request.StatusApproved: {request.StatusCompleted: true},
	}

	for _, from := range all {
		for _, to := range all {
			want := legal[from][to]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, request.StatusPending.IsTerminal())
	assert.False(t, request.StatusApproved.IsTerminal())
	assert.True(t, request.StatusCompleted.IsTerminal())
	assert.True(t, request.StatusRejected.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, request.StatusPending.IsValid())
	assert.False(t, request.Status("cancelled").IsValid())
	assert.False(t, request.Status("").IsValid())
}
