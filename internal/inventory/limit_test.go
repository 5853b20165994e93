package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		current int
		limit   int
		bypass  bool
		want    bool
	}{
		{"below limit", 2, 5, false, true},
		{"one below limit", 4, 5, false, true},
		{"at limit", 5, 5, false, false},
		{"above limit", 7, 5, false, false},
		{"at limit with bypass", 5, 5, true, true},
		{"zero limit", 0, 0, false, false},
		{"zero limit with bypass", 0, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.current, tt.limit, tt.bypass))
		})
	}
}
