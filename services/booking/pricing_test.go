package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name  string
		price int
		hours float64
		want  int
	}{
		{"one hour", 1999, 1, 1999},
		{"two hours", 1999, 2, 3998},
		{"ninety minutes even price", 1000, 1.5, 1500},
		{"ninety minutes rounds half up", 999, 1.5, 1499},
		{"ninety minutes odd price", 599, 1.5, 899},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalAmount(tt.price, tt.hours))
		})
	}
}

func TestValidDuration(t *testing.T) {
	for _, d := range AllowedDurations {
		assert.True(t, ValidDuration(d))
	}
	assert.False(t, ValidDuration(0.5))
	assert.False(t, ValidDuration(3))
}
