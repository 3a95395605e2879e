package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"katalog/internal/pagination"
)

func TestNewRequest_ClampsInvalidInputs(t *testing.T) {
	assert.Equal(t, pagination.Request{Page: 0, Size: 10}, pagination.NewRequest(-1, 0))
	assert.Equal(t, pagination.Request{Page: 0, Size: 10}, pagination.NewRequest(-100, -5))
	assert.Equal(t, pagination.Request{Page: 3, Size: 25}, pagination.NewRequest(3, 25))
	assert.Equal(t, pagination.Request{Page: 0, Size: 1}, pagination.NewRequest(0, 1))
}

func TestRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.NewRequest(0, 10).Offset())
	assert.Equal(t, 2, pagination.NewRequest(1, 2).Offset())
	assert.Equal(t, 50, pagination.NewRequest(5, 10).Offset())
}

func TestTotalPages_CeilsWithFloorOfOne(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		size       int
		want       int
	}{
		{"empty result still has one page", 0, 10, 1},
		{"exact multiple", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"seven items in pages of two", 7, 2, 4},
		{"non-positive size falls back to default", 25, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.TotalPages(tt.totalItems, tt.size))
		})
	}
}
