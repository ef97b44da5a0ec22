package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiyoko-dev/crm-web/internal/utils"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		totalCount int64
		wantNumber int
		wantPages  int
	}{
		{"first page", 1, 100, 1, 4},
		{"middle page", 3, 100, 3, 4},
		{"exact last page", 4, 100, 4, 4},
		{"beyond last page clamps to last", 99, 100, 4, 4},
		{"zero clamps to first", 0, 100, 1, 4},
		{"negative clamps to first", -5, 100, 1, 4},
		{"empty result set yields one page", 7, 0, 1, 1},
		{"partial last page", 2, 26, 2, 2},
		{"single full page", 2, 25, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := utils.ClampPage(tt.requested, tt.totalCount)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.totalCount, page.TotalCount)
		})
	}
}

func TestPage_Navigation(t *testing.T) {
	page := utils.ClampPage(2, 100)

	assert.True(t, page.HasPrev())
	assert.True(t, page.HasNext())
	assert.Equal(t, 1, page.PrevNumber())
	assert.Equal(t, 3, page.NextNumber())
	assert.Equal(t, 25, page.Offset())

	first := utils.ClampPage(1, 10)
	assert.False(t, first.HasPrev())
	assert.False(t, first.HasNext())
	assert.Equal(t, 0, first.Offset())
}
