package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams(24)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 24, p.PageSize)

	assert.Equal(t, 25, DefaultParams(0).PageSize)
	assert.Equal(t, 25, DefaultParams(500).PageSize)
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		params    Params
		pageCount int
		hasNext   bool
		hasPrev   bool
	}{
		{"empty", 0, Params{Page: 1, PageSize: 24}, 0, false, false},
		{"exact", 48, Params{Page: 1, PageSize: 24}, 2, true, false},
		{"remainder", 50, Params{Page: 2, PageSize: 24}, 3, true, true},
		{"last page", 50, Params{Page: 3, PageSize: 24}, 3, false, true},
		{"beyond", 10, Params{Page: 5, PageSize: 24}, 1, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeta(tt.total, tt.params)
			assert.Equal(t, tt.params.Page, m.Page)
			assert.Equal(t, tt.params.PageSize, m.PageSize)
			assert.Equal(t, tt.total, m.Total)
			assert.Equal(t, tt.pageCount, m.PageCount)
			assert.Equal(t, tt.hasNext, m.HasNext())
			assert.Equal(t, tt.hasPrev, m.HasPrev())
		})
	}
}

func TestNewMeta_ZeroPageSize(t *testing.T) {
	m := NewMeta(10, Params{Page: 1})
	assert.Zero(t, m.PageCount)
}

func TestMeta_Pages(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Meta{PageCount: 3}.Pages())
	assert.Empty(t, Meta{}.Pages())
}
