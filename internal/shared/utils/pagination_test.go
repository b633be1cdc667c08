package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitrine-app/vitrine/internal/shared/constants"
)

func TestValidatePagination_Defaults(t *testing.T) {
	p := ValidatePagination(0, 0)
	assert.Equal(t, constants.DefaultPage, p.Page)
	assert.Equal(t, constants.DefaultPageSize, p.PageSize)
}

func TestValidatePagination_CapsPageSize(t *testing.T) {
	p := ValidatePagination(2, constants.MaxPageSize+50)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, constants.MaxPageSize, p.PageSize)
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, PageSize: 20}.Offset())
}

func TestApplyPagination(t *testing.T) {
	tests := []struct {
		name                 string
		total, page, size    int
		wantStart, wantEnd   int
	}{
		{"first page", 10, 1, 3, 0, 3},
		{"middle page", 10, 2, 3, 3, 6},
		{"partial last page", 10, 4, 3, 9, 10},
		{"past the end", 10, 5, 3, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ApplyPagination(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}
