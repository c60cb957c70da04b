package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contafacil/contafacil-backend/internal/dto"
)

func TestNewListPaginationMath(t *testing.T) {
	testCases := []struct {
		name           string
		count          int
		limit          int
		offset         int
		wantPage       int
		wantTotalPages int
	}{
		{name: "empty result", count: 0, limit: 50, offset: 0, wantPage: 1, wantTotalPages: 0},
		{name: "single page", count: 3, limit: 50, offset: 0, wantPage: 1, wantTotalPages: 1},
		{name: "exact multiple of limit", count: 100, limit: 50, offset: 0, wantPage: 1, wantTotalPages: 2},
		{name: "remainder adds a page", count: 101, limit: 50, offset: 50, wantPage: 2, wantTotalPages: 3},
		{name: "offset past the end", count: 10, limit: 50, offset: 100, wantPage: 3, wantTotalPages: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := dto.NewList([]string{}, tc.count, tc.limit, tc.offset)

			assert.Equal(t, "success", resp.Status)
			assert.Equal(t, tc.count, resp.Count)
			assert.Equal(t, tc.limit, resp.Limit)
			assert.Equal(t, tc.wantPage, resp.Page)
			assert.Equal(t, tc.wantTotalPages, resp.TotalPages)
		})
	}
}

func TestNewListZeroLimitSkipsPageMath(t *testing.T) {
	resp := dto.NewList(nil, 10, 0, 0)

	assert.Equal(t, 10, resp.Count)
	assert.Zero(t, resp.Page)
	assert.Zero(t, resp.TotalPages)
}
