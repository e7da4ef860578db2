package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/apikit/pkg/pagination"
)

func TestParams(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		p := pagination.Params{}
		assert.Equal(t, 0, p.Offset())
		assert.Equal(t, 20, p.Limit())
	})

	t.Run("custom values", func(t *testing.T) {
		t.Parallel()
		p := pagination.Params{Page: 3, PerPage: 10}
		assert.Equal(t, 20, p.Offset())
		assert.Equal(t, 10, p.Limit())
	})

	t.Run("negative page clamped", func(t *testing.T) {
		t.Parallel()
		p := pagination.Params{Page: -1}
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("per page clamped to max", func(t *testing.T) {
		t.Parallel()
		p := pagination.Params{PerPage: 500}
		assert.Equal(t, 100, p.Limit())

		p = pagination.Params{PerPage: 500, MaxPerPage: 50}
		assert.Equal(t, 50, p.Limit())
	})
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("reads query parameters", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/items?page=2&per_page=5", nil)
		p := pagination.FromRequest(r)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 5, p.PerPage)
	})

	t.Run("malformed values fall back to defaults", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/items?page=abc&per_page=-3", nil)
		p := pagination.FromRequest(r)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("first page of many", func(t *testing.T) {
		t.Parallel()
		page := pagination.New([]int{1, 2, 3}, 30, pagination.Params{Page: 1, PerPage: 10})
		assert.Equal(t, 30, page.Total)
		assert.Equal(t, 3, page.Pages)
		assert.True(t, page.HasNext)
		assert.False(t, page.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		t.Parallel()
		page := pagination.New([]int{}, 30, pagination.Params{Page: 3, PerPage: 10})
		assert.False(t, page.HasNext)
		assert.True(t, page.HasPrev)
	})

	t.Run("empty collection has one page", func(t *testing.T) {
		t.Parallel()
		page := pagination.New[string](nil, 0, pagination.Params{})
		assert.Equal(t, 1, page.Pages)
		assert.NotNil(t, page.Items, "items must marshal as [] not null")
	})

	t.Run("meta carries navigation figures", func(t *testing.T) {
		t.Parallel()
		page := pagination.New([]string{"a", "b"}, 2, pagination.Params{Page: 1, PerPage: 10})
		meta := page.Meta()
		assert.Equal(t, 2, meta["total"])
		assert.Equal(t, 1, meta["pages"])
		assert.Equal(t, false, meta["has_next"])
	})
}

func TestSlice(t *testing.T) {
	t.Parallel()

	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	t.Run("first page", func(t *testing.T) {
		t.Parallel()
		page := pagination.Slice(items, pagination.Params{Page: 1, PerPage: 10})
		assert.Len(t, page.Items, 10)
		assert.Equal(t, 0, page.Items[0])
		assert.Equal(t, 9, page.Items[9])
		assert.Equal(t, 50, page.Total)
	})

	t.Run("short last page", func(t *testing.T) {
		t.Parallel()
		page := pagination.Slice(items[:25], pagination.Params{Page: 3, PerPage: 10})
		assert.Len(t, page.Items, 5)
		assert.False(t, page.HasNext)
	})

	t.Run("page beyond the collection", func(t *testing.T) {
		t.Parallel()
		page := pagination.Slice(items, pagination.Params{Page: 100, PerPage: 10})
		assert.Empty(t, page.Items)
		assert.Equal(t, 50, page.Total)
	})

	t.Run("empty slice", func(t *testing.T) {
		t.Parallel()
		page := pagination.Slice([]int{}, pagination.Params{})
		assert.Equal(t, 0, page.Total)
		assert.Empty(t, page.Items)
	})
}
