package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginateFirstPage(t *testing.T) {
	cases := []struct {
		name  string
		total int
		want  int
	}{
		{"fewer than a page", 5, 5},
		{"exactly a page", 10, 10},
		{"more than a page", 13, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := Paginate(makeItems(tc.total), "1")
			assert.Len(t, page.Items, tc.want)
			assert.Equal(t, 1, page.Number)
			assert.False(t, page.HasPrevious)
		})
	}
}

func TestPaginateLastPage(t *testing.T) {
	page := Paginate(makeItems(13), "2")
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasPrevious)
	assert.False(t, page.HasNext)
	// 末页是剩下的那几条
	assert.Equal(t, []int{11, 12, 13}, page.Items)
}

func TestPaginateExactMultiple(t *testing.T) {
	page := Paginate(makeItems(20), "2")
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
}

func TestPaginateDefaultsToFirstPage(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-3"} {
		page := Paginate(makeItems(13), raw)
		assert.Equal(t, 1, page.Number, "page=%q", raw)
		assert.Len(t, page.Items, 10)
	}
}

func TestPaginateClampsToLastPage(t *testing.T) {
	page := Paginate(makeItems(13), "99")
	assert.Equal(t, 2, page.Number)
	assert.Len(t, page.Items, 3)
	assert.False(t, page.HasNext)
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]int{}, "1")
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrevious)
	assert.False(t, page.HasNext)
}

func TestPaginateCustomSize(t *testing.T) {
	page := PaginateSize(makeItems(7), "2", 3)
	assert.Equal(t, []int{4, 5, 6}, page.Items)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPrevious)
	assert.True(t, page.HasNext)
}
