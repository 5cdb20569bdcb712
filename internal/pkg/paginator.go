package pkg

import "strconv"

// PageSize 每页固定 10 条
const PageSize = 10

type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"page_number"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// Paginate 按固定页大小对已排序的列表分页
func Paginate[T any](items []T, page string) Page[T] {
	return PaginateSize(items, page, PageSize)
}

// PaginateSize 纯函数分页：
// page 非数字或小于 1 时按第 1 页处理，超过末页时截到末页；
// 空列表视为一个空页（total_pages=1）
func PaginateSize[T any](items []T, page string, size int) Page[T] {
	if size <= 0 {
		size = PageSize
	}

	total := (len(items) + size - 1) / size
	if total == 0 {
		total = 1
	}

	n, err := strconv.Atoi(page)
	if err != nil || n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}

	lo := (n - 1) * size
	hi := lo + size
	if lo > len(items) {
		lo = len(items)
	}
	if hi > len(items) {
		hi = len(items)
	}

	return Page[T]{
		Items:       items[lo:hi],
		Number:      n,
		TotalPages:  total,
		HasPrevious: n > 1,
		HasNext:     n < total,
	}
}
