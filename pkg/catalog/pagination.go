package catalog

// DefaultMaxVisible 分页控件默认可见页码数
const DefaultMaxVisible = 7

// VisiblePages 计算分页控件可见的页码窗口
// 窗口长度为 min(maxVisible, totalPages)，且始终包含currentPage。
// 调用方保证 1 <= currentPage <= totalPages
func VisiblePages(currentPage, totalPages, maxVisible int) []int {
	half := maxVisible / 2
	start := currentPage - half
	if start < 1 {
		start = 1
	}
	end := start + maxVisible - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < maxVisible {
		start = end - maxVisible + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, maxVisible)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Pager 分页控件视图模型
type Pager struct {
	CurrentPage      int   `json:"currentPage"`
	TotalPages       int   `json:"totalPages"`
	Pages            []int `json:"pages"`            // 可见页码窗口
	ShowFirst        bool  `json:"showFirst"`        // 窗口前需要单独展示第1页
	LeadingEllipsis  bool  `json:"leadingEllipsis"`  // 第1页和窗口之间的省略号
	ShowLast         bool  `json:"showLast"`         // 窗口后需要单独展示末页
	TrailingEllipsis bool  `json:"trailingEllipsis"` // 窗口和末页之间的省略号
	PrevDisabled     bool  `json:"prevDisabled"`
	NextDisabled     bool  `json:"nextDisabled"`
}

// BuildPager 构建分页控件，总页数不超过1时整个控件不出现，返回nil
func BuildPager(currentPage, totalPages, maxVisible int) *Pager {
	if totalPages <= 1 {
		return nil
	}
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	pages := VisiblePages(currentPage, totalPages, maxVisible)
	first := pages[0]
	last := pages[len(pages)-1]
	return &Pager{
		CurrentPage:      currentPage,
		TotalPages:       totalPages,
		Pages:            pages,
		ShowFirst:        first > 1,
		LeadingEllipsis:  first > 2,
		ShowLast:         last < totalPages,
		TrailingEllipsis: last < totalPages-1,
		PrevDisabled:     currentPage == 1,
		NextDisabled:     currentPage == totalPages,
	}
}
