package catalog

import (
	"reflect"
	"testing"
)

func TestVisiblePages(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        []int
	}{
		{
			name:        "total smaller than window",
			currentPage: 2,
			totalPages:  3,
			want:        []int{1, 2, 3},
		},
		{
			name:        "current at start",
			currentPage: 1,
			totalPages:  20,
			want:        []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:        "current in middle",
			currentPage: 10,
			totalPages:  20,
			want:        []int{7, 8, 9, 10, 11, 12, 13},
		},
		{
			name:        "current near end clamps window back",
			currentPage: 19,
			totalPages:  20,
			want:        []int{14, 15, 16, 17, 18, 19, 20},
		},
		{
			name:        "current at end",
			currentPage: 20,
			totalPages:  20,
			want:        []int{14, 15, 16, 17, 18, 19, 20},
		},
		{
			name:        "exactly window size",
			currentPage: 4,
			totalPages:  7,
			want:        []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:        "single page",
			currentPage: 1,
			totalPages:  1,
			want:        []int{1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisiblePages(tt.currentPage, tt.totalPages, DefaultMaxVisible)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("VisiblePages(%d, %d) = %v, want %v", tt.currentPage, tt.totalPages, got, tt.want)
			}
		})
	}
}

// 窗口长度恒为 min(maxVisible, totalPages)，且始终包含当前页
func TestVisiblePagesInvariants(t *testing.T) {
	for totalPages := 1; totalPages <= 30; totalPages++ {
		for currentPage := 1; currentPage <= totalPages; currentPage++ {
			pages := VisiblePages(currentPage, totalPages, DefaultMaxVisible)

			wantLen := DefaultMaxVisible
			if totalPages < wantLen {
				wantLen = totalPages
			}
			if len(pages) != wantLen {
				t.Fatalf("current=%d total=%d: 窗口长度 %d, want %d", currentPage, totalPages, len(pages), wantLen)
			}

			found := false
			for _, p := range pages {
				if p == currentPage {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("current=%d total=%d: 窗口 %v 不包含当前页", currentPage, totalPages, pages)
			}
		}
	}
}

func TestBuildPager(t *testing.T) {
	t.Run("no control at zero pages", func(t *testing.T) {
		if got := BuildPager(1, 0, DefaultMaxVisible); got != nil {
			t.Errorf("totalPages=0 应不渲染控件, got %+v", got)
		}
	})
	t.Run("no control at single page", func(t *testing.T) {
		if got := BuildPager(1, 1, DefaultMaxVisible); got != nil {
			t.Errorf("totalPages=1 应不渲染控件, got %+v", got)
		}
	})

	t.Run("middle page shows both edges with ellipsis", func(t *testing.T) {
		pager := BuildPager(10, 20, DefaultMaxVisible)
		if pager == nil {
			t.Fatal("BuildPager returned nil")
		}
		if !pager.ShowFirst || !pager.LeadingEllipsis {
			t.Errorf("中间页应展示第1页和前省略号: %+v", pager)
		}
		if !pager.ShowLast || !pager.TrailingEllipsis {
			t.Errorf("中间页应展示末页和后省略号: %+v", pager)
		}
		if pager.PrevDisabled || pager.NextDisabled {
			t.Errorf("中间页上下翻页都应可用: %+v", pager)
		}
	})

	t.Run("window starting at 2 shows first without ellipsis", func(t *testing.T) {
		// current=5 total=9: 窗口 [2..8]，第1页单独展示但无省略号
		pager := BuildPager(5, 9, DefaultMaxVisible)
		if pager == nil {
			t.Fatal("BuildPager returned nil")
		}
		if !pager.ShowFirst || pager.LeadingEllipsis {
			t.Errorf("start=2 应展示第1页且无省略号: %+v", pager)
		}
		if !pager.ShowLast || pager.TrailingEllipsis {
			t.Errorf("end=totalPages-1 应展示末页且无省略号: %+v", pager)
		}
	})

	t.Run("prev disabled at first page", func(t *testing.T) {
		pager := BuildPager(1, 20, DefaultMaxVisible)
		if pager == nil {
			t.Fatal("BuildPager returned nil")
		}
		if !pager.PrevDisabled || pager.NextDisabled {
			t.Errorf("第1页应禁用上一页: %+v", pager)
		}
		if pager.ShowFirst || pager.LeadingEllipsis {
			t.Errorf("窗口含第1页时不应重复展示: %+v", pager)
		}
	})

	t.Run("next disabled at last page", func(t *testing.T) {
		pager := BuildPager(20, 20, DefaultMaxVisible)
		if pager == nil {
			t.Fatal("BuildPager returned nil")
		}
		if pager.PrevDisabled || !pager.NextDisabled {
			t.Errorf("末页应禁用下一页: %+v", pager)
		}
		if pager.ShowLast || pager.TrailingEllipsis {
			t.Errorf("窗口含末页时不应重复展示: %+v", pager)
		}
	})
}
