package models

import "testing"

func TestHasKeyword(t *testing.T) {
	tests := []struct {
		keyword string
		want    bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"tools", true},
		{"  tools  ", true},
	}
	for _, tt := range tests {
		f := SearchFilters{Keyword: tt.keyword}
		if got := f.HasKeyword(); got != tt.want {
			t.Errorf("HasKeyword(%q) = %v, want %v", tt.keyword, got, tt.want)
		}
	}
}

func TestQueryValues(t *testing.T) {
	cat := 7
	f := SearchFilters{Keyword: "  tools ", Category: &cat, Page: 2, Limit: 20}
	values := f.QueryValues()
	if got := values.Get("keyword"); got != "tools" {
		t.Errorf("keyword = %q, want %q", got, "tools")
	}
	if got := values.Get("category"); got != "7" {
		t.Errorf("category = %q, want %q", got, "7")
	}
	if got := values.Get("page"); got != "2" {
		t.Errorf("page = %q", got)
	}
	if got := values.Get("limit"); got != "20" {
		t.Errorf("limit = %q", got)
	}

	// 空参数不上wire
	empty := SearchFilters{Page: 1, Limit: 20}
	values = empty.QueryValues()
	if values.Has("keyword") || values.Has("category") {
		t.Errorf("空关键词/分类不应出现在查询串中: %v", values)
	}
}

// 不同的过滤组合必须产生不同的缓存键
func TestCacheKeyDistinct(t *testing.T) {
	cat7, cat8 := 7, 8
	filters := []SearchFilters{
		{Page: 1, Limit: 20},
		{Page: 2, Limit: 20},
		{Keyword: "tools", Page: 1, Limit: 20},
		{Keyword: "tools", Category: &cat7, Page: 1, Limit: 20},
		{Category: &cat7, Page: 1, Limit: 20},
		{Category: &cat8, Page: 1, Limit: 20},
	}
	seen := map[string]int{}
	for i, f := range filters {
		key := f.CacheKey()
		if prev, ok := seen[key]; ok {
			t.Errorf("filters[%d]和filters[%d]缓存键冲突: %q", prev, i, key)
		}
		seen[key] = i
	}
}
