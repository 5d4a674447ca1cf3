package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize 列表默认每页大小
const DefaultPageSize = 20

// SearchFilters 当前查询条件，仅存在于本次会话，URL才是keyword/category的持久副本
type SearchFilters struct {
	Keyword  string `json:"keyword,omitempty"`  // 搜索关键词
	Category *int   `json:"category,omitempty"` // 分类ID过滤
	Page     int    `json:"page"`               // 页码，从1开始
	Limit    int    `json:"limit"`              // 每页大小
}

// HasKeyword 关键词去除首尾空白后是否非空
func (f *SearchFilters) HasKeyword() bool {
	return strings.TrimSpace(f.Keyword) != ""
}

// QueryValues 转为上游列表接口的query参数
func (f *SearchFilters) QueryValues() url.Values {
	values := url.Values{}
	if f.HasKeyword() {
		values.Set("keyword", strings.TrimSpace(f.Keyword))
	}
	if f.Category != nil {
		values.Set("category", strconv.Itoa(*f.Category))
	}
	values.Set("page", strconv.Itoa(f.Page))
	values.Set("limit", strconv.Itoa(f.Limit))
	return values
}

// CacheKey 完整过滤元组的缓存键，不同元组绝不共享缓存结果
func (f *SearchFilters) CacheKey() string {
	category := ""
	if f.Category != nil {
		category = strconv.Itoa(*f.Category)
	}
	return fmt.Sprintf("sites|kw=%s|cat=%s|page=%d|limit=%d",
		strings.TrimSpace(f.Keyword), category, f.Page, f.Limit)
}

// PaginationInfo 上游返回的分页信息，客户端只读
type PaginationInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
