package models

import "encoding/json"

// ApiResponse 上游接口统一响应信封
// success=false 时 data 为空，error 为可读的错误信息
type ApiResponse struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// DeleteResult 删除接口响应
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// IncrementResult 点击计数接口响应
type IncrementResult struct {
	Incremented bool `json:"incremented"`
}
