package server

// ClickResult 点击接口响应，前端拿到url后打开外链
type ClickResult struct {
	Url string `json:"url"`
}

// HealthStatus 存活探针响应
type HealthStatus struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"` // ok / unreachable
	Version  string `json:"version"`
}
