package models

// Site 收录的网站
type Site struct {
	Id           int      `json:"id"`                      // 网站ID
	Title        string   `json:"title"`                   // 网站标题
	Url          string   `json:"url"`                     // 网站地址
	Description  string   `json:"description,omitempty"`   // 网站描述
	FaviconUrl   string   `json:"favicon_url,omitempty"`   // 自定义favicon
	CategoryId   *int     `json:"category_id,omitempty"`   // 所属分类ID
	CategoryName string   `json:"category_name,omitempty"` // 分类名称（冗余字段，仅展示用）
	Tags         []string `json:"tags"`                    // 标签，保持插入顺序
	ClickCount   int64    `json:"click_count"`             // 点击量
	Status       int      `json:"status"`                  // 状态
	CreatedAt    string   `json:"created_at"`              // 创建时间
	UpdatedAt    string   `json:"updated_at"`              // 更新时间
}

// CreateSiteInput 创建网站请求
type CreateSiteInput struct {
	Title       string   `json:"title"`
	Url         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	CategoryId  *int     `json:"category_id,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateSiteInput 更新网站请求，空字段不更新
type UpdateSiteInput struct {
	Title       *string  `json:"title,omitempty"`
	Url         *string  `json:"url,omitempty"`
	Description *string  `json:"description,omitempty"`
	CategoryId  *int     `json:"category_id,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Status      *int     `json:"status,omitempty"`
}
