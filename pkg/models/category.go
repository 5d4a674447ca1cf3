package models

// Category 网站分类
type Category struct {
	Id        int    `json:"id"`                   // 分类ID
	Name      string `json:"name"`                 // 分类名称
	Icon      string `json:"icon,omitempty"`       // 图标（emoji或字符）
	SortOrder int    `json:"sort_order"`           // 排序，升序展示
	SiteCount *int   `json:"site_count,omitempty"` // 网站数量，仅with-count接口返回
}

// CategoryInput 创建/更新分类请求
type CategoryInput struct {
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	SortOrder int    `json:"sort_order"`
}

// Deletable 是否允许删除，分类下还有网站时前端禁用删除按钮
func (c *Category) Deletable() bool {
	return c.SiteCount == nil || *c.SiteCount == 0
}
