package models

import "time"

// ClickEvent 点击流事件，发往NATS做旁路统计，尽力而为
type ClickEvent struct {
	SiteId    int       `json:"siteId"`              // 网站ID
	Url       string    `json:"url"`                 // 跳转地址
	Title     string    `json:"title,omitempty"`     // 网站标题
	Referrer  string    `json:"referrer,omitempty"`  // 来源页
	UserAgent string    `json:"userAgent,omitempty"` // UA
	ClickedAt time.Time `json:"clickedAt"`           // 点击时间
}
