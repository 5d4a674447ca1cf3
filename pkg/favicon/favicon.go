package favicon

import (
	"fmt"
	"net/url"
)

// DefaultFavicon 内嵌的占位图标，URL解析失败或图标加载失败时使用
const DefaultFavicon = "data:image/svg+xml," +
	"%3Csvg%20xmlns%3D%22http%3A%2F%2Fwww.w3.org%2F2000%2Fsvg%22%20width%3D%2232%22%20height%3D%2232%22%20viewBox%3D%220%200%2032%2032%22%3E" +
	"%3Crect%20width%3D%2232%22%20height%3D%2232%22%20rx%3D%224%22%20fill%3D%22%23f3f4f6%22%2F%3E" +
	"%3Cpath%20d%3D%22M8%208h16v16H8z%22%20fill%3D%22%23d1d5db%22%2F%3E" +
	"%3Ccircle%20cx%3D%2216%22%20cy%3D%2216%22%20r%3D%224%22%20fill%3D%22%239ca3af%22%2F%3E" +
	"%3C%2Fsvg%3E"

const DefaultSize = 32

// Resolve 取网站favicon地址
// 有自定义favicon时直接用；否则取URL的host拼第三方favicon服务；
// URL解析失败时退回内嵌占位图标，绝不报错
func Resolve(siteURL, override string, size int) string {
	if override != "" {
		return override
	}
	if size <= 0 {
		size = DefaultSize
	}
	parsed, err := url.Parse(siteURL)
	if err != nil || parsed.Hostname() == "" {
		return DefaultFavicon
	}
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=%d", parsed.Hostname(), size)
}

// ImageState 图标加载状态机，只降级一次：Loading → Resolved | Fallback
type ImageState struct {
	src      string
	resolved bool
	fallback bool
}

// NewImageState 初始为Loading态，src为解析出的图标地址
func NewImageState(src string) *ImageState {
	return &ImageState{src: src}
}

// Src 当前应展示的图标地址
func (s *ImageState) Src() string {
	if s.fallback {
		return DefaultFavicon
	}
	return s.src
}

// OnLoad 图标加载成功
func (s *ImageState) OnLoad() {
	if !s.fallback {
		s.resolved = true
	}
}

// OnError 图标加载失败，降级到占位图标
// 已经是占位图标时不再有后续动作
func (s *ImageState) OnError() {
	s.resolved = false
	s.fallback = true
}

// Fallback 是否已降级
func (s *ImageState) Fallback() bool {
	return s.fallback
}
