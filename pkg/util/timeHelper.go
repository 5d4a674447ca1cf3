package util

import "time"

var SiteTimeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05 -07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSiteTime 解析上游返回的时间字符串，格式不认识时返回false
func ParseSiteTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range SiteTimeFormats {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatSiteDate 转为展示用日期，解析失败时原样返回
func FormatSiteDate(value string) string {
	if parsed, ok := ParseSiteTime(value); ok {
		return parsed.Format("2006-01-02")
	}
	return value
}
