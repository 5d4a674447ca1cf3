package util

import (
	"unsafe"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

func IsValidPort[T int | int32 | uint | uint32 | uint64 | int64 | string](port T) error {
	p, err := cast.ToIntE(port)
	if err != nil {
		return errors.Wrap(err, "端口转换错误")
	}

	if p >= 0 && p < 65535 {
		return nil
	}
	return errors.Errorf("%d不是一个合格的[0-65535]端口", p)
}

func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// GetParam 从 Query 或 PostForm 获取参数（优先 Query）
func GetParam(c *gin.Context, key string) string {
	if val := c.Query(key); val != "" {
		return val
	}
	return c.PostForm(key)
}

// ParseIntParam 宽松解析整数参数，解析失败视为未传而不是报错
func ParseIntParam(val string) (int, bool) {
	if val == "" {
		return 0, false
	}
	n, err := cast.ToIntE(val)
	if err != nil {
		return 0, false
	}
	return n, true
}
