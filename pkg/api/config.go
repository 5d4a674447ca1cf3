package api

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Config 上游接口服务配置
type Config struct {
	BaseURL        string `json:"baseUrl" yaml:"baseUrl"`                                   // 上游基础地址，如 http://127.0.0.1:8080/api
	TimeoutSeconds int    `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"` // 单次请求超时
}

func NewDefaultConfig() *Config {
	return &Config{
		BaseURL:        "http://127.0.0.1:8080/api",
		TimeoutSeconds: 10,
	}
}

func (c *Config) Validate() []error {
	var errs = make([]error, 0)
	if strings.TrimSpace(c.BaseURL) == "" {
		errs = append(errs, errors.Errorf("没有配置上游接口地址"))
		return errs
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		errs = append(errs, errors.Wrap(err, "上游接口地址不合法"))
	}
	if c.TimeoutSeconds < 0 {
		errs = append(errs, errors.Errorf("超时时间不能为负数: %d", c.TimeoutSeconds))
	}
	return errs
}
