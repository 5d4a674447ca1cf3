package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"navsite-web/pkg/models"

	"github.com/pkg/errors"
)

// FallbackErrMessage 上游没有给出错误信息时的兜底文案
const FallbackErrMessage = "请求失败"

// Client 上游接口客户端，所有网站/分类数据的唯一来源
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *Config) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do 发起请求并解出统一响应信封
// 非2xx或success=false都转为error，错误信息优先用上游返回的error字段
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*models.ApiResponse, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "请求体序列化失败")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "构建请求失败")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "请求上游失败 [%s %s]", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "读取响应失败")
	}

	var envelope models.ApiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if resp.StatusCode >= 300 {
			return nil, errors.Errorf("%s [HTTP %d]", FallbackErrMessage, resp.StatusCode)
		}
		return nil, errors.Wrap(err, "响应解析失败")
	}

	if resp.StatusCode >= 300 || !envelope.Success {
		message := envelope.Error
		if message == "" {
			message = FallbackErrMessage
		}
		return nil, fmt.Errorf("%s", message)
	}
	return &envelope, nil
}

// decode 解出信封中的data字段
func decode(envelope *models.ApiResponse, out interface{}) error {
	if len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.Wrap(err, "响应数据解析失败")
	}
	return nil
}

// Health 探测上游存活接口
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "上游不可达")
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		return errors.Errorf("上游health返回 HTTP %d", resp.StatusCode)
	}
	return nil
}
