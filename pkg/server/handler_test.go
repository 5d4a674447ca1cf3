package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"navsite-web/pkg/cache"
	"navsite-web/pkg/catalog"
	"navsite-web/pkg/models"

	"github.com/gin-gonic/gin"
)

type fakeUpstream struct {
	listSitesFn func(ctx context.Context, filters models.SearchFilters) ([]models.Site, *models.PaginationInfo, error)
	getSiteFn   func(ctx context.Context, id int) (*models.Site, error)

	listSitesCalls []models.SearchFilters
}

func (f *fakeUpstream) ListSites(ctx context.Context, filters models.SearchFilters) ([]models.Site, *models.PaginationInfo, error) {
	f.listSitesCalls = append(f.listSitesCalls, filters)
	if f.listSitesFn != nil {
		return f.listSitesFn(ctx, filters)
	}
	return nil, &models.PaginationInfo{Page: filters.Page, Limit: filters.Limit}, nil
}

func (f *fakeUpstream) PopularSites(ctx context.Context) ([]models.Site, error) {
	return nil, nil
}

func (f *fakeUpstream) ListCategoriesWithCount(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}

func (f *fakeUpstream) GetSite(ctx context.Context, id int) (*models.Site, error) {
	if f.getSiteFn != nil {
		return f.getSiteFn(ctx, id)
	}
	return nil, errors.New("网站不存在")
}

func (f *fakeUpstream) IncrementClick(ctx context.Context, id int) error { return nil }

func newTestEngine(upstream *fakeUpstream) *gin.Engine {
	gin.SetMode(gin.TestMode)
	coordinator := catalog.NewCoordinator(upstream, cache.New(), nil, catalog.Options{})
	handler := NewHandler(NewDefaultConfig(), nil, coordinator, nil)
	engine := gin.New()
	InitRouter(engine, handler)
	return engine
}

func doRequest(engine *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	engine.ServeHTTP(w, req)
	return w
}

// page参数要走越界校验再进过滤条件
func TestHomeViewPageParam(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPage int
	}{
		{name: "valid page", target: "/view/home?search=tools&page=3", wantPage: 3},
		{name: "malformed page falls back to 1", target: "/view/home?search=tools&page=abc", wantPage: 1},
		{name: "page zero rejected", target: "/view/home?search=tools&page=0", wantPage: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := &fakeUpstream{}
			engine := newTestEngine(upstream)

			w := doRequest(engine, http.MethodGet, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}
			if len(upstream.listSitesCalls) != 1 {
				t.Fatalf("应发起1次列表请求, got %d", len(upstream.listSitesCalls))
			}
			issued := upstream.listSitesCalls[0]
			if issued.Keyword != "tools" || issued.Page != tt.wantPage {
				t.Errorf("列表请求参数不对: %+v, want page=%d", issued, tt.wantPage)
			}
		})
	}
}

func TestHomeViewUpstreamError(t *testing.T) {
	upstream := &fakeUpstream{
		listSitesFn: func(ctx context.Context, filters models.SearchFilters) ([]models.Site, *models.PaginationInfo, error) {
			return nil, nil, errors.New("连接超时")
		},
	}
	engine := newTestEngine(upstream)

	w := doRequest(engine, http.MethodGet, "/view/home?search=tools")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if resp.Message != "加载失败，请稍后重试" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestSiteClick(t *testing.T) {
	upstream := &fakeUpstream{
		getSiteFn: func(ctx context.Context, id int) (*models.Site, error) {
			if id != 9 {
				return nil, errors.New("网站不存在")
			}
			return &models.Site{Id: 9, Title: "示例", Url: "https://example.com"}, nil
		},
	}
	engine := newTestEngine(upstream)

	w := doRequest(engine, http.MethodPost, "/view/sites/9/click")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data ClickResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if resp.Data.Url != "https://example.com" {
		t.Errorf("url = %q", resp.Data.Url)
	}

	// 非数字id和未知网站都是404
	if w := doRequest(engine, http.MethodPost, "/view/sites/abc/click"); w.Code != http.StatusNotFound {
		t.Errorf("非数字id: status = %d, want 404", w.Code)
	}
	if w := doRequest(engine, http.MethodPost, "/view/sites/404/click"); w.Code != http.StatusNotFound {
		t.Errorf("未知网站: status = %d, want 404", w.Code)
	}
}
