package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"navsite-web/pkg/cache"
	"navsite-web/pkg/catalog"
	"navsite-web/pkg/favicon"
	"navsite-web/pkg/models"

	"github.com/samber/lo"
)

// AdminPageSize 管理后台网站表格每页大小
const AdminPageSize = 10

// 管理后台缓存键
const (
	SitesCachePrefix   = "admin-sites|"
	CategoriesCacheKey = "admin-categories"
)

const adminListTTL = time.Minute

// Upstream 管理后台依赖的上游能力
type Upstream interface {
	ListSites(ctx context.Context, filters models.SearchFilters) ([]models.Site, *models.PaginationInfo, error)
	PopularSites(ctx context.Context) ([]models.Site, error)
	ListCategoriesWithCount(ctx context.Context) ([]models.Category, error)
	CreateSite(ctx context.Context, input models.CreateSiteInput) (*models.Site, error)
	UpdateSite(ctx context.Context, id int, input models.UpdateSiteInput) (*models.Site, error)
	DeleteSite(ctx context.Context, id int) error
	CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, input models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

// Service 管理后台服务：网站/分类CRUD代理、本地过滤、统计总览
// 写操作成功后只失效受影响的缓存键，失败时缓存保持原样
type Service struct {
	upstream Upstream
	cache    *cache.Cache
}

func NewService(upstream Upstream, store *cache.Cache) *Service {
	return &Service{upstream: upstream, cache: store}
}

// SiteRow 网站表格行视图模型
type SiteRow struct {
	Id           int    `json:"id"`
	Title        string `json:"title"`
	Url          string `json:"url"`
	Description  string `json:"description,omitempty"`
	FaviconUrl   string `json:"faviconUrl"`
	CategoryName string `json:"categoryName,omitempty"`
	ClickCount   int64  `json:"clickCount"`
	CreatedAt    string `json:"createdAt"`
}

// SitesView 网站管理表格视图模型
// 本地过滤生效时分页控件隐藏，过滤视图始终是单页列表
type SitesView struct {
	Sites         []SiteRow              `json:"sites"`
	Pagination    *models.PaginationInfo `json:"pagination,omitempty"`
	Pager         *catalog.Pager         `json:"pager,omitempty"`
	FilterQuery   string                 `json:"filterQuery,omitempty"`
	FilterActive  bool                   `json:"filterActive"`
	FilteredCount int                    `json:"filteredCount"`
}

// Sites 取某一页网站，query非空时在已取回的这一页上做本地过滤，不重新请求上游
func (s *Service) Sites(ctx context.Context, page int, query string) (*SitesView, error) {
	if page < 1 {
		page = 1
	}
	filters := models.SearchFilters{Page: page, Limit: AdminPageSize}
	key := fmt.Sprintf("%spage=%d", SitesCachePrefix, page)

	result, _, err := s.cache.GetOrFetch(ctx, key, adminListTTL, func(ctx context.Context) (interface{}, error) {
		sites, pagination, err := s.upstream.ListSites(ctx, filters)
		if err != nil {
			return nil, err
		}
		return &sitesPage{Sites: sites, Pagination: pagination}, nil
	})
	if err != nil {
		return nil, err
	}
	sp := result.(*sitesPage)

	sites := FilterLocal(sp.Sites, query)
	view := &SitesView{
		Sites:         buildSiteRows(sites),
		FilterQuery:   strings.TrimSpace(query),
		FilterActive:  strings.TrimSpace(query) != "",
		FilteredCount: len(sites),
	}
	if !view.FilterActive && sp.Pagination != nil {
		view.Pagination = sp.Pagination
		view.Pager = catalog.BuildPager(sp.Pagination.Page, sp.Pagination.TotalPages, catalog.DefaultMaxVisible)
	}
	return view, nil
}

type sitesPage struct {
	Sites      []models.Site
	Pagination *models.PaginationInfo
}

// FilterLocal 对已取回的单页网站做大小写不敏感的子串过滤
// 匹配标题、描述、URL和分类名
func FilterLocal(sites []models.Site, query string) []models.Site {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return sites
	}
	return lo.Filter(sites, func(site models.Site, _ int) bool {
		return strings.Contains(strings.ToLower(site.Title), query) ||
			strings.Contains(strings.ToLower(site.Description), query) ||
			strings.Contains(strings.ToLower(site.Url), query) ||
			strings.Contains(strings.ToLower(site.CategoryName), query)
	})
}

func buildSiteRows(sites []models.Site) []SiteRow {
	rows := make([]SiteRow, 0, len(sites))
	for _, site := range sites {
		rows = append(rows, SiteRow{
			Id:           site.Id,
			Title:        site.Title,
			Url:          site.Url,
			Description:  site.Description,
			FaviconUrl:   favicon.Resolve(site.Url, site.FaviconUrl, favicon.DefaultSize),
			CategoryName: site.CategoryName,
			ClickCount:   site.ClickCount,
			CreatedAt:    site.CreatedAt,
		})
	}
	return rows
}

// CategoryRow 分类表格行视图模型
type CategoryRow struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	SortOrder int    `json:"sortOrder"`
	SiteCount int    `json:"siteCount"`
	Deletable bool   `json:"deletable"` // 分类下还有网站时禁用删除
}

// Categories 分类管理表格
func (s *Service) Categories(ctx context.Context) ([]CategoryRow, error) {
	result, _, err := s.cache.GetOrFetch(ctx, CategoriesCacheKey, adminListTTL, func(ctx context.Context) (interface{}, error) {
		return s.upstream.ListCategoriesWithCount(ctx)
	})
	if err != nil {
		return nil, err
	}
	categories := result.([]models.Category)

	rows := make([]CategoryRow, 0, len(categories))
	for i := range categories {
		category := categories[i]
		row := CategoryRow{
			Id:        category.Id,
			Name:      category.Name,
			Icon:      category.Icon,
			SortOrder: category.SortOrder,
			Deletable: category.Deletable(),
		}
		if category.SiteCount != nil {
			row.SiteCount = *category.SiteCount
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CreateSite 新增网站，成功后失效网站相关缓存
func (s *Service) CreateSite(ctx context.Context, input models.CreateSiteInput) (*models.Site, error) {
	site, err := s.upstream.CreateSite(ctx, input)
	if err != nil {
		return nil, err
	}
	s.invalidateSites()
	return site, nil
}

// UpdateSite 更新网站
func (s *Service) UpdateSite(ctx context.Context, id int, input models.UpdateSiteInput) (*models.Site, error) {
	site, err := s.upstream.UpdateSite(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.invalidateSites()
	return site, nil
}

// DeleteSite 删除网站
func (s *Service) DeleteSite(ctx context.Context, id int) error {
	if err := s.upstream.DeleteSite(ctx, id); err != nil {
		return err
	}
	s.invalidateSites()
	return nil
}

// CreateCategory 新增分类
func (s *Service) CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	category, err := s.upstream.CreateCategory(ctx, input)
	if err != nil {
		return nil, err
	}
	s.invalidateCategories()
	return category, nil
}

// UpdateCategory 更新分类
func (s *Service) UpdateCategory(ctx context.Context, id int, input models.CategoryInput) (*models.Category, error) {
	category, err := s.upstream.UpdateCategory(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.invalidateCategories()
	return category, nil
}

// DeleteCategory 删除分类，分类下还有网站时本地直接拒绝，不打上游
func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	rows, err := s.Categories(ctx)
	if err == nil {
		for _, row := range rows {
			if row.Id == id && !row.Deletable {
				return fmt.Errorf("分类下还有 %d 个网站，不能删除", row.SiteCount)
			}
		}
	}
	if err := s.upstream.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidateCategories()
	return nil
}

// AnalyticsView 数据统计总览
type AnalyticsView struct {
	TotalSites      int64         `json:"totalSites"`
	TotalCategories int           `json:"totalCategories"`
	TotalClicks     int64         `json:"totalClicks"`
	AvgClicks       int64         `json:"avgClicks"`
	PopularSites    []SiteRow     `json:"popularSites"`
	RecentSites     []SiteRow     `json:"recentSites"`
	Categories      []CategoryRow `json:"categories"`
}

// Analytics 聚合热门/分类/最新数据生成统计总览
// 热门列表和目录页共用缓存键，staleness窗口内不重复请求
func (s *Service) Analytics(ctx context.Context) (*AnalyticsView, error) {
	result, _, err := s.cache.GetOrFetch(ctx, catalog.PopularCacheKey, catalog.DefaultPopularTTL, func(ctx context.Context) (interface{}, error) {
		return s.upstream.PopularSites(ctx)
	})
	if err != nil {
		return nil, err
	}
	popular := result.([]models.Site)
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	recent, pagination, err := s.upstream.ListSites(ctx, models.SearchFilters{Page: 1, Limit: 5})
	if err != nil {
		return nil, err
	}

	totalClicks := lo.SumBy(popular, func(site models.Site) int64 { return site.ClickCount })
	view := &AnalyticsView{
		TotalCategories: len(categories),
		TotalClicks:     totalClicks,
		PopularSites:    buildSiteRows(popular),
		RecentSites:     buildSiteRows(recent),
		Categories:      categories,
	}
	if pagination != nil {
		view.TotalSites = pagination.Total
	}
	if len(popular) > 0 {
		view.AvgClicks = totalClicks / int64(len(popular))
	}
	return view, nil
}

func (s *Service) invalidateSites() {
	s.cache.InvalidatePrefix(SitesCachePrefix)
	s.cache.InvalidatePrefix(catalog.SitesCachePrefix)
	s.cache.Invalidate(catalog.PopularCacheKey)
}

func (s *Service) invalidateCategories() {
	s.cache.Invalidate(CategoriesCacheKey, catalog.CategoriesCacheKey)
}
