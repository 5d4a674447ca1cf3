package catalog

import (
	"context"
	"net/url"
	"strings"
	"time"

	"navsite-web/pkg/cache"
	"navsite-web/pkg/models"
	"navsite-web/pkg/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 缓存键，列表类数据带完整过滤元组（见 SearchFilters.CacheKey）
const (
	CategoriesCacheKey = "categories-with-count"
	PopularCacheKey    = "popular-sites"
	SitesCachePrefix   = "sites|"
)

// 默认staleness窗口
const (
	DefaultCategoriesTTL = 10 * time.Minute
	DefaultPopularTTL    = 5 * time.Minute
	DefaultListTTL       = time.Minute
)

// Upstream 协调器依赖的上游能力
type Upstream interface {
	ListSites(ctx context.Context, filters models.SearchFilters) ([]models.Site, *models.PaginationInfo, error)
	PopularSites(ctx context.Context) ([]models.Site, error)
	ListCategoriesWithCount(ctx context.Context) ([]models.Category, error)
	GetSite(ctx context.Context, id int) (*models.Site, error)
	IncrementClick(ctx context.Context, id int) error
}

// ClickSink 点击流旁路上报
type ClickSink interface {
	PublishClick(event *models.ClickEvent) error
}

// Options 协调器可调参数，零值使用默认
type Options struct {
	PageSize      int
	CategoriesTTL time.Duration
	PopularTTL    time.Duration
	ListTTL       time.Duration
}

// Coordinator 搜索/过滤/分页协调器
// 负责从URL参数推导当前查询条件，决定浏览/搜索两种模式中哪个数据源生效，
// 并通过带staleness的键值缓存访问上游
type Coordinator struct {
	upstream Upstream
	cache    *cache.Cache
	sink     ClickSink // 可为nil

	pageSize      int
	categoriesTTL time.Duration
	popularTTL    time.Duration
	listTTL       time.Duration
}

func NewCoordinator(upstream Upstream, store *cache.Cache, sink ClickSink, opts Options) *Coordinator {
	c := &Coordinator{
		upstream:      upstream,
		cache:         store,
		sink:          sink,
		pageSize:      opts.PageSize,
		categoriesTTL: opts.CategoriesTTL,
		popularTTL:    opts.PopularTTL,
		listTTL:       opts.ListTTL,
	}
	if c.pageSize <= 0 {
		c.pageSize = models.DefaultPageSize
	}
	if c.categoriesTTL <= 0 {
		c.categoriesTTL = DefaultCategoriesTTL
	}
	if c.popularTTL <= 0 {
		c.popularTTL = DefaultPopularTTL
	}
	if c.listTTL <= 0 {
		c.listTTL = DefaultListTTL
	}
	return c
}

// DeriveFilters 从URL参数推导查询条件，导航变化后page总是回到1
// category解析失败视为未传，不报错
func (c *Coordinator) DeriveFilters(query url.Values) models.SearchFilters {
	filters := models.SearchFilters{
		Page:  1,
		Limit: c.pageSize,
	}
	filters.Keyword = query.Get("search")
	if id, ok := util.ParseIntParam(query.Get("category")); ok {
		filters.Category = &id
	}
	return filters
}

// FilterChange 查询条件的增量修改
type FilterChange struct {
	Keyword       *string // nil表示不改
	Category      *int    // nil且ClearCategory=false表示不改
	ClearCategory bool    // 清空分类过滤
}

// ApplyFilterChange 合并增量修改，keyword/category任何变化都把page重置为1，
// 结果集身份变了，旧的页码位置没有意义
func (c *Coordinator) ApplyFilterChange(filters models.SearchFilters, change FilterChange) models.SearchFilters {
	next := filters
	if change.Keyword != nil {
		next.Keyword = *change.Keyword
	}
	if change.ClearCategory {
		next.Category = nil
	} else if change.Category != nil {
		id := *change.Category
		next.Category = &id
	}
	next.Page = 1
	return next
}

// ApplyPageChange 只改页码，不碰keyword/category
// 已知总页数时，越界页码拒绝处理，返回原状态和false
func (c *Coordinator) ApplyPageChange(filters models.SearchFilters, page, totalPages int) (models.SearchFilters, bool) {
	if page < 1 {
		return filters, false
	}
	if totalPages > 0 && page > totalPages {
		return filters, false
	}
	next := filters
	next.Page = page
	return next, true
}

// ShowSearchResults 是否处于搜索模式：关键词非空或选中了分类
func (c *Coordinator) ShowSearchResults(filters models.SearchFilters) bool {
	return filters.HasKeyword() || filters.Category != nil
}

// View 按当前查询条件组装目录页视图
// 搜索模式拉取分页列表（按完整过滤元组缓存），浏览模式拉取热门列表；
// 两种模式互斥，各自有独立的缓存键和staleness窗口。
// 列表拉取失败是终态错误；分类/热门失败降级为空，不阻塞页面
func (c *Coordinator) View(ctx context.Context, filters models.SearchFilters) (*CatalogView, error) {
	searchMode := c.ShowSearchResults(filters)

	var (
		categories []models.Category
		sites      []models.Site
		pagination *models.PaginationInfo
	)

	g, gctx := errgroup.WithContext(ctx)

	// 分类一次会话只拉一次，与过滤条件无关
	g.Go(func() error {
		result, _, err := c.cache.GetOrFetch(gctx, CategoriesCacheKey, c.categoriesTTL, func(ctx context.Context) (interface{}, error) {
			return c.upstream.ListCategoriesWithCount(ctx)
		})
		if err != nil {
			zap.S().Warnf("分类加载失败，降级为空: %s", err.Error())
			return nil
		}
		categories = result.([]models.Category)
		return nil
	})

	if searchMode {
		g.Go(func() error {
			result, _, err := c.cache.GetOrFetch(gctx, filters.CacheKey(), c.listTTL, func(ctx context.Context) (interface{}, error) {
				list, page, err := c.upstream.ListSites(ctx, filters)
				if err != nil {
					return nil, err
				}
				return &listResult{Sites: list, Pagination: page}, nil
			})
			if err != nil {
				return err
			}
			lr := result.(*listResult)
			sites = lr.Sites
			pagination = lr.Pagination
			return nil
		})
	} else {
		g.Go(func() error {
			result, _, err := c.cache.GetOrFetch(gctx, PopularCacheKey, c.popularTTL, func(ctx context.Context) (interface{}, error) {
				return c.upstream.PopularSites(ctx)
			})
			if err != nil {
				zap.S().Warnf("热门网站加载失败，降级为空: %s", err.Error())
				return nil
			}
			sites = result.([]models.Site)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &CatalogView{
		Mode:       ModeBrowse,
		ShowHero:   !searchMode,
		Filters:    filters,
		Categories: buildCategoryChips(categories, filters.Category),
		Sites:      buildSiteCards(sites),
	}
	if searchMode {
		view.Mode = ModeSearch
		view.Pagination = pagination
		if pagination != nil {
			view.Total = pagination.Total
			view.Pager = BuildPager(pagination.Page, pagination.TotalPages, DefaultMaxVisible)
		}
		if len(sites) == 0 {
			view.Empty = searchEmptyState()
		}
	} else if len(sites) == 0 {
		view.Empty = browseEmptyState()
	}
	return view, nil
}

type listResult struct {
	Sites      []models.Site
	Pagination *models.PaginationInfo
}

// ClickMeta 点击请求携带的元信息
type ClickMeta struct {
	Referrer  string
	UserAgent string
}

// TrackClick 记录一次点击并返回跳转地址
// 计数和点击流上报都是尽力而为，失败不挡用户打开链接；
// 只有网站本身查不到时才返回错误
func (c *Coordinator) TrackClick(ctx context.Context, siteID int, meta ClickMeta) (string, error) {
	site, err := c.upstream.GetSite(ctx, siteID)
	if err != nil {
		return "", err
	}

	if err := c.upstream.IncrementClick(ctx, siteID); err != nil {
		zap.S().Warnf("点击计数失败 siteId=%d: %s", siteID, err.Error())
	}

	if c.sink != nil {
		event := &models.ClickEvent{
			SiteId:    site.Id,
			Url:       site.Url,
			Title:     site.Title,
			Referrer:  strings.TrimSpace(meta.Referrer),
			UserAgent: strings.TrimSpace(meta.UserAgent),
			ClickedAt: time.Now(),
		}
		if err := c.sink.PublishClick(event); err != nil {
			zap.S().Debugf("点击流上报失败 siteId=%d: %s", siteID, err.Error())
		}
	}
	return site.Url, nil
}
