package catalog

import (
	"navsite-web/pkg/favicon"
	"navsite-web/pkg/models"
	"navsite-web/pkg/util"
)

// 展示模式
const (
	ModeBrowse = "browse" // 首页热门网站
	ModeSearch = "search" // 搜索/分类过滤结果
)

// 空态，两种文案不能混用
const (
	EmptyKindNoResults = "no-results" // 搜索无结果
	EmptyKindNoData    = "no-data"    // 首页暂无数据
)

const maxDisplayTags = 3

// SiteCard 网站卡片视图模型
type SiteCard struct {
	Id           int      `json:"id"`
	Title        string   `json:"title"`
	Url          string   `json:"url"`
	Description  string   `json:"description,omitempty"`
	CategoryName string   `json:"categoryName,omitempty"`
	FaviconUrl   string   `json:"faviconUrl"`
	Tags         []string `json:"tags"`               // 最多展示3个
	MoreTags     int      `json:"moreTags,omitempty"` // 未展示的标签数
	ClickCount   int64    `json:"clickCount"`
	CreatedDate  string   `json:"createdDate"`
}

// CategoryChip 分类筛选项视图模型
type CategoryChip struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	SiteCount *int   `json:"siteCount,omitempty"`
	Selected  bool   `json:"selected"`
}

// EmptyState 空态视图模型
type EmptyState struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Hint  string `json:"hint,omitempty"`
}

// CatalogView 目录页完整视图模型
type CatalogView struct {
	Mode       string                 `json:"mode"`
	ShowHero   bool                   `json:"showHero"` // 仅浏览模式展示hero区
	Filters    models.SearchFilters   `json:"filters"`
	Categories []CategoryChip         `json:"categories"`
	Sites      []SiteCard             `json:"sites"`
	Total      int64                  `json:"total,omitempty"` // 搜索模式下的结果总数
	Pagination *models.PaginationInfo `json:"pagination,omitempty"`
	Pager      *Pager                 `json:"pager,omitempty"`
	Empty      *EmptyState            `json:"empty,omitempty"`
}

func buildSiteCard(site models.Site) SiteCard {
	card := SiteCard{
		Id:           site.Id,
		Title:        site.Title,
		Url:          site.Url,
		Description:  site.Description,
		CategoryName: site.CategoryName,
		FaviconUrl:   favicon.Resolve(site.Url, site.FaviconUrl, favicon.DefaultSize),
		Tags:         site.Tags,
		ClickCount:   site.ClickCount,
		CreatedDate:  util.FormatSiteDate(site.CreatedAt),
	}
	if len(card.Tags) > maxDisplayTags {
		card.MoreTags = len(card.Tags) - maxDisplayTags
		card.Tags = card.Tags[:maxDisplayTags]
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}
	return card
}

func buildSiteCards(sites []models.Site) []SiteCard {
	cards := make([]SiteCard, 0, len(sites))
	for _, site := range sites {
		cards = append(cards, buildSiteCard(site))
	}
	return cards
}

func buildCategoryChips(categories []models.Category, selected *int) []CategoryChip {
	chips := make([]CategoryChip, 0, len(categories))
	for _, category := range categories {
		chips = append(chips, CategoryChip{
			Id:        category.Id,
			Name:      category.Name,
			Icon:      category.Icon,
			SiteCount: category.SiteCount,
			Selected:  selected != nil && *selected == category.Id,
		})
	}
	return chips
}

func searchEmptyState() *EmptyState {
	return &EmptyState{
		Kind:  EmptyKindNoResults,
		Title: "没有找到相关结果",
		Hint:  "尝试调整搜索条件或浏览其他分类",
	}
}

func browseEmptyState() *EmptyState {
	return &EmptyState{
		Kind:  EmptyKindNoData,
		Title: "暂无网站数据",
	}
}
