package server

import (
	"context"
	"net/http"
	"time"

	"navsite-web/pkg/admin"
	"navsite-web/pkg/api"
	"navsite-web/pkg/catalog"
	"navsite-web/pkg/models"
	"navsite-web/pkg/util"

	"github.com/gin-gonic/gin"
)

// Handler 视图处理器，把URL状态交给协调器，把视图模型交给前端
type Handler struct {
	cfg         *Config
	upstream    *api.Client
	coordinator *catalog.Coordinator
	adminSvc    *admin.Service
}

func NewHandler(cfg *Config, upstream *api.Client, coordinator *catalog.Coordinator, adminSvc *admin.Service) *Handler {
	return &Handler{
		cfg:         cfg,
		upstream:    upstream,
		coordinator: coordinator,
		adminSvc:    adminSvc,
	}
}

// HomeView 目录页视图
// @Summary      目录页视图
// @Description  按search/category/page返回浏览或搜索模式的视图模型
// @Produce      json
// @Param        search    query  string  false  "搜索关键词"
// @Param        category  query  int     false  "分类ID，非法值视为未传"
// @Param        page      query  int     false  "页码，从1开始"
// @Success      200  {object}  util.Response
// @Router       /view/home [get]
func (h *Handler) HomeView(c *gin.Context) {
	filters := h.coordinator.DeriveFilters(c.Request.URL.Query())
	// page越界由上游分页信息裁决，这里只做下界校验
	if page, ok := util.ParseIntParam(util.GetParam(c, "page")); ok {
		if next, valid := h.coordinator.ApplyPageChange(filters, page, 0); valid {
			filters = next
		}
	}

	view, err := h.coordinator.View(c.Request.Context(), filters)
	if err != nil {
		util.Err(c, gin.H{"error": "加载失败，请稍后重试", "code": http.StatusBadGateway})
		return
	}
	util.Ok(c, view)
}

// SiteClick 点击跳转：记点击数并返回外链地址
// 计数失败不影响跳转
func (h *Handler) SiteClick(c *gin.Context) {
	id, ok := util.ParseIntParam(c.Param("id"))
	if !ok {
		util.Err(c, gin.H{"error": "网站不存在", "code": http.StatusNotFound})
		return
	}
	target, err := h.coordinator.TrackClick(c.Request.Context(), id, catalog.ClickMeta{
		Referrer:  c.GetHeader("Referer"),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		util.Err(c, gin.H{"error": err.Error(), "code": http.StatusNotFound})
		return
	}
	util.Ok(c, ClickResult{Url: target})
}

// AdminSites 网站管理表格，q为本地过滤词，过滤时不重新请求上游
func (h *Handler) AdminSites(c *gin.Context) {
	page, _ := util.ParseIntParam(util.GetParam(c, "page"))
	view, err := h.adminSvc.Sites(c.Request.Context(), page, util.GetParam(c, "q"))
	if err != nil {
		util.Err(c, err)
		return
	}
	util.Ok(c, view)
}

// AdminCreateSite 新增网站
func (h *Handler) AdminCreateSite(c *gin.Context) {
	var input models.CreateSiteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.Err(c, gin.H{"error": "请求参数不合法", "code": http.StatusBadRequest})
		return
	}
	site, err := h.adminSvc.CreateSite(c.Request.Context(), input)
	if err != nil {
		util.Err(c, err)
		return
	}
	util.Ok(c, site)
}

// AdminUpdateSite 更新网站
func (h *Handler) AdminUpdateSite(c *gin.Context) {
	id, ok := util.ParseIntParam(c.Param("id"))
	if !ok {
		util.Err(c, gin.H{"error": "网站不存在", "code": http.StatusNotFound})
		return
	}
	var input models.UpdateSiteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.Err(c, gin.H{"error": "请求参数不合法", "code": http.StatusBadRequest})
		return
	}
	site, err := h.adminSvc.UpdateSite(c.Request.Context(), id, input)
	if err != nil {
		util.Err(c, err)
		return
	}
	util.Ok(c, site)
}

// AdminDeleteSite 删除网站
func (h *Handler) AdminDeleteSite(c *gin.Context) {
	id, ok := util.ParseIntParam(c.Param("id"))
	if !ok {
		util.Err(c, gin.H{"error": "网站不存在", "code": http.StatusNotFound})
		return
	}
	if err := h.adminSvc.DeleteSite(c.Request.Context(), id); err != nil {
		util.Err(c, err)
		return
	}
	util.Ok(c, models.DeleteResult{Deleted: true})
}

// AdminCategories 分类管理表格
func (h *Handler) AdminCategories(c *gin.Context) {
	rows, err := h.adminSvc.Categories(c.Request.Context())
	if err != nil {
		util.Err(c, err)
		return
	}
	util.Ok(c, rows)
}

// AdminCreateCategory 新增分类
func (h *Handler) AdminCreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.Err(c, gin.H{"error": "请求参数不合法", "code": http.StatusBadRequest})
		return
	}
	category, err := h.adminSvc.CreateCategory(c.Request.Context(), input)
	if err != nil {
		util.Err(c, err)
		return
	}
	util.Ok(c, category)
}

// AdminUpdateCategory 更新分类
func (h *Handler) AdminUpdateCategory(c *gin.Context) {
	id, ok := util.ParseIntParam(c.Param("id"))
	if !ok {
		util.Err(c, gin.H{"error": "分类不存在", "code": http.StatusNotFound})
		return
	}
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.Err(c, gin.H{"error": "请求参数不合法", "code": http.StatusBadRequest})
		return
	}
	category, err := h.adminSvc.UpdateCategory(c.Request.Context(), id, input)
	if err != nil {
		util.Err(c, err)
		return
	}
	util.Ok(c, category)
}

// AdminDeleteCategory 删除分类，分类下还有网站时拒绝
func (h *Handler) AdminDeleteCategory(c *gin.Context) {
	id, ok := util.ParseIntParam(c.Param("id"))
	if !ok {
		util.Err(c, gin.H{"error": "分类不存在", "code": http.StatusNotFound})
		return
	}
	if err := h.adminSvc.DeleteCategory(c.Request.Context(), id); err != nil {
		util.Err(c, gin.H{"error": err.Error(), "code": http.StatusBadRequest})
		return
	}
	util.Ok(c, models.DeleteResult{Deleted: true})
}

// AdminAnalytics 数据统计总览
func (h *Handler) AdminAnalytics(c *gin.Context) {
	view, err := h.adminSvc.Analytics(c.Request.Context())
	if err != nil {
		util.Err(c, err)
		return
	}
	util.Ok(c, view)
}

// Health 存活探针，顺带探测上游可达性
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := HealthStatus{
		Status:   "ok",
		Upstream: "ok",
		Version:  util.GetVersion().Version,
	}
	if err := h.upstream.Health(ctx); err != nil {
		status.Upstream = "unreachable"
	}
	util.Ok(c, status)
}
