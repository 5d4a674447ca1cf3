package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ViewHandler 定义视图处理器接口
type ViewHandler interface {
	HomeView(c *gin.Context)
	SiteClick(c *gin.Context)
	AdminSites(c *gin.Context)
	AdminCreateSite(c *gin.Context)
	AdminUpdateSite(c *gin.Context)
	AdminDeleteSite(c *gin.Context)
	AdminCategories(c *gin.Context)
	AdminCreateCategory(c *gin.Context)
	AdminUpdateCategory(c *gin.Context)
	AdminDeleteCategory(c *gin.Context)
	AdminAnalytics(c *gin.Context)
	Health(c *gin.Context)
}

// InitRouter 初始化路由配置
func InitRouter(engine *gin.Engine, handler ViewHandler) *gin.RouterGroup {
	viewGroup := engine.Group("/view")
	if handler != nil {
		viewGroup.GET("/home", handler.HomeView)
		viewGroup.POST("/sites/:id/click", handler.SiteClick)

		adminGroup := viewGroup.Group("/admin")
		{
			adminGroup.GET("/sites", handler.AdminSites)
			adminGroup.POST("/sites", handler.AdminCreateSite)
			adminGroup.PUT("/sites/:id", handler.AdminUpdateSite)
			adminGroup.DELETE("/sites/:id", handler.AdminDeleteSite)
			adminGroup.GET("/categories", handler.AdminCategories)
			adminGroup.POST("/categories", handler.AdminCreateCategory)
			adminGroup.PUT("/categories/:id", handler.AdminUpdateCategory)
			adminGroup.DELETE("/categories/:id", handler.AdminDeleteCategory)
			adminGroup.GET("/analytics", handler.AdminAnalytics)
		}
		engine.GET("/healthz", handler.Health)
		zap.S().Info("路由注册成功: /view /healthz")
	} else {
		zap.S().Warn("Handler为nil，路由未注册")
	}

	return viewGroup
}
