package dashboard

import (
	"pharmadmin/internal/fetcher"
	"pharmadmin/internal/middleware"
	"pharmadmin/pkg/flash"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置管理台路由
func SetupRouter(api *fetcher.Client, notices *flash.Store) *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "web/static")

	handler := NewHandler(api, notices)
	registerRoutes(router, handler)
	return router
}

// 注册所有页面路由
func registerRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/", handler.RoleSelection)

	roles := router.Group("/roles/:role")
	{
		roles.GET("", handler.TablesList)

		tables := roles.Group("/tables/:table")
		{
			tables.GET("", handler.TableView)
			tables.GET("/new", handler.CreateForm)
			tables.POST("/create", handler.Create)
			// 复合主键的标识可能带路径分隔符，用通配段接住
			tables.GET("/edit/*id", handler.EditForm)
			tables.POST("/update/*id", handler.Update)
			tables.POST("/delete/*id", handler.Delete)
		}
	}

	router.GET("/reports", handler.ReportsPanel)
	router.GET("/reports/:card", handler.RunReport)
}
