package leavehistory

import (
	"go-cuti/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	web *gin.RouterGroup,
	api *gin.RouterGroup,
	handler *Handler,
	jwtSecret string,
) {
	page := web.Group("/leaves")
	page.Use(middleware.IdentifyUserWith(jwtSecret, handler.RejectPage))
	{
		page.GET("/history", handler.Page)
	}

	history := api.Group("/leaves/history")
	history.Use(middleware.IdentifyUser(jwtSecret))
	{
		history.GET("", handler.GetHistory)
		history.GET("/export", middleware.RateLimitByUser(rate.Limit(1), 3), handler.Export)
	}
}
