package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/middleware"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/session"
)

// 라우터 구성. main과 핸들러 테스트가 같은 배선을 쓰게 분리함
func Routes(h *Handler, registry *session.Registry) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	router.Use(cors.New(config))

	router.POST("/session", middleware.RateLimitMiddleware(), h.StartSession)

	protected := router.Group("/api").Use(middleware.SessionMiddleware(registry))
	{
		protected.GET("/page", h.CurrentPage)
		protected.POST("/login", middleware.RateLimitMiddleware(), h.Login)
		protected.POST("/login/choose", h.ChooseLogin)
		protected.POST("/register", h.Register)
		protected.POST("/register/choose", h.ChooseRegister)
		protected.POST("/input", h.SubmitIntake)
		protected.POST("/admin", h.Admin)
		protected.GET("/history", h.History)
		protected.DELETE("/session", h.EndSession)
	}

	return router
}
