package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// 클라이언트 IP 기준 요청 제한. 로그인/세션 생성 엔드포인트의
// 무차별 대입 시도를 늦추는 용도
func RateLimitMiddleware() gin.HandlerFunc {
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			// 초당 2회, 버스트 5회, 10분간 미사용 시 키 정리
			return rate.NewLimiter(rate.Every(500*time.Millisecond), 5), 10 * time.Minute
		},
		func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
		},
	)
}
