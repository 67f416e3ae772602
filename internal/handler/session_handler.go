package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/auth"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/flow"
)

type SessionResponse struct {
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	View  PageResponse `json:"view"`
}

// StartSession godoc
// @Summary      세션 시작 (StartSession)
// @Description  새 세션을 만들고 세션 토큰을 발급합니다. 최초 상태는 로그인 페이지입니다.
// @Tags         Session
// @Produce      json
// @Success      200 {object} handler.SessionResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /session [post]
func (h *Handler) StartSession(c *gin.Context) {
	sess := h.registry.Create()

	tokenString, err := auth.GenerateToken(sess.ID)
	if err != nil {
		h.registry.Delete(sess.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Token: tokenString,
		View:  pageResponse(flow.NewState(), flow.Outcome{}),
	})
}

// EndSession godoc
// @Summary      세션 종료 (EndSession)
// @Description  세션과 세션 상태를 파기합니다.
// @Tags         Session
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/session [delete]
func (h *Handler) EndSession(c *gin.Context) {
	sess := sessionFrom(c)
	h.registry.Delete(sess.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
}

type SuccessResponse struct {
	Message string `json:"message" example:"Session ended"`
}
