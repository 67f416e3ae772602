package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/flow"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/models"
)

// 예측 기록 목록 응답 (Wrapper)
type HistoryResponse struct {
	History []models.Estimate `json:"history"`
}

// History godoc
// @Summary      예측 기록 조회 (History)
// @Description  로그인한 사용자의 과거 예측 기록을 최신순으로 반환합니다.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.HistoryResponse "history: [기록 배열]"
// @Failure      401 {object} handler.ErrorResponse "미인증 세션"
// @Failure      500 {object} handler.ErrorResponse "DB 조회 실패 등 서버 오류"
// @Router       /api/history [get]
func (h *Handler) History(c *gin.Context) {
	sess := sessionFrom(c)

	var username string
	var loggedIn bool
	sess.Exclusive(func(st *flow.State) {
		username = st.Username
		loggedIn = st.LoggedIn
	})

	if !loggedIn {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	estimates, err := h.estimates.GetEstimatesByUsername(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch estimates"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: estimates})
}
