/**
* Name: 			handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러 공통 부분
* Workflow: 		요청 → flow 이벤트 변환 → 사이클 실행 → 페이지 응답
 */
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/flow"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/middleware"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/models"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/session"
)

// 예측 기록 저장소 경계 (테스트에서 교체 가능)
type EstimateStore interface {
	CreateEstimate(username string, cost float64) error
	GetEstimatesByUsername(username string) ([]models.Estimate, error)
}

type Handler struct {
	registry  *session.Registry
	ctrl      *flow.Controller
	estimates EstimateStore
}

func New(registry *session.Registry, ctrl *flow.Controller, estimates EstimateStore) *Handler {
	return &Handler{
		registry:  registry,
		ctrl:      ctrl,
		estimates: estimates,
	}
}

// 현재 페이지와 페이지가 들고 있는 데이터. 렌더링은 클라이언트 몫
type PageResponse struct {
	Page         string            `json:"page" example:"login"`
	LoggedIn     bool              `json:"logged_in"`
	Message      string            `json:"message,omitempty"`
	Result       *float64          `json:"result,omitempty"`
	BMI          *float64          `json:"bmi,omitempty"`
	Users        []flow.Credential `json:"users,omitempty"`
	AdminGranted bool              `json:"admin_granted,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

func pageResponse(s flow.State, out flow.Outcome) PageResponse {
	return PageResponse{
		Page:     s.Page.String(),
		LoggedIn: s.LoggedIn,
		Message:  out.Message,
		Result:   s.Result,
		Users:    out.Credentials,
	}
}

// Outcome.Status → HTTP 상태 코드. NoResult는 요청 실패가 아니라
// 결과 없는 페이지 표시라 200으로 내려감
func httpStatus(status flow.Status) int {
	switch status {
	case flow.StatusValidationFailed:
		return http.StatusBadRequest
	case flow.StatusUnauthorized:
		return http.StatusUnauthorized
	case flow.StatusFailed:
		return http.StatusBadGateway
	case flow.StatusUnavailable:
		return http.StatusConflict
	}
	return http.StatusOK
}

func sessionFrom(c *gin.Context) *session.Session {
	v, _ := c.Get(middleware.SessionKey)
	return v.(*session.Session)
}

// 이벤트 하나를 현재 세션에 적용하고 결과 페이지를 응답함
func (h *Handler) apply(c *gin.Context, ev flow.Event) (flow.State, flow.Outcome) {
	sess := sessionFrom(c)

	var st flow.State
	var out flow.Outcome
	sess.Exclusive(func(s *flow.State) {
		*s, out = h.ctrl.Cycle(*s, ev)
		st = *s
	})
	return st, out
}
