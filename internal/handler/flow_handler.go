package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/features"
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/flow"
)

// /login, /register 요청 바디
type CredentialsRequest struct {
	Username string `json:"username" example:"user123"`
	Password string `json:"password" example:"pass123"`
}

// CurrentPage godoc
// @Summary      현재 페이지 조회 (CurrentPage)
// @Description  세션의 현재 페이지와 페이지 데이터를 반환합니다. 관리자 패널이면 계정 목록이 포함됩니다.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.PageResponse
// @Router       /api/page [get]
func (h *Handler) CurrentPage(c *gin.Context) {
	st, out := h.apply(c, flow.Display{})
	c.JSON(httpStatus(out.Status), pageResponse(st, out))
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  사용자명과 비밀번호를 검증하고 성공 시 입력 페이지로 이동합니다.
// @Tags         API (Protected)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CredentialsRequest true "로그인 요청 정보"
// @Success      200 {object} handler.PageResponse
// @Failure      401 {object} handler.PageResponse "자격 증명 불일치"
// @Failure      502 {object} handler.PageResponse "저장소 접근 실패"
// @Router       /api/login [post]
func (h *Handler) Login(c *gin.Context) {
	var credentials CredentialsRequest

	// sqlite 드라이버와 ShouldBindJSON의 호환성 문제로 인한 우회 코드
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	st, out := h.apply(c, flow.LoginSubmit{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	c.JSON(httpStatus(out.Status), pageResponse(st, out))
}

// ChooseRegister godoc
// @Summary      가입 페이지로 이동
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.PageResponse
// @Router       /api/register/choose [post]
func (h *Handler) ChooseRegister(c *gin.Context) {
	st, out := h.apply(c, flow.ChooseRegister{})
	c.JSON(httpStatus(out.Status), pageResponse(st, out))
}

// ChooseLogin godoc
// @Summary      로그인 페이지로 복귀
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.PageResponse
// @Router       /api/login/choose [post]
func (h *Handler) ChooseLogin(c *gin.Context) {
	st, out := h.apply(c, flow.ChooseLogin{})
	c.JSON(httpStatus(out.Status), pageResponse(st, out))
}

// Register godoc
// @Summary      회원가입 (Register)
// @Description  새 계정을 만듭니다. 성공해도 가입 페이지에 머물고 로그인은 직접 돌아가서 해야 합니다.
// @Tags         API (Protected)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CredentialsRequest true "가입 요청 정보"
// @Success      200 {object} handler.PageResponse
// @Failure      400 {object} handler.PageResponse "빈 필드"
// @Failure      502 {object} handler.PageResponse "저장 실패 (중복 등)"
// @Router       /api/register [post]
func (h *Handler) Register(c *gin.Context) {
	var credentials CredentialsRequest

	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	st, out := h.apply(c, flow.RegisterSubmit{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	c.JSON(httpStatus(out.Status), pageResponse(st, out))
}

// /input 요청 바디. 도메인 범위는 바인딩 태그에서 검증함
type IntakeRequest struct {
	Age      int     `json:"age" binding:"min=0,max=100"`
	Sex      string  `json:"sex" binding:"required,oneof=Male Female"`
	HeightCM float64 `json:"height_cm" binding:"required,min=100,max=250"`
	WeightKG float64 `json:"weight_kg" binding:"required,min=30,max=200"`
	Children int     `json:"children" binding:"min=0,max=5"`
	Smoker   string  `json:"smoker" binding:"required,oneof=Yes No"`
	Region   string  `json:"region" binding:"required"`
}

// SubmitIntake godoc
// @Summary      수혜자 정보 제출 (SubmitIntake)
// @Description  입력값으로 피처 벡터를 만들어 모델을 호출하고 결과 페이지로 이동합니다.
// @Tags         API (Protected)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.IntakeRequest true "수혜자 정보"
// @Success      200 {object} handler.PageResponse
// @Failure      400 {object} handler.ErrorResponse "도메인 범위 밖 입력"
// @Failure      502 {object} handler.PageResponse "예측 호출 실패"
// @Router       /api/input [post]
func (h *Handler) SubmitIntake(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid intake data: " + err.Error()})
		return
	}

	region, err := features.ParseRegion(req.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid intake data: " + err.Error()})
		return
	}

	intake := features.Intake{
		Age:      req.Age,
		Male:     req.Sex == "Male",
		HeightCM: req.HeightCM,
		WeightKG: req.WeightKG,
		Children: req.Children,
		Smoker:   req.Smoker == "Yes",
		Region:   region,
	}

	st, out := h.apply(c, flow.InputSubmit{Intake: intake})

	if out.Status == flow.StatusOK && st.Result != nil {
		// 기록 실패는 흐름에 영향을 주지 않음
		if err := h.estimates.CreateEstimate(st.Username, *st.Result); err != nil {
			log.Printf("[ERROR] SubmitIntake: failed to record estimate: %v", err)
		}
	}

	resp := pageResponse(st, out)
	if out.Status == flow.StatusOK {
		bmi := features.BMI(req.HeightCM, req.WeightKG)
		resp.BMI = &bmi
	}
	c.JSON(httpStatus(out.Status), resp)
}

// /admin 요청 바디
type AdminRequest struct {
	Password string `json:"password" example:"admin123"`
	Enter    bool   `json:"enter"`
}

// Admin godoc
// @Summary      관리자 인증 및 패널 진입 (Admin)
// @Description  관리자 비밀번호를 검사합니다. enter=true이고 검사에 통과하면 같은 사이클 안에서 관리자 패널로 이동합니다.
// @Description  <br> 통과 여부는 세션에 남지 않으므로 결과 페이지로 돌아오면 다시 입력해야 합니다.
// @Tags         API (Protected)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.AdminRequest true "관리자 비밀번호"
// @Success      200 {object} handler.PageResponse
// @Failure      401 {object} handler.PageResponse "비밀번호 불일치"
// @Router       /api/admin [post]
func (h *Handler) Admin(c *gin.Context) {
	var req AdminRequest

	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	st, out := h.apply(c, flow.AdminAttempt{Passphrase: req.Password})

	granted := out.Grant != nil
	if granted && req.Enter {
		// 발급된 일회성 토큰을 같은 사이클 처리 안에서 소비함
		st, out = h.apply(c, flow.EnterAdminPanel{Grant: out.Grant})
	}

	resp := pageResponse(st, out)
	resp.AdminGranted = granted
	c.JSON(httpStatus(out.Status), resp)
}
