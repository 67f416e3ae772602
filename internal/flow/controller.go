/**
* Name: 			controller.go
* Description: 		페이지 상태 머신의 핵심 로직
* Workflow: 		이벤트 dispatch → 상태 전이 → invariant 복구
 */
package flow

import (
	"fmt"
	"strings"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/features"
)

// 자격 증명 저장소 경계. 핵심 로직은 내부 저장 방식을 알지 못함
type CredentialGateway interface {
	Verify(username, password string) (bool, error)
	Create(username, password string) error
	ListAll() ([]Credential, error)
}

// 비용 예측 모델 경계
type Predictor interface {
	Predict(v features.Vector) (float64, error)
}

// 관리자 패널에 표시되는 계정 레코드
type Credential struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Status int

const (
	StatusOK Status = iota
	StatusValidationFailed
	StatusUnauthorized // 자격 증명 / 관리자 비밀번호 불일치
	StatusFailed       // 외부 시스템 호출 실패
	StatusNoResult
	StatusUnavailable // 현재 페이지에서 처리할 수 없는 이벤트
)

// 한 사이클의 처리 결과. Grant는 사이클이 끝나면 무효
type Outcome struct {
	Status      Status
	Message     string
	Grant       *AdminGrant
	Credentials []Credential
}

func ok(message string) Outcome {
	return Outcome{Status: StatusOK, Message: message}
}

type Controller struct {
	gateway         CredentialGateway
	predictor       Predictor
	adminPassphrase string
}

func NewController(gateway CredentialGateway, predictor Predictor, adminPassphrase string) *Controller {
	return &Controller{
		gateway:         gateway,
		predictor:       predictor,
		adminPassphrase: adminPassphrase,
	}
}

// 이벤트 하나를 한 사이클로 처리함. 상태는 값으로 받아 값으로 돌려주고,
// 페이지별 처리 후에는 항상 invariant 복구 단계를 거침
func (c *Controller) Cycle(s State, ev Event) (State, Outcome) {
	s, out := c.dispatch(s, ev)

	// logged_in=true 인데 로그인 페이지에 있는 비정상 조합은
	// 강제 로그아웃으로 복구함. 사용자에게는 알리지 않음
	if s.Page == PageLogin && s.LoggedIn {
		s = NewState()
	}
	return s, out
}

func (c *Controller) dispatch(s State, ev Event) (State, Outcome) {
	switch ev := ev.(type) {
	case LoginSubmit:
		return c.login(s, ev)
	case ChooseRegister:
		if s.Page != PageLogin || s.LoggedIn {
			return s, unavailable(s)
		}
		s.Page = PageRegister
		return s, ok("")
	case ChooseLogin:
		if s.Page != PageRegister {
			return s, unavailable(s)
		}
		s.Page = PageLogin
		return s, ok("")
	case RegisterSubmit:
		return c.register(s, ev)
	case InputSubmit:
		return c.predict(s, ev)
	case AdminAttempt:
		return c.adminAttempt(s, ev)
	case EnterAdminPanel:
		return c.enterAdminPanel(s, ev)
	case Display:
		return c.display(s)
	}
	// 닫힌 이벤트 집합이므로 여기 오면 안 됨
	return s, Outcome{Status: StatusUnavailable, Message: fmt.Sprintf("unknown event %T", ev)}
}

func unavailable(s State) Outcome {
	return Outcome{
		Status:  StatusUnavailable,
		Message: fmt.Sprintf("action not available on the %s page", s.Page),
	}
}

func (c *Controller) login(s State, ev LoginSubmit) (State, Outcome) {
	if s.Page != PageLogin || s.LoggedIn {
		return s, unavailable(s)
	}

	valid, err := c.gateway.Verify(ev.Username, ev.Password)
	if err != nil {
		return s, Outcome{Status: StatusFailed, Message: fmt.Sprintf("Login failed. Error: %v", err)}
	}
	if !valid {
		return s, Outcome{Status: StatusUnauthorized, Message: "Invalid credentials. Please try again."}
	}

	s.LoggedIn = true
	s.Username = ev.Username
	s.Page = PageInputData
	return s, ok("")
}

func (c *Controller) register(s State, ev RegisterSubmit) (State, Outcome) {
	if s.Page != PageRegister {
		return s, unavailable(s)
	}

	// 빈 값이면 저장소 호출 없이 즉시 거부
	if strings.TrimSpace(ev.Username) == "" || strings.TrimSpace(ev.Password) == "" {
		return s, Outcome{
			Status:  StatusValidationFailed,
			Message: "Username and password cannot be empty. Please enter valid credentials.",
		}
	}

	if err := c.gateway.Create(ev.Username, ev.Password); err != nil {
		return s, Outcome{Status: StatusFailed, Message: fmt.Sprintf("Registration failed. Error: %v", err)}
	}
	// 성공해도 가입 페이지에 머무름. 로그인은 사용자가 직접 돌아가서 해야 함
	return s, ok("Registration successful. You can now log in.")
}

func (c *Controller) predict(s State, ev InputSubmit) (State, Outcome) {
	if s.Page != PageInputData || !s.LoggedIn {
		return s, unavailable(s)
	}

	vector := features.Derive(ev.Intake)
	cost, err := c.predictor.Predict(vector)
	if err != nil {
		return s, Outcome{Status: StatusFailed, Message: fmt.Sprintf("Prediction failed. Error: %v", err)}
	}

	rounded := features.Round2(cost)
	s.Result = &rounded
	s.Page = PageResult
	return s, ok(fmt.Sprintf("The estimated medical cost is $%.2f", rounded))
}

func (c *Controller) adminAttempt(s State, ev AdminAttempt) (State, Outcome) {
	if s.Page != PageResult || !s.LoggedIn {
		return s, unavailable(s)
	}
	if ev.Passphrase == "" {
		return s, Outcome{Status: StatusValidationFailed, Message: "Admin password is required."}
	}
	if ev.Passphrase != c.adminPassphrase {
		return s, Outcome{Status: StatusUnauthorized, Message: "Incorrect admin password. Access denied."}
	}
	// 성공은 상태에 남지 않고 일회성 토큰으로만 전달됨
	return s, Outcome{Status: StatusOK, Grant: &AdminGrant{}}
}

func (c *Controller) enterAdminPanel(s State, ev EnterAdminPanel) (State, Outcome) {
	if s.Page != PageResult || !s.LoggedIn {
		return s, unavailable(s)
	}
	if !ev.Grant.consume() {
		return s, Outcome{Status: StatusUnauthorized, Message: "Admin access has not been granted."}
	}
	s.Page = PageAdminPanel
	return s, ok("")
}

func (c *Controller) display(s State) (State, Outcome) {
	switch s.Page {
	case PageResult:
		if s.Result == nil {
			return s, Outcome{
				Status:  StatusNoResult,
				Message: "No prediction result found. Please go back to the Input Data page and make a prediction.",
			}
		}
		return s, ok(fmt.Sprintf("The estimated medical cost is $%.2f", *s.Result))
	case PageAdminPanel:
		if !s.LoggedIn {
			return s, unavailable(s)
		}
		records, err := c.gateway.ListAll()
		if err != nil {
			return s, Outcome{Status: StatusFailed, Message: fmt.Sprintf("Failed to fetch user data. Error: %v", err)}
		}
		if len(records) == 0 {
			return s, ok("No user data available.")
		}
		return s, Outcome{Status: StatusOK, Credentials: records}
	}
	return s, ok("")
}
