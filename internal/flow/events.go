package flow

import "github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/features"

// 사용자 입력 이벤트. 닫힌 집합이며 Controller.dispatch의 type switch에서
// 전부 처리됨 — 페이지를 추가하면 그쪽도 반드시 수정해야 함
type Event interface {
	isEvent()
}

// 로그인 페이지: 자격 증명 제출
type LoginSubmit struct {
	Username string
	Password string
}

// 로그인 페이지: 회원가입 페이지로 이동
type ChooseRegister struct{}

// 가입 페이지: 로그인 페이지로 복귀
type ChooseLogin struct{}

// 가입 페이지: 신규 계정 제출
type RegisterSubmit struct {
	Username string
	Password string
}

// 입력 페이지: 수혜자 정보 제출
type InputSubmit struct {
	Intake features.Intake
}

// 결과 페이지: 관리자 비밀번호 시도
type AdminAttempt struct {
	Passphrase string
}

// 결과 페이지: 관리자 패널 진입 (같은 사이클에서 발급된 Grant 필요)
type EnterAdminPanel struct {
	Grant *AdminGrant
}

// 현재 페이지 표시 (상태 변경 없음)
type Display struct{}

func (LoginSubmit) isEvent()     {}
func (ChooseRegister) isEvent()  {}
func (ChooseLogin) isEvent()     {}
func (RegisterSubmit) isEvent()  {}
func (InputSubmit) isEvent()     {}
func (AdminAttempt) isEvent()    {}
func (EnterAdminPanel) isEvent() {}
func (Display) isEvent()         {}
