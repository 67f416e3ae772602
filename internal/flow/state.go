/* 세션별 페이지 상태 정의 */

package flow

import "fmt"

// 화면 페이지. 이 5개 외의 값은 존재하지 않음
type Page int

const (
	PageLogin Page = iota
	PageRegister
	PageInputData
	PageResult
	PageAdminPanel
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "login"
	case PageRegister:
		return "register"
	case PageInputData:
		return "input_data"
	case PageResult:
		return "result"
	case PageAdminPanel:
		return "admin_panel"
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

// 한 세션의 현재 상태. Controller.Cycle만 이 값을 변경함
type State struct {
	Page     Page
	LoggedIn bool
	Username string
	// 예측 성공 후에만 설정됨 (소수점 2자리 반올림 값)
	Result *float64
}

// 최초 접속 상태: 로그인 페이지, 미인증
func NewState() State {
	return State{Page: PageLogin}
}

// AdminPanel 진입용 일회성 토큰. 비밀번호 검증을 통과한 사이클 안에서만
// 유효하고, 사이클이 끝나면 버려짐
type AdminGrant struct {
	used bool
}

func (g *AdminGrant) consume() bool {
	if g == nil || g.used {
		return false
	}
	g.used = true
	return true
}
