package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/features"
)

type fakeGateway struct {
	users       map[string]string
	verifyErr   error
	createErr   error
	listErr     error
	createCalls int
}

func (f *fakeGateway) Verify(username, password string) (bool, error) {
	if f.verifyErr != nil {
		return false, f.verifyErr
	}
	pw, exists := f.users[username]
	return exists && pw == password, nil
}

func (f *fakeGateway) Create(username, password string) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	if f.users == nil {
		f.users = make(map[string]string)
	}
	f.users[username] = password
	return nil
}

func (f *fakeGateway) ListAll() ([]Credential, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var records []Credential
	id := int64(1)
	for name, pw := range f.users {
		records = append(records, Credential{ID: id, Username: name, Password: pw})
		id++
	}
	return records, nil
}

type fakePredictor struct {
	cost float64
	err  error
}

func (f *fakePredictor) Predict(v features.Vector) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.cost, nil
}

func newTestController(gw *fakeGateway, p *fakePredictor) *Controller {
	if gw == nil {
		gw = &fakeGateway{users: map[string]string{"user123": "pass123"}}
	}
	if p == nil {
		p = &fakePredictor{cost: 5234.567}
	}
	return NewController(gw, p, "admin123")
}

func validIntake() features.Intake {
	return features.Intake{
		Age: 30, Male: true, HeightCM: 180, WeightKG: 81,
		Children: 2, Smoker: false, Region: features.Southeast,
	}
}

func TestLoginSuccess(t *testing.T) {
	c := newTestController(nil, nil)

	s, out := c.Cycle(NewState(), LoginSubmit{Username: "user123", Password: "pass123"})
	assert.Equal(t, StatusOK, out.Status)
	assert.Equal(t, PageInputData, s.Page)
	assert.True(t, s.LoggedIn)
	assert.Equal(t, "user123", s.Username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	c := newTestController(nil, nil)

	s, out := c.Cycle(NewState(), LoginSubmit{Username: "user123", Password: "wrong"})
	assert.Equal(t, StatusUnauthorized, out.Status)
	assert.Equal(t, "Invalid credentials. Please try again.", out.Message)
	assert.Equal(t, NewState(), s)
}

func TestLoginGatewayFailure(t *testing.T) {
	c := newTestController(&fakeGateway{verifyErr: errors.New("connection refused")}, nil)

	s, out := c.Cycle(NewState(), LoginSubmit{Username: "user123", Password: "pass123"})
	assert.Equal(t, StatusFailed, out.Status)
	assert.Contains(t, out.Message, "connection refused")
	assert.Equal(t, NewState(), s)
}

func TestChooseRegisterAndBack(t *testing.T) {
	c := newTestController(nil, nil)

	s, out := c.Cycle(NewState(), ChooseRegister{})
	require.Equal(t, StatusOK, out.Status)
	assert.Equal(t, PageRegister, s.Page)

	s, out = c.Cycle(s, ChooseLogin{})
	require.Equal(t, StatusOK, out.Status)
	assert.Equal(t, PageLogin, s.Page)
}

func TestRegisterEmptyFieldsNeverCallsGateway(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestController(gw, nil)
	s := State{Page: PageRegister}

	for _, ev := range []RegisterSubmit{
		{Username: "", Password: "secret"},
		{Username: "newuser", Password: ""},
		{Username: "  ", Password: "secret"},
	} {
		next, out := c.Cycle(s, ev)
		assert.Equal(t, StatusValidationFailed, out.Status)
		assert.Equal(t, s, next)
	}
	assert.Equal(t, 0, gw.createCalls)
}

func TestRegisterSuccessStaysOnRegisterPage(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestController(gw, nil)

	s, out := c.Cycle(State{Page: PageRegister}, RegisterSubmit{Username: "newuser", Password: "secret"})
	assert.Equal(t, StatusOK, out.Status)
	assert.Equal(t, "Registration successful. You can now log in.", out.Message)
	assert.Equal(t, PageRegister, s.Page)
	assert.False(t, s.LoggedIn)
	assert.Equal(t, "secret", gw.users["newuser"])
}

func TestRegisterDuplicateReportsReason(t *testing.T) {
	gw := &fakeGateway{createErr: errors.New("username already exists")}
	c := newTestController(gw, nil)

	s, out := c.Cycle(State{Page: PageRegister}, RegisterSubmit{Username: "user123", Password: "x"})
	assert.Equal(t, StatusFailed, out.Status)
	assert.Contains(t, out.Message, "username already exists")
	assert.Equal(t, PageRegister, s.Page)
}

func TestInputSubmitStoresRoundedResult(t *testing.T) {
	c := newTestController(nil, &fakePredictor{cost: 5234.567})
	s := State{Page: PageInputData, LoggedIn: true, Username: "user123"}

	s, out := c.Cycle(s, InputSubmit{Intake: validIntake()})
	require.Equal(t, StatusOK, out.Status)
	assert.Equal(t, PageResult, s.Page)
	require.NotNil(t, s.Result)
	assert.Equal(t, 5234.57, *s.Result)
	assert.Equal(t, "The estimated medical cost is $5234.57", out.Message)
}

func TestInputSubmitPredictionFailure(t *testing.T) {
	c := newTestController(nil, &fakePredictor{err: errors.New("model server unreachable")})
	s := State{Page: PageInputData, LoggedIn: true}

	next, out := c.Cycle(s, InputSubmit{Intake: validIntake()})
	assert.Equal(t, StatusFailed, out.Status)
	assert.Contains(t, out.Message, "model server unreachable")
	assert.Equal(t, s, next)
	assert.Nil(t, next.Result)
}

func TestInputSubmitRequiresLogin(t *testing.T) {
	c := newTestController(nil, nil)

	_, out := c.Cycle(State{Page: PageInputData}, InputSubmit{Intake: validIntake()})
	assert.Equal(t, StatusUnavailable, out.Status)
}

func TestResultDisplayWithoutResult(t *testing.T) {
	c := newTestController(nil, nil)
	s := State{Page: PageResult, LoggedIn: true}

	next, out := c.Cycle(s, Display{})
	assert.Equal(t, StatusNoResult, out.Status)
	assert.Contains(t, out.Message, "No prediction result found")
	assert.Equal(t, s, next)
}

func TestAdminAttempt(t *testing.T) {
	c := newTestController(nil, nil)
	s := State{Page: PageResult, LoggedIn: true}

	// 빈 입력은 검증 에러, 경고 아님
	_, out := c.Cycle(s, AdminAttempt{Passphrase: ""})
	assert.Equal(t, StatusValidationFailed, out.Status)

	_, out = c.Cycle(s, AdminAttempt{Passphrase: "nope"})
	assert.Equal(t, StatusUnauthorized, out.Status)
	assert.Equal(t, "Incorrect admin password. Access denied.", out.Message)

	next, out := c.Cycle(s, AdminAttempt{Passphrase: "admin123"})
	assert.Equal(t, StatusOK, out.Status)
	require.NotNil(t, out.Grant)
	assert.Equal(t, s, next, "attempt alone must not change the page")
}

func TestAdminGrantIsOneShot(t *testing.T) {
	c := newTestController(nil, nil)
	s := State{Page: PageResult, LoggedIn: true}

	_, out := c.Cycle(s, AdminAttempt{Passphrase: "admin123"})
	require.NotNil(t, out.Grant)

	next, enterOut := c.Cycle(s, EnterAdminPanel{Grant: out.Grant})
	require.Equal(t, StatusOK, enterOut.Status)
	assert.Equal(t, PageAdminPanel, next.Page)

	// 같은 토큰 재사용 불가
	_, enterOut = c.Cycle(s, EnterAdminPanel{Grant: out.Grant})
	assert.Equal(t, StatusUnauthorized, enterOut.Status)

	// 토큰 없이 진입 불가
	_, enterOut = c.Cycle(s, EnterAdminPanel{})
	assert.Equal(t, StatusUnauthorized, enterOut.Status)
}

func TestAdminPanelDisplay(t *testing.T) {
	gw := &fakeGateway{users: map[string]string{"user123": "pass123"}}
	c := newTestController(gw, nil)
	s := State{Page: PageAdminPanel, LoggedIn: true}

	_, out := c.Cycle(s, Display{})
	require.Equal(t, StatusOK, out.Status)
	require.Len(t, out.Credentials, 1)
	assert.Equal(t, "user123", out.Credentials[0].Username)
	assert.Equal(t, "pass123", out.Credentials[0].Password)

	gw.users = nil
	_, out = c.Cycle(s, Display{})
	assert.Equal(t, "No user data available.", out.Message)
}

func TestSelfCorrectingReset(t *testing.T) {
	c := newTestController(nil, nil)

	// 비정상 조합: 로그인 페이지인데 인증 플래그가 켜져 있음
	result := 12.34
	anomalous := State{Page: PageLogin, LoggedIn: true, Username: "user123", Result: &result}

	s, _ := c.Cycle(anomalous, Display{})
	assert.Equal(t, PageLogin, s.Page)
	assert.False(t, s.LoggedIn)
	assert.Empty(t, s.Username)
	assert.Nil(t, s.Result)
}

func TestEndToEndScenario(t *testing.T) {
	gw := &fakeGateway{users: map[string]string{"user123": "pass123"}}
	c := newTestController(gw, &fakePredictor{cost: 5234.567})

	s := NewState()
	s, out := c.Cycle(s, LoginSubmit{Username: "user123", Password: "pass123"})
	require.Equal(t, StatusOK, out.Status)

	s, out = c.Cycle(s, InputSubmit{Intake: validIntake()})
	require.Equal(t, StatusOK, out.Status)
	require.NotNil(t, s.Result)
	assert.Equal(t, 5234.57, *s.Result)

	s, out = c.Cycle(s, Display{})
	assert.Equal(t, "The estimated medical cost is $5234.57", out.Message)

	// 관리자 패널까지
	_, out = c.Cycle(s, AdminAttempt{Passphrase: "admin123"})
	require.NotNil(t, out.Grant)
	s, out = c.Cycle(s, EnterAdminPanel{Grant: out.Grant})
	require.Equal(t, StatusOK, out.Status)
	assert.Equal(t, PageAdminPanel, s.Page)

	_, out = c.Cycle(s, Display{})
	require.Len(t, out.Credentials, 1)
}
