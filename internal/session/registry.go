/* 인메모리 세션 레지스트리 */

package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/flow"
)

// 세션 하나. 상태 접근은 Exclusive를 통해서만 하고, 덕분에 한 사이클이
// 자기 세션 상태를 독점적으로 소유함
type Session struct {
	ID string

	mu    sync.Mutex
	state flow.State
}

// 잠금을 잡은 채로 fn을 실행함. fn이 받는 포인터는 잠금 밖으로
// 유출하면 안 됨
func (s *Session) Exclusive(fn func(st *flow.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// 최초 접속: 로그인 페이지 상태로 새 세션 생성
func (r *Registry) Create() *Session {
	sess := &Session{
		ID:    uuid.NewString(),
		state: flow.NewState(),
	}
	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()
	return sess
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, exists := r.sessions[id]
	return sess, exists
}

// 세션 종료. 상태는 함께 파기됨
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
