package models

// 회원 사용자 모델. 비밀번호는 설계상 평문으로 저장/비교됨
// (관리자 패널이 그대로 표시하기 때문)
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
