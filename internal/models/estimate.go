package models

import "time"

// 예측 결과 기록
type Estimate struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}
