package storage

import (
	"time"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/models"
)

// handler.EstimateStore 구현 어댑터
type EstimateStore struct{}

func (EstimateStore) CreateEstimate(username string, cost float64) error {
	return CreateEstimate(username, cost)
}

func (EstimateStore) GetEstimatesByUsername(username string) ([]models.Estimate, error) {
	return GetEstimatesByUsername(username)
}

func CreateEstimate(username string, cost float64) error {
	stmt, err := db.Prepare("INSERT INTO estimates(username, cost, created_at) VALUES(?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(username, cost, time.Now().Format("2006-01-02 15:04:05"))
	return err
}

func GetEstimatesByUsername(username string) ([]models.Estimate, error) {
	query := `
		SELECT id, username, cost, created_at
		FROM estimates
		WHERE username = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := db.Query(query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var estimates []models.Estimate
	for rows.Next() {
		var e models.Estimate
		var createdStr string // SQLite는 시간을 문자열로 저장함

		if err := rows.Scan(&e.ID, &e.Username, &e.Cost, &createdStr); err != nil {
			return nil, err
		}

		parsedTime, _ := time.Parse("2006-01-02 15:04:05", createdStr)
		e.CreatedAt = parsedTime

		estimates = append(estimates, e)
	}
	return estimates, rows.Err()
}
