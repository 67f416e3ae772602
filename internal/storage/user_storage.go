package storage

import (
	"errors"

	"modernc.org/sqlite"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/models"
)

var ErrUsernameExists = errors.New("username already exists")

// 비밀번호는 입력값 그대로 저장함 (설계상 해싱 없음)
func CreateUser(username, password string) error {
	stmt, err := db.Prepare("INSERT INTO users(username, password) VALUES(?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(username, password)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code() == 2067 {
				return ErrUsernameExists
			}
		}
		return err
	}
	return nil
}

// 정확히 일치하는 레코드가 있을 때만 true. 읽기 전용이라 반복 호출에 안전함
func VerifyUser(username, password string) (bool, error) {
	var count int
	row := db.QueryRow("SELECT COUNT(*) FROM users WHERE username = ? AND password = ?", username, password)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func ListUsers() ([]models.User, error) {
	rows, err := db.Query("SELECT id, username, password FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
