package storage

import (
	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/flow"
)

// flow.CredentialGateway 구현. 핵심 로직과 sqlite 저장소 사이의 어댑터
type CredentialStore struct{}

func (CredentialStore) Verify(username, password string) (bool, error) {
	return VerifyUser(username, password)
}

func (CredentialStore) Create(username, password string) error {
	return CreateUser(username, password)
}

func (CredentialStore) ListAll() ([]flow.Credential, error) {
	users, err := ListUsers()
	if err != nil {
		return nil, err
	}
	records := make([]flow.Credential, 0, len(users))
	for _, u := range users {
		records = append(records, flow.Credential{
			ID:       u.ID,
			Username: u.Username,
			Password: u.Password,
		})
	}
	return records, nil
}
