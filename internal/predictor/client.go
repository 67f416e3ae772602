/* 외부 모델 서버 호출용 HTTP 클라이언트 */

package predictor

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/karthikrayudu/Medical-insurance-cost-prediction/internal/features"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

type PredictRequest struct {
	// 학습 당시 순서 그대로의 6개 값. 순서가 틀리면 모델이 잘못된 값을
	// 돌려주는데 여기서는 검증할 방법이 없음
	Features []float64 `json:"features"`
}

type PredictResponse struct {
	Prediction float64 `json:"prediction"`
}

type Client struct {
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// flow.Predictor 구현
func (c *Client) Predict(v features.Vector) (float64, error) {
	reqBody, err := json.Marshal(PredictRequest{Features: v[:]})
	if err != nil {
		return 0, err
	}

	resp, err := httpClient.Post(c.baseURL+"/predict", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.New("model server predict failed with status: " + resp.Status)
	}

	var predictResp PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictResp); err != nil {
		return 0, err
	}
	return predictResp.Prediction, nil
}
