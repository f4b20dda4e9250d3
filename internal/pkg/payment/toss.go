package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vietanh2810/community-api/internal/domain"
)

// TossClient confirms payments against a toss-style REST confirmation endpoint.
type TossClient struct {
	secretKey  string
	confirmURL string
	httpClient *http.Client
}

func NewTossClient(secretKey, confirmURL string, httpClient *http.Client) *TossClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &TossClient{
		secretKey:  secretKey,
		confirmURL: confirmURL,
		httpClient: httpClient,
	}
}

type tossConfirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int    `json:"amount"`
}

type tossErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *TossClient) Confirm(ctx context.Context, req domain.PaymentConfirmation) (domain.PaymentResult, error) {
	body, err := json.Marshal(tossConfirmRequest{
		PaymentKey: req.PaymentKey,
		OrderID:    req.OrderID,
		Amount:     req.Amount,
	})
	if err != nil {
		return domain.PaymentResult{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.confirmURL, bytes.NewReader(body))
	if err != nil {
		return domain.PaymentResult{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	httpReq.Header.Set("Authorization", "Basic "+c.authorization())
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.PaymentResult{}, fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.PaymentResult{}, fmt.Errorf("io.ReadAll -> %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp tossErrorResponse
		_ = json.Unmarshal(raw, &errResp)
		if errResp.Message == "" {
			errResp.Message = http.StatusText(resp.StatusCode)
		}

		return domain.PaymentResult{}, &ProviderError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Code,
			Message:    errResp.Message,
		}
	}

	var result domain.PaymentResult
	if err = json.Unmarshal(raw, &result); err != nil {
		return domain.PaymentResult{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}
	if err = json.Unmarshal(raw, &result.Raw); err != nil {
		return domain.PaymentResult{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return result, nil
}

// The secret key is the basic auth user name with an empty password.
func (c *TossClient) authorization() string {
	return base64.StdEncoding.EncodeToString([]byte(c.secretKey + ":"))
}
