package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAPIURL = "https://api.brevo.com/v3/smtp/email"

// APIClient sends transactional email through the Brevo HTTP API.
type APIClient struct {
	apiKey     string
	fromEmail  string
	fromName   string
	apiURL     string
	httpClient *http.Client
}

func NewAPIClient(apiKey string, fromEmail string, fromName string) *APIClient {
	return &APIClient{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendEmailRequest struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	TextContent string              `json:"textContent"`
}

func (client *APIClient) SendOTP(ctx context.Context, email string, code string) error {
	payload := sendEmailRequest{
		Sender:      map[string]string{"email": client.fromEmail, "name": client.fromName},
		To:          []map[string]string{{"email": email}},
		Subject:     "Your login code",
		TextContent: fmt.Sprintf("Your one-time code is %s. It expires in two minutes.", code),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("api-key", client.apiKey)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("mail API responded %d: %s", response.StatusCode, string(detail))
	}
	return nil
}
