package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/carty/internal/config"
	"github.com/terraincognita07/carty/internal/db"
	"go.uber.org/zap"
)

// capturingSender records the last code issued per email instead of sending
// mail.
type capturingSender struct {
	mu    sync.Mutex
	codes map[string]string
}

func newCapturingSender() *capturingSender {
	return &capturingSender{codes: make(map[string]string)}
}

func (sender *capturingSender) SendOTP(_ context.Context, email string, code string) error {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	sender.codes[email] = code
	return nil
}

func (sender *capturingSender) lastCode(email string) string {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	return sender.codes[email]
}

func testConfig() config.Config {
	return config.Config{
		Port:                      "0",
		SecretKey:                 "test-secret",
		OTPTTLSeconds:             120,
		OTPAttemptLimit:           5,
		OTPAttemptWindowSeconds:   300,
		AccessTokenTTLMinutes:     15,
		RefreshTokenTTLHours:      168,
		DefaultPageSize:           5,
		MaxPageSize:               100,
		SearchRankThreshold:       0.3,
		SearchSimilarityThreshold: 0.3,
	}
}

func newTestApp(t *testing.T) (*fiber.App, *capturingSender) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "carty-api-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sender := newCapturingSender()
	handler := NewHandler(database, testConfig(), zap.NewNop(), sender)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, sender
}

func doJSON(t *testing.T, app *fiber.App, method string, target string, token string, body any) *http.Response {
	t.Helper()

	payload := []byte(nil)
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		payload = encoded
	}

	request := httptest.NewRequest(method, target, bytes.NewReader(payload))
	request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

// login walks the full challenge flow for an email and returns the issued
// token pair.
func login(t *testing.T, app *fiber.App, sender *capturingSender, email string) (access string, refresh string) {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/otp/request", "", fiber.Map{"email": email})
	if response.StatusCode != http.StatusCreated && response.StatusCode != http.StatusOK {
		t.Fatalf("request otp for %s: status %d", email, response.StatusCode)
	}

	response = doJSON(t, app, http.MethodPost, "/otp/verify", "", fiber.Map{
		"email":    email,
		"password": sender.lastCode(email),
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("verify otp for %s: status %d", email, response.StatusCode)
	}

	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	decodeJSON(t, response, &tokens)
	if tokens.Access == "" || tokens.Refresh == "" {
		t.Fatalf("expected a full token pair for %s", email)
	}
	return tokens.Access, tokens.Refresh
}
