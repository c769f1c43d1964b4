package healthcheck

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-adapt-reader/internal/llm"

	"github.com/gofiber/fiber/v3"
)

func TestApiHealthCheck(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app, NewHandler(llm.NewMock("pong")))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/api", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}
}

func TestUpstreamHealthCheck(t *testing.T) {
	mock := llm.NewMock("pong")
	app := fiber.New()
	RegisterRoutes(app, NewHandler(mock))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/upstream", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if mock.LastRequest == nil || mock.LastRequest.MaxTokens != 1 {
		t.Error("upstream probe should request a single token")
	}
}

func TestUpstreamHealthCheck_ProviderDown(t *testing.T) {
	mock := llm.NewMock("")
	mock.Err = errors.New("connection refused")
	app := fiber.New()
	RegisterRoutes(app, NewHandler(mock))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/upstream", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}
