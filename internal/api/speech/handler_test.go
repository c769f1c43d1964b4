package speech

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-adapt-reader/config"
	corespeech "ai-adapt-reader/internal/core/speech"

	"github.com/gofiber/fiber/v3"
	"github.com/openai/openai-go/v3/option"
)

func newTestApp(t *testing.T, provider http.HandlerFunc) *fiber.App {
	t.Helper()
	server := httptest.NewServer(provider)
	t.Cleanup(server.Close)

	saved := config.Cfg.OpenAI.Key
	config.Cfg.OpenAI.Key = "test-key"
	t.Cleanup(func() { config.Cfg.OpenAI.Key = saved })

	svc := corespeech.NewService(option.WithBaseURL(server.URL), option.WithMaxRetries(0))
	app := fiber.New()
	RegisterRoutes(app, NewHandler(svc))
	return app
}

func TestHandleSpeak_Body(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("mp3 audio"))
	})

	req := httptest.NewRequest(http.MethodPost, "/speak", strings.NewReader(`{"text": "read this", "voice": "nova"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body corespeech.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Audio == "" {
		t.Error("audio missing")
	}
	if body.Voice != "nova" {
		t.Errorf("voice = %q", body.Voice)
	}
}

func TestHandleSpeak_QueryForm(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("mp3 audio"))
	})

	req := httptest.NewRequest(http.MethodGet, "/speak?text=read+this&voice=echo", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestHandleSpeak_MissingText(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider should not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/speak", strings.NewReader(`{"voice": "alloy"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleSpeak_InvalidVoice(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/speak?text=hello&voice=morgan", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if msg, _ := body["error"].(string); !strings.Contains(msg, "alloy") {
		t.Error("error should list the valid voices")
	}
}

func TestHandleSpeak_ProviderFailure(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/speak?text=hello", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}
