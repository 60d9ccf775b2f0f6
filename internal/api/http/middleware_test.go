package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/helpdesk-service/internal/observability"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func TestRequestLogRecordsSerializedStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	metrics := observability.NewMetrics()

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	app.Get("/fail", func(c *fiber.Ctx) error {
		return apperrors.NewUnauthenticated("token ausente")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 401 {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	var logged int64 = -1
	for _, entry := range logs.FilterMessage("request").All() {
		for _, field := range entry.Context {
			if field.Key == "status" {
				logged = field.Integer
			}
		}
	}
	if logged != 401 {
		t.Fatalf("logged status = %d, want 401", logged)
	}

	requests, _ := metrics.Snapshot()
	if requests["/fail|GET|401"] != 1 {
		t.Fatalf("request counter = %v, want /fail|GET|401 = 1", requests)
	}
}
