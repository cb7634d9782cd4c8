package tracing

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// resetProvider возвращает noop-провайдер после теста, провайдер глобальный
func resetProvider(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })
}

func TestInitWithOutput_Disabled(t *testing.T) {
	resetProvider(t)
	cfg := &config.Config{TracingEnabled: false}

	shutdown, err := InitWithOutput(context.Background(), cfg, &bytes.Buffer{}, newTestLogger())

	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
	_, span := Start(context.Background(), "geofence.Evaluate")
	assert.False(t, span.IsRecording())
}

func TestInitWithOutput_ExportsSpansOnShutdown(t *testing.T) {
	resetProvider(t)
	// Подготовка
	buf := &bytes.Buffer{}
	cfg := &config.Config{TracingEnabled: true, TracingServiceName: "tourist-safety-test", TracingSampleRatio: 1}

	shutdown, err := InitWithOutput(context.Background(), cfg, buf, newTestLogger())
	require.NoError(t, err)

	// Действие
	_, span := Start(context.Background(), "sos.LogEmergency")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	// Проверки
	assert.Contains(t, buf.String(), "sos.LogEmergency")
	assert.Contains(t, buf.String(), "tourist-safety-test")
}

func TestGinMiddleware_ServerSpan(t *testing.T) {
	resetProvider(t)
	gin.SetMode(gin.TestMode)

	// Подготовка
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/api/v1/trips/:id", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	// Действие
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/trips/42", nil)
	router.ServeHTTP(w, req)

	// Проверки
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/trips/:id", spans[0].Name())
	assert.Equal(t, "Internal Server Error", spans[0].Status().Description)
}
