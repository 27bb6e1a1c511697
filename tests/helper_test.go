package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"airtable-relay/internal/relay/client"
	"airtable-relay/internal/relay/config"
	"airtable-relay/internal/relay/handler"
	"airtable-relay/internal/relay/logbuf"
	"airtable-relay/internal/relay/metrics"
	"airtable-relay/internal/relay/router"
	"airtable-relay/internal/relay/service"

	"github.com/labstack/echo/v4"
)

// SetupRelay wires a full relay server against a fake Airtable upstream.
func SetupRelay(t *testing.T, upstream http.HandlerFunc, token string) *echo.Echo {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Token:           token,
		Port:            "3000",
		UpstreamTimeout: 5 * time.Second,
	}

	m := metrics.New()
	airtable := client.NewAirtableClient(srv.URL, token, cfg.UpstreamTimeout)
	svc := service.NewService(airtable, logbuf.New(logbuf.DefaultCapacity), m)
	h := handler.NewRelayHandler(svc, cfg)

	e := echo.New()
	router.RegisterRoutes(e, h, m)
	return e
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// DecodeBody unmarshals a recorded JSON response into a generic map.
func DecodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}
