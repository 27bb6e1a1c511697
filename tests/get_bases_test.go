package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBases(t *testing.T) {
	// API: GET /bases

	t.Run("projects bases preserving upstream order", func(t *testing.T) {
		e := SetupRelay(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"bases":[
				{"id":"appZ","name":"Zeta","permissionLevel":"read","createdTime":"2024-01-01T00:00:00Z"},
				{"id":"appA","name":"Alpha","permissionLevel":"create","createdTime":"2024-02-01T00:00:00Z"}
			]}`))
		}, "key-abc")

		rec := PerformRequest(e, http.MethodGet, "/bases", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := DecodeBody(t, rec)
		bases, ok := body["bases"].([]any)
		require.True(t, ok)
		require.Len(t, bases, 2)

		first, ok := bases[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "appZ", first["id"])
		assert.Equal(t, "Zeta", first["name"])
		assert.Equal(t, "read", first["permissionLevel"])
		// Exactly the projection, no extra upstream fields leaked.
		assert.Len(t, first, 3)

		second := bases[1].(map[string]any)
		assert.Equal(t, "appA", second["id"])
	})

	t.Run("upstream 401 returns 500 with error details and logs failure", func(t *testing.T) {
		e := SetupRelay(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"type":"AUTHENTICATION_REQUIRED"}}`))
		}, "key-bad")

		rec := PerformRequest(e, http.MethodGet, "/bases", nil, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := DecodeBody(t, rec)
		assert.Equal(t, "Failed to fetch bases", body["error"])
		assert.NotNil(t, body["details"])

		// Failure reason lands in the activity log.
		logsRec := PerformRequest(e, http.MethodGet, "/logs", nil, nil)
		assert.Contains(t, logsRec.Body.String(), "Error fetching bases")
	})

	t.Run("service stays responsive after an upstream failure", func(t *testing.T) {
		fail := true
		e := SetupRelay(t, func(w http.ResponseWriter, r *http.Request) {
			if fail {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"bases":[{"id":"app1","name":"One","permissionLevel":"create"}]}`))
		}, "key-abc")

		rec := PerformRequest(e, http.MethodGet, "/bases", nil, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		fail = false
		rec = PerformRequest(e, http.MethodGet, "/bases", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetLogs(t *testing.T) {
	// API: GET /logs

	t.Run("empty buffer returns empty list and zero total", func(t *testing.T) {
		e := SetupRelay(t, func(w http.ResponseWriter, r *http.Request) {}, "key-abc")

		rec := PerformRequest(e, http.MethodGet, "/logs", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := DecodeBody(t, rec)
		assert.Equal(t, float64(0), body["total"])
	})

	t.Run("proxied calls leave entries", func(t *testing.T) {
		e := SetupRelay(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"bases":[]}`))
		}, "key-abc")

		PerformRequest(e, http.MethodGet, "/bases", nil, nil)

		rec := PerformRequest(e, http.MethodGet, "/logs", nil, nil)
		body := DecodeBody(t, rec)
		assert.Equal(t, float64(2), body["total"]) // before + after entries
		assert.Contains(t, rec.Body.String(), "Fetching bases")
	})
}
