package alphasquared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-api-key", WithBaseURL(server.URL))
}

func TestGetCurrentRisk(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
	}{
		{
			name:     "숫자로 내려오는 리스크",
			response: `{"symbol": "BTC", "current_risk": 43.2}`,
			want:     43.2,
		},
		{
			name:     "문자열로 내려오는 리스크",
			response: `{"symbol": "BTC", "current_risk": "61.75"}`,
			want:     61.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/asset-info", r.URL.Path)
				assert.Equal(t, "BTC", r.URL.Query().Get("symbol"))
				assert.Equal(t, "test-api-key", r.Header.Get("Authorization"))
				w.Write([]byte(tt.response))
			})

			risk, err := client.GetCurrentRisk(context.Background(), "BTC")
			require.NoError(t, err)
			assert.Equal(t, tt.want, risk)
		})
	}
}

func TestGetStrategyDirective(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/strategy-values", r.URL.Path)
		assert.Equal(t, "my-strategy", r.URL.Query().Get("strategy_name"))
		assert.Equal(t, "43.2", r.URL.Query().Get("risk"))
		w.Write([]byte(`{"strategy_name": "my-strategy", "action": "buy", "value": "250"}`))
	})

	directive, err := client.GetStrategyDirective(context.Background(), "my-strategy", 43.2)
	require.NoError(t, err)

	assert.Equal(t, "buy", directive.Action)
	assert.True(t, directive.Value.Equal(decimal.RequireFromString("250")))
}

func TestGetCurrentRisk_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "unauthorized"}`, http.StatusUnauthorized)
	})

	_, err := client.GetCurrentRisk(context.Background(), "BTC")
	assert.Error(t, err)
}
