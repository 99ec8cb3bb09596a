package mpesa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"theracare/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.RuntimeConfig{
		MpesaAPIURL:         baseURL,
		MpesaConsumerKey:    "key",
		MpesaConsumerSecret: "secret",
		MpesaPasskey:        "passkey",
		MpesaShortCode:      "174379",
		MpesaCallbackURL:    "https://example.com/api/v1/payments/callback",
	})
}

func TestSTKPush_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok"})
		case "/mpesa/stkpush/v1/processrequest":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			var req stkPushRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "174379", req.BusinessShortCode)
			assert.Equal(t, "254712345678", req.PhoneNumber)
			assert.Equal(t, int64(1500), req.Amount)
			assert.NotEmpty(t, req.Password)

			json.NewEncoder(w).Encode(map[string]string{
				"CheckoutRequestID": "ws_CO_123",
				"ResponseCode":      "0",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	checkoutID, err := newTestClient(srv.URL).STKPush(context.Background(), "254712345678", 1500, "THR-abc")

	assert.NoError(t, err)
	assert.Equal(t, "ws_CO_123", checkoutID)
}

func TestSTKPush_GatewayRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/v1/generate" {
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok"})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"errorMessage": "Invalid PhoneNumber"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).STKPush(context.Background(), "254712345678", 1500, "THR-abc")

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.Contains(t, err.Error(), "Invalid PhoneNumber")
}

func TestSTKPush_TokenFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).STKPush(context.Background(), "254712345678", 1500, "THR-abc")

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}
