package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"balance_gateway/models"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log, _ := test.NewNullLogger()
	client, err := NewClient(Config{BaseURL: srv.URL, Token: "secret"}, log)
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClient(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		_, err := NewClient(Config{BaseURL: "http://localhost"}, nil)
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("empty base url", func(t *testing.T) {
		_, err := NewClient(Config{Token: "secret"}, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("stock route without placeholder", func(t *testing.T) {
		_, err := NewClient(Config{
			BaseURL: "http://localhost",
			Token:   "secret",
			Routes:  Routes{UserStock: "/stocks/user/stock"},
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestClient_GetUserStock(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stocks/user/stock/AAPL", r.URL.Path)
		assert.Equal(t, "0xabc", r.URL.Query().Get("address"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(w, http.StatusOK, `{"data":{"value":1.5,"price":20}}`)
	})

	record, err := client.GetUserStock(context.Background(), "0xabc", "AAPL")
	require.NoError(t, err)
	require.NotNil(t, record.Value)
	require.NotNil(t, record.Price)
	assert.Equal(t, "1.5", record.Value.String())
	assert.Equal(t, "20", record.Price.String())
}

func TestClient_GetUserStock_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"boom"}`, wantErr: ErrBackendRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, wantErr: ErrBackendRequest},
		{name: "missing data", status: http.StatusOK, body: `{"message":"ok"}`, wantErr: ErrMalformedResponse},
		{name: "not json", status: http.StatusOK, body: `<html></html>`, wantErr: ErrMalformedResponse},
		{name: "non numeric value", status: http.StatusOK, body: `{"data":{"value":true}}`, wantErr: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.GetUserStock(context.Background(), "0xabc", "AAPL")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_RequestErrorCarriesStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"message":"boom"}`)
	})

	_, err := client.ListUsers(context.Background())
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, http.MethodGet, reqErr.Method)
	assert.Equal(t, "/admin/users/list", reqErr.Path)
	assert.Contains(t, reqErr.Body, "boom")
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, Token: "secret"}, nil)
	require.NoError(t, err)

	_, err = client.GetUserStock(context.Background(), "0xabc", "AAPL")
	assert.ErrorIs(t, err, ErrBackendRequest)
}

func TestClient_Adjust(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "AAPL", body["productId"])
		assert.Equal(t, "0xabc", body["address"])
		assert.Equal(t, 12.5, body["quantity"])

		switch r.URL.Path {
		case "/stocks/user/increment":
			writeJSON(w, http.StatusOK, `{"data":{"quantity":77}}`)
		case "/stocks/user/decrement":
			writeJSON(w, http.StatusOK, `{"data":{}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	in := models.AdjustRequest{ProductID: "AAPL", Address: "0xabc", Quantity: "12.5"}

	inc, err := client.Increment(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, inc.Quantity)
	assert.Equal(t, "77", inc.Quantity.String())

	dec, err := client.Decrement(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, dec.Quantity)

	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_ListUsers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/users/list", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id":1}]`)
	})

	body, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(body))
}

func TestClient_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":{"value":1}}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetUserStock(ctx, "0xabc", "AAPL")
	assert.ErrorIs(t, err, ErrBackendRequest)
	assert.ErrorIs(t, err, context.Canceled)
}
