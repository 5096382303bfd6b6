package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(endpoint, "secret-token", time.Second, logrus.NewEntry(log))
}

func TestClient_FetchStatus_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "OAuth secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "1000", r.URL.Query().Get("from_date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1200}`))
	}))
	defer srv.Close()

	raw, err := newTestClient(srv.URL+"/api/user_api/homework_statuses/").FetchStatus(context.Background(), 1000)
	require.NoError(t, err)

	obj, ok := raw.(map[string]any)
	require.True(t, ok, "expected JSON object, got %T", raw)
	assert.Contains(t, obj, "homeworks")
	assert.Equal(t, json.Number("1200"), obj["current_date"])
}

func TestClient_FetchStatus_RemoteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"internal"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchStatus(context.Background(), 42)
	require.Error(t, err)

	var apiErr *homework.RemoteAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, int64(42), apiErr.FromDate)
	assert.Equal(t, srv.URL, apiErr.Endpoint)
	assert.NotContains(t, err.Error(), "secret-token")
}

func TestClient_FetchStatus_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	_, err := newTestClient(endpoint).FetchStatus(context.Background(), 42)
	require.Error(t, err)

	var transportErr *homework.TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestClient_FetchStatus_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchStatus(context.Background(), 42)
	require.Error(t, err)

	var schemaErr *homework.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestClient_FetchStatus_BareList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"homework_name":"hw1","status":"approved"}]`))
	}))
	defer srv.Close()

	raw, err := newTestClient(srv.URL).FetchStatus(context.Background(), 42)
	require.NoError(t, err, "shape validation is not the client's job")
	assert.IsType(t, []any{}, raw)
}
