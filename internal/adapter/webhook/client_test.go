package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndevr/contentseer/internal/domain"
)

func newTestClient() *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(logger)
}

type echoResponse struct {
	Topics []string `json:"topics"`
}

func (r *echoResponse) Validate() error {
	if r.Topics == nil {
		return fmt.Errorf("missing topics")
	}
	return nil
}

func TestClient_Post_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "ContentSeer/1.0", r.Header.Get("User-Agent"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(7), payload["term_id"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"topics": ["a", "b"]}`)
	}))
	defer srv.Close()

	var out echoResponse
	err := newTestClient().Post(context.Background(), srv.URL, map[string]any{"term_id": 7}, &out)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.Topics)
}

func TestClient_Post_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var out echoResponse
	err := newTestClient().Post(context.Background(), srv.URL, nil, &out)

	require.ErrorIs(t, err, domain.ErrWebhookResponse)
	assert.NotErrorIs(t, err, domain.ErrWebhookTransport)
}

func TestClient_Post_UndecodableBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer srv.Close()

	var out echoResponse
	err := newTestClient().Post(context.Background(), srv.URL, nil, &out)

	require.ErrorIs(t, err, domain.ErrWebhookResponse)
}

func TestClient_Post_ContractViolation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message": "ok but wrong shape"}`)
	}))
	defer srv.Close()

	var out echoResponse
	err := newTestClient().Post(context.Background(), srv.URL, nil, &out)

	require.ErrorIs(t, err, domain.ErrWebhookContract)
	assert.NotErrorIs(t, err, domain.ErrWebhookResponse)
}

func TestClient_Post_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out echoResponse
	err := newTestClient().Post(ctx, srv.URL, nil, &out)

	require.ErrorIs(t, err, domain.ErrWebhookTransport)
}

func TestClient_Post_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	var out echoResponse
	err := newTestClient().Post(context.Background(), srv.URL, nil, &out)

	require.ErrorIs(t, err, domain.ErrWebhookTransport)
}

func TestClient_Post_NilOutSkipsDecoding(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer srv.Close()

	err := newTestClient().Post(context.Background(), srv.URL, map[string]string{"k": "v"}, nil)

	require.NoError(t, err)
}
