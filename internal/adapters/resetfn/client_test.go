package resetfn

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/SscSPs/freelanceos/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoke_SendsPayloadAndDecodesReply(t *testing.T) {
	var got dto.ResetFunctionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/functions/v1/database-reset", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"duration":321,"recordsAffected":{"projects":6,"notes":15,"bills":9},"message":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "/functions/v1/database-reset", "service-key", time.Second)
	reply, err := c.Invoke(context.Background(), dto.ResetFunctionRequest{TriggeredBy: "manual", Force: true})

	require.NoError(t, err)
	assert.Equal(t, dto.ResetFunctionRequest{TriggeredBy: "manual", Force: true}, got)
	assert.Equal(t, http.StatusOK, reply.StatusCode)
	assert.True(t, reply.Success)
	assert.Equal(t, int64(321), reply.Duration)
	require.NotNil(t, reply.RecordsAffected)
	assert.Equal(t, 6, reply.RecordsAffected.Projects)
	assert.Equal(t, srv.URL+"/functions/v1/database-reset", c.Endpoint())
}

func TestInvoke_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<html>Not Found</html>"))
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL, "functions/v1/database-reset", "k", time.Second).
		Invoke(context.Background(), dto.ResetFunctionRequest{TriggeredBy: "api", DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, reply.StatusCode)
	assert.False(t, reply.Success)
	assert.Empty(t, reply.Error)
}

func TestInvoke_HTMLSuccessBodyIsLogged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := middleware.WithLogger(context.Background(), logger)

	reply, err := NewClient(srv.URL, "/functions/v1/database-reset", "k", time.Second).
		Invoke(ctx, dto.ResetFunctionRequest{TriggeredBy: "manual"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, reply.StatusCode)
	assert.False(t, reply.Success)
	assert.Contains(t, logs.String(), "Reset reply is not JSON")
	assert.Contains(t, logs.String(), "content_type=text/html")
}

func TestInvoke_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "/functions/v1/database-reset", "k", time.Second).
		Invoke(context.Background(), dto.ResetFunctionRequest{TriggeredBy: "api"})

	assert.Error(t, err)
}

func TestInvoke_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "/functions/v1/database-reset", "k", 20*time.Millisecond).
		Invoke(context.Background(), dto.ResetFunctionRequest{TriggeredBy: "api"})

	assert.Error(t, err)
}
