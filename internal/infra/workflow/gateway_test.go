//go:build unit

package workflow_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pricing-panel/internal/infra"
	"pricing-panel/internal/infra/upstream"
	"pricing-panel/internal/infra/workflow"
	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	path        string
	contentType string
	body        string
}

func newWorkflowServer(t *testing.T, status int, reply string, got *received) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = received{path: r.URL.Path, contentType: r.Header.Get("Content-Type"), body: string(body)}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newGateway(srv *httptest.Server) *workflow.Gateway {
	cfg := config.WorkflowConfig{
		AcceptURL:    srv.URL + "/accept",
		PromotionURL: srv.URL + "/promotion",
		Timeout:      2 * time.Second,
	}
	return workflow.NewGateway(cfg, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGateway_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("acceptance sends an empty object", func(t *testing.T) {
		var got received
		srv := newWorkflowServer(t, http.StatusOK, `{"status":"started"}`, &got)

		reply, err := newGateway(srv).Execute(ctx, shared.WorkflowPriceAcceptance, nil)
		require.NoError(t, err)
		assert.Equal(t, "/accept", got.path)
		assert.Equal(t, "application/json", got.contentType)
		assert.JSONEq(t, `{}`, got.body)
		assert.Equal(t, http.StatusOK, reply.StatusCode)
		assert.JSONEq(t, `{"status":"started"}`, string(reply.Body))
	})

	t.Run("promotion payload is forwarded verbatim", func(t *testing.T) {
		var got received
		srv := newWorkflowServer(t, http.StatusAccepted, ``, &got)
		payload := json.RawMessage(`{"scheme_name":"Diwali Dhamaka","discount_percentage":20}`)

		reply, err := newGateway(srv).Execute(ctx, shared.WorkflowPromotion, payload)
		require.NoError(t, err)
		assert.Equal(t, "/promotion", got.path)
		assert.JSONEq(t, string(payload), got.body)
		assert.Equal(t, http.StatusAccepted, reply.StatusCode)
		assert.JSONEq(t, `{}`, string(reply.Body))
	})

	t.Run("plain text reply becomes a JSON string", func(t *testing.T) {
		var got received
		srv := newWorkflowServer(t, http.StatusOK, `Workflow was started`, &got)

		reply, err := newGateway(srv).Execute(ctx, shared.WorkflowPriceAcceptance, nil)
		require.NoError(t, err)
		assert.Equal(t, `"Workflow was started"`, string(reply.Body))
	})

	t.Run("non-2xx is an upstream failure", func(t *testing.T) {
		var got received
		srv := newWorkflowServer(t, http.StatusInternalServerError, `boom`, &got)

		reply, err := newGateway(srv).Execute(ctx, shared.WorkflowPriceAcceptance, nil)
		assert.Nil(t, reply)
		assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
		assert.ErrorIs(t, err, upstream.ErrUnexpectedStatus)
	})

	t.Run("unconfigured workflow", func(t *testing.T) {
		gw := workflow.NewGateway(config.WorkflowConfig{}, http.DefaultClient, slog.New(slog.NewTextHandler(io.Discard, nil)))
		_, err := gw.Execute(ctx, shared.WorkflowPromotion, nil)
		assert.ErrorIs(t, err, workflow.ErrUnknownWorkflow)
	})
}
