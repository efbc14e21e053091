//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"pricing-panel/tests/common/builder"
)

const (
	acceptPath    = "/webhook/accept-price"
	promotionPath = "/webhook/publish-promotion"
)

// WorkflowCall is one request received by the fake automation webhooks.
type WorkflowCall struct {
	Path string
	Body json.RawMessage
}

// FakeUpstream serves the catalog API and the workflow webhooks the service calls out to.
type FakeUpstream struct {
	server *httptest.Server

	mu            sync.Mutex
	calls         []WorkflowCall
	productTotal  int
	workflowReply string
}

func newFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{productTotal: 5, workflowReply: `{"status":"queued"}`}
	mux := http.NewServeMux()
	mux.HandleFunc("/service/platform/catalog/v1.0/company/", f.serveCatalog)
	mux.HandleFunc(acceptPath, f.serveWorkflow)
	mux.HandleFunc(promotionPath, f.serveWorkflow)
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeUpstream) URL() string {
	return f.server.URL
}

// Reset forgets recorded calls and restores the default catalog size.
func (f *FakeUpstream) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
	f.productTotal = 5
	f.workflowReply = `{"status":"queued"}`
}

func (f *FakeUpstream) SetProductTotal(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productTotal = n
}

func (f *FakeUpstream) SetWorkflowReply(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workflowReply = body
}

func (f *FakeUpstream) Calls() []WorkflowCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]WorkflowCall, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeUpstream) serveCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" || r.Header.Get("x-company-id") == "" {
		http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	if !strings.HasSuffix(r.URL.Path, "/products/") && !strings.HasSuffix(r.URL.Path, "/raw-products/") {
		http.NotFound(w, r)
		return
	}

	pageNo, _ := strconv.Atoi(r.URL.Query().Get("page_no"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	pageSize = max(pageSize, 1)

	f.mu.Lock()
	total := f.productTotal
	f.mu.Unlock()

	pages := builder.NewPages(total, pageSize)
	if pageNo < 1 || pageNo > len(pages) {
		_, _ = io.WriteString(w, `{"items":[],"page":{"has_next":false}}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pages[pageNo-1])
}

func (f *FakeUpstream) serveWorkflow(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, WorkflowCall{Path: r.URL.Path, Body: body})
	reply := f.workflowReply
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, reply)
}
