package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// ProviderCall is one request seen by FakeProvider.
type ProviderCall struct {
	Query string
	From  string
	To    string
	AppID string
	Salt  string
	Sign  string
}

// FakeProvider is an httptest server that speaks the translation provider's
// form protocol. By default it echoes q prefixed with "[to] ".
type FakeProvider struct {
	Server *httptest.Server

	mu      sync.Mutex
	calls   []ProviderCall
	respond func(call ProviderCall) (status int, body any)
}

// NewFakeProvider starts a fake provider that is closed when the test ends.
func NewFakeProvider(t testing.TB) *FakeProvider {
	t.Helper()
	f := &FakeProvider{}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the endpoint to configure as the provider URL.
func (f *FakeProvider) URL() string {
	return f.Server.URL
}

// RespondWith replaces the response function.
func (f *FakeProvider) RespondWith(fn func(call ProviderCall) (int, any)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.respond = fn
}

// FailWith makes every request return the given provider error code.
func (f *FakeProvider) FailWith(code, msg string) {
	f.RespondWith(func(ProviderCall) (int, any) {
		return http.StatusOK, map[string]string{"error_code": code, "error_msg": msg}
	})
}

// Calls returns a copy of the requests received so far.
func (f *FakeProvider) Calls() []ProviderCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ProviderCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// EchoResponse is the default success body for call.
func EchoResponse(call ProviderCall) (int, any) {
	return http.StatusOK, map[string]any{
		"from": call.From,
		"to":   call.To,
		"trans_result": []map[string]string{
			{"src": call.Query, "dst": "[" + call.To + "] " + call.Query},
		},
	}
}

func (f *FakeProvider) handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	call := ProviderCall{
		Query: r.PostForm.Get("q"),
		From:  r.PostForm.Get("from"),
		To:    r.PostForm.Get("to"),
		AppID: r.PostForm.Get("appid"),
		Salt:  r.PostForm.Get("salt"),
		Sign:  r.PostForm.Get("sign"),
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	respond := f.respond
	f.mu.Unlock()

	if respond == nil {
		respond = EchoResponse
	}
	status, body := respond(call)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
