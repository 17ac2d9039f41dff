package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestFixturesHelper(t *testing.T) {
	team := SampleTeam("t1")
	if team.ID != "t1" || team.Name == "" || team.City == "" {
		t.Fatalf("unexpected team fixture %+v", team)
	}
	if f := SampleFields(); f.IsEmpty() || f.Name == team.Name {
		t.Fatalf("expected distinct non-empty fields, got %+v", f)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestServeFormEncodesValues(t *testing.T) {
	var got string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		got = r.PostForm.Get("name")
		w.WriteHeader(http.StatusNoContent)
	})

	rr := ServeForm(handler, "/teams", url.Values{"name": {"New York Jets"}})
	AssertStatus(t, rr, http.StatusNoContent)
	if got != "New York Jets" {
		t.Fatalf("expected form value decoded, got %q", got)
	}
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown called once")
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen error")
	}
	_ = e.Shutdown(context.Background())
	if e.ShutdownCalls != 1 || e.Addr() == "" || e.Handler() == nil {
		t.Fatalf("unexpected ErrHTTPServer state %+v", e)
	}

	c := &CloseableHTTPServer{}
	if err := c.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
	_ = c.Shutdown(context.Background())
	if c.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for CloseableHTTPServer")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}
