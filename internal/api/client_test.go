package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// memVault is an in-memory session.Vault for tests.
type memVault struct {
	token string
}

func (m *memVault) Current() (string, bool) { return m.token, m.token != "" }
func (m *memVault) Set(t string) error      { m.token = t; return nil }
func (m *memVault) Clear() error            { m.token = ""; return nil }

func TestSendAttachesBearerAtCallTime(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	vault := &memVault{}
	c := New(srv.URL, vault)
	ctx := context.Background()

	if _, err := c.Send(ctx, http.MethodGet, "/x", nil); err != nil {
		t.Fatalf("guest send: %v", err)
	}

	// token set after construction must ride on the next call
	vault.Set("tok-99")
	if _, err := c.Send(ctx, http.MethodGet, "/x", nil); err != nil {
		t.Fatalf("authed send: %v", err)
	}

	if gotAuth[0] != "" {
		t.Errorf("guest call carried auth %q", gotAuth[0])
	}
	if gotAuth[1] != "Bearer tok-99" {
		t.Errorf("authed call carried %q", gotAuth[1])
	}
}

func TestSendContentType(t *testing.T) {
	var gotCT, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &memVault{})
	ctx := context.Background()

	if _, err := c.Send(ctx, http.MethodPost, "/x", map[string]int{"a": 1}); err != nil {
		t.Fatalf("post: %v", err)
	}
	if gotCT != "application/json" {
		t.Errorf("POST content-type = %q", gotCT)
	}
	if gotBody != `{"a":1}` {
		t.Errorf("POST body = %q", gotBody)
	}

	if _, err := c.Send(ctx, http.MethodGet, "/x", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotCT != "" {
		t.Errorf("GET content-type = %q, want none", gotCT)
	}
}

func TestSendFaultWithServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"forbidden"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &memVault{})
	_, err := c.Send(context.Background(), http.MethodGet, "/x", nil)

	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("want *Fault, got %T (%v)", err, err)
	}
	if fault.Status != 403 {
		t.Errorf("status = %d", fault.Status)
	}
	if fault.Message != "forbidden" {
		t.Errorf("message = %q, want %q", fault.Message, "forbidden")
	}
}

func TestSendFaultGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL, &memVault{})
	_, err := c.Send(context.Background(), http.MethodGet, "/x", nil)

	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("want *Fault, got %T", err)
	}
	if fault.Message != "network fault: 500" {
		t.Errorf("fallback message = %q", fault.Message)
	}
}

func TestLoginArchivesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
	}))
	defer srv.Close()

	vault := &memVault{}
	c := New(srv.URL, vault)
	out, err := c.Login(context.Background(), "me@x.io", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.AccessToken != "tok-1" {
		t.Errorf("access token = %q", out.AccessToken)
	}
	if tok, ok := vault.Current(); !ok || tok != "tok-1" {
		t.Errorf("vault after login = %q, %v", tok, ok)
	}

	if err := c.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !c.Guest() {
		t.Error("client should be guest after logout")
	}
}

func TestRegisterValidatesBeforeNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"access_token":"t"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &memVault{})
	ctx := context.Background()

	cases := []struct {
		name                           string
		password, confirm, alias, want string
	}{
		{"short password", "abc", "abc", "alias", "password must be at least 6 characters"},
		{"mismatch", "secret1", "secret2", "alias", "passwords do not match"},
		{"short alias", "secret1", "secret1", "ab", "alias must be at least 3 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Register(ctx, "me@x.io", tc.password, tc.confirm, tc.alias)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if string(verr) != tc.want {
				t.Errorf("message = %q, want %q", verr, tc.want)
			}
		})
	}

	if calls != 0 {
		t.Errorf("validation failures reached the network %d times", calls)
	}

	if _, err := c.Register(ctx, "me@x.io", "secret1", "secret1", "alias"); err != nil {
		t.Fatalf("valid register: %v", err)
	}
	if calls != 1 {
		t.Errorf("valid register made %d calls", calls)
	}
}

func TestSendNoContentReplyIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, &memVault{})
	ctx := context.Background()

	raw, err := c.Send(ctx, http.MethodDelete, "/saved-jobs/7", nil)
	if err != nil {
		t.Fatalf("empty-body 2xx: %v", err)
	}
	if raw != nil {
		t.Errorf("raw = %q, want nil", raw)
	}

	// the delete path the backend actually answers 204 on
	if err := c.UnsaveListing(ctx, 7); err != nil {
		t.Fatalf("unsave against 204: %v", err)
	}
}
