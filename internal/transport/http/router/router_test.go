package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// ---------- fakes ----------

func write(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}

type fakeHealth struct{}

func (fakeHealth) Healthz(w http.ResponseWriter, r *http.Request) { write(w, 200, "ok") }
func (fakeHealth) Readyz(w http.ResponseWriter, r *http.Request)  { write(w, 200, "ready") }

type fakeAuth struct{}

func (fakeAuth) Register(w http.ResponseWriter, r *http.Request)      { write(w, 200, "register") }
func (fakeAuth) Login(w http.ResponseWriter, r *http.Request)         { write(w, 200, "login") }
func (fakeAuth) Me(w http.ResponseWriter, r *http.Request)            { write(w, 200, "me") }
func (fakeAuth) UpdateAccount(w http.ResponseWriter, r *http.Request) { write(w, 200, "update") }
func (fakeAuth) DeleteAccount(w http.ResponseWriter, r *http.Request) { write(w, 200, "delete") }

type fakeProducts struct{}

func (fakeProducts) List(w http.ResponseWriter, r *http.Request)   { write(w, 200, "list") }
func (fakeProducts) Get(w http.ResponseWriter, r *http.Request)    { write(w, 200, "get") }
func (fakeProducts) Create(w http.ResponseWriter, r *http.Request) { write(w, 200, "create") }
func (fakeProducts) Update(w http.ResponseWriter, r *http.Request) { write(w, 200, "update") }
func (fakeProducts) Delete(w http.ResponseWriter, r *http.Request) { write(w, 200, "delete") }

type fakeLists struct{}

func (fakeLists) CreateList(w http.ResponseWriter, r *http.Request) { write(w, 200, "create_list") }
func (fakeLists) Lists(w http.ResponseWriter, r *http.Request)      { write(w, 200, "lists") }
func (fakeLists) DeleteList(w http.ResponseWriter, r *http.Request) { write(w, 200, "delete_list") }
func (fakeLists) AddItem(w http.ResponseWriter, r *http.Request)    { write(w, 200, "add_item") }
func (fakeLists) Items(w http.ResponseWriter, r *http.Request)      { write(w, 200, "items") }
func (fakeLists) DeleteItem(w http.ResponseWriter, r *http.Request) { write(w, 200, "delete_item") }

func noopMW(next http.Handler) http.Handler { return next }

func rejectMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func validDeps() Deps {
	return Deps{
		Health:       fakeHealth{},
		Auth:         fakeAuth{},
		Products:     fakeProducts{},
		ShoppingList: fakeLists{},
		AuthMW:       noopMW,
	}
}

// ---------- tests ----------

func TestNew_NilDeps_ReturnsError(t *testing.T) {
	for _, mutate := range []func(*Deps){
		func(d *Deps) { d.Health = nil },
		func(d *Deps) { d.Auth = nil },
		func(d *Deps) { d.Products = nil },
		func(d *Deps) { d.ShoppingList = nil },
		func(d *Deps) { d.AuthMW = nil },
	} {
		d := validDeps()
		mutate(&d)
		if _, err := New(d); err == nil {
			t.Fatalf("expected error for %+v", d)
		}
	}
}

func TestRoutes_Dispatch(t *testing.T) {
	h, err := New(validDeps())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/healthz", "ok"},
		{http.MethodGet, "/readyz", "ready"},
		{http.MethodPost, "/api/auth/register", "register"},
		{http.MethodPost, "/api/auth/login", "login"},
		{http.MethodGet, "/api/auth/me", "me"},
		{http.MethodPut, "/api/auth/update", "update"},
		{http.MethodDelete, "/api/auth/delete", "delete"},
		{http.MethodGet, "/api/products/", "list"},
		{http.MethodGet, "/api/products/p1", "get"},
		{http.MethodPost, "/api/products/", "create"},
		{http.MethodPut, "/api/products/p1", "update"},
		{http.MethodDelete, "/api/products/p1", "delete"},
		{http.MethodPost, "/api/shopping-lists/", "create_list"},
		{http.MethodGet, "/api/shopping-lists/", "lists"},
		{http.MethodDelete, "/api/shopping-lists/l1", "delete_list"},
		{http.MethodPost, "/api/shopping-lists/l1/items", "add_item"},
		{http.MethodGet, "/api/shopping-lists/l1/items", "items"},
		{http.MethodDelete, "/api/shopping-lists/l1/items/i1", "delete_item"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200, got %d", tc.method, tc.path, rec.Code)
		}
		if got := rec.Body.String(); got != tc.body {
			t.Fatalf("%s %s: expected %q, got %q", tc.method, tc.path, tc.body, got)
		}
	}
}

func TestRoutes_AuthMWGuardsProtectedRoutes(t *testing.T) {
	d := validDeps()
	d.AuthMW = rejectMW
	h, err := New(d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	protected := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPut, "/api/auth/update"},
		{http.MethodDelete, "/api/auth/delete"},
		{http.MethodPost, "/api/products/"},
		{http.MethodPut, "/api/products/p1"},
		{http.MethodDelete, "/api/products/p1"},
		{http.MethodGet, "/api/shopping-lists/"},
	}
	for _, tc := range protected {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}

	// public routes stay open
	open := []struct{ method, path string }{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/products/"},
		{http.MethodGet, "/api/products/p1"},
		{http.MethodGet, "/healthz"},
	}
	for _, tc := range open {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestRoutes_LoginRateLimitApplied(t *testing.T) {
	d := validDeps()
	d.LoginRL = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	h, err := New(d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	// register is not limited
	req = httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
