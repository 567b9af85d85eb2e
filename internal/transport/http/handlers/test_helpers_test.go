package http_handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/unifiedcommerce/shop-service/internal/application/auth"
	"github.com/unifiedcommerce/shop-service/internal/application/catalog"
	"github.com/unifiedcommerce/shop-service/internal/application/shopping"
	"github.com/unifiedcommerce/shop-service/internal/infrastructure/jsonfile"
	"github.com/unifiedcommerce/shop-service/internal/infrastructure/memory"
	"github.com/unifiedcommerce/shop-service/internal/infrastructure/security"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/middleware"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/response"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/router"
)

// newTestRouter wires real services over a throwaway flat-file store, so
// handler tests exercise the same code paths as a running server.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store, err := jsonfile.Open(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	hasher := security.NewBcryptHasher(4)
	signer := security.NewJWTSigner("test-secret", "shop-service")
	pub := memory.NewNoopPublisher()

	authSvc := auth.NewService(jsonfile.NewUserRepo(store), hasher, signer, pub, auth.Config{
		TokenTTL: time.Hour,
	})
	catalogSvc := catalog.NewService(jsonfile.NewProductRepo(store))
	shoppingSvc := shopping.NewService(jsonfile.NewShoppingListRepo(store))

	h, err := router.New(router.Deps{
		Health:       NewHealthHandler(nil, "jsonfile"),
		Auth:         NewAuthHandler(authSvc),
		Products:     NewProductHandler(catalogSvc),
		ShoppingList: NewShoppingListHandler(shoppingSvc),
		AuthMW:       middleware.Auth(signer, response.WriteError),
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return h
}

func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func mustReadJSON(t *testing.T, r io.Reader, out any) {
	t.Helper()

	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode json failed; body=%s err=%v", string(raw), err)
	}
}

func registerPayload(email string) map[string]any {
	return map[string]any{
		"name":       "Ada",
		"email":      email,
		"phone":      "0400000000",
		"nationalID": "A1234567",
		"password":   "Password123",
	}
}
