package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

func TestList_BareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"Perros"},{"id":2,"nombre":"Gatos"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, zerolog.Nop())
	items, err := list[domain.Category](context.Background(), c, "/categorias/", nil)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(items) != 2 || items[1].Name != "Gatos" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestList_PaginatedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":5,"nombre":"Verano"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, zerolog.Nop())
	items, err := list[domain.Collection](context.Background(), c, "/colecciones/", nil)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 5 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestClient_ErrorCarriesUpstreamDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Stock insuficiente para el producto 3."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, zerolog.Nop())
	err := c.post(context.Background(), "/ventas/", map[string]any{}, nil)

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", ue.StatusCode)
	}
	if ue.Detail != "Stock insuficiente para el producto 3." {
		t.Fatalf("unexpected detail: %q", ue.Detail)
	}
}

func TestTokenClient_IssueTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "mrivera" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access":"A1","refresh":"R1"}`))
	}))
	defer srv.Close()

	tokens := NewTokenClient(NewClient(srv.URL, nil, zerolog.Nop()))

	pair, err := tokens.IssueTokens(context.Background(), "mrivera", "secret")
	if err != nil {
		t.Fatalf("IssueTokens returned error: %v", err)
	}
	if pair.AccessToken != "A1" || pair.RefreshToken != "R1" {
		t.Fatalf("unexpected pair: %+v", pair)
	}

	if _, err := tokens.IssueTokens(context.Background(), "mrivera", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenClient_RefreshAccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token/refresh/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var req struct {
			Refresh string `json:"refresh"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Refresh != "R1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Token is invalid or expired"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access":"A2"}`))
	}))
	defer srv.Close()

	tokens := NewTokenClient(NewClient(srv.URL, nil, zerolog.Nop()))

	access, err := tokens.RefreshAccess(context.Background(), "R1")
	if err != nil {
		t.Fatalf("RefreshAccess returned error: %v", err)
	}
	if access != "A2" {
		t.Fatalf("unexpected access token: %q", access)
	}

	if _, err := tokens.RefreshAccess(context.Background(), "stale"); err == nil {
		t.Fatalf("expected an error for a rejected refresh token")
	}
}

func TestFilterQuery(t *testing.T) {
	stockMin := 5
	f := domain.ProductFilter{
		Name:         "collar",
		CategoryID:   2,
		PriceMin:     "10.00",
		StockMin:     &stockMin,
		Sizes:        "M,L",
		LowStockOnly: true,
	}

	got := filterQuery(f)
	want := url.Values{
		"nombre":     {"collar"},
		"categoria":  {"2"},
		"precio_min": {"10.00"},
		"stock_min":  {"5"},
		"tallas":     {"M,L"},
		"stock_bajo": {"true"},
	}
	if got.Encode() != want.Encode() {
		t.Fatalf("filterQuery mismatch:\n got %s\nwant %s", got.Encode(), want.Encode())
	}

	if q := filterQuery(domain.ProductFilter{}); len(q) != 0 {
		t.Fatalf("empty filter must produce no parameters, got %s", q.Encode())
	}
}
