package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type redirectRecorder struct {
	sessionIDs []string
	err        error
}

func (r *redirectRecorder) redirect(_ context.Context, sessionID string) error {
	r.sessionIDs = append(r.sessionIDs, sessionID)
	return r.err
}

func TestCheckoutRedirectsOnce(t *testing.T) {
	var gotBody sessionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create-checkout-session", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]string{"id": "cs_test_123"})
	}))
	defer server.Close()

	rec := &redirectRecorder{}
	client := NewClient(server.URL, rec.redirect)

	err := client.Checkout(context.Background(), "romantic", Config{Style: "classical", Message: "Pour toi"})

	require.NoError(t, err)
	assert.Equal(t, []string{"cs_test_123"}, rec.sessionIDs)
	assert.Equal(t, "romantic", gotBody.ProductID)
	assert.Equal(t, "classical", gotBody.Config.Style)
	assert.Equal(t, "Pour toi", gotBody.Config.Message)
}

func TestCheckoutSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Produit non trouvé"})
	}))
	defer server.Close()

	rec := &redirectRecorder{}
	client := NewClient(server.URL, rec.redirect)

	err := client.Checkout(context.Background(), "unknown", Config{Style: "pop", Message: "Salut"})

	require.Error(t, err)
	assert.Equal(t, "Produit non trouvé", err.Error())
	assert.Empty(t, rec.sessionIDs)
}

func TestCheckoutFallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	rec := &redirectRecorder{}
	client := NewClient(server.URL, rec.redirect)

	err := client.Checkout(context.Background(), "party", Config{Style: "funk", Message: "Fête"})

	require.Error(t, err)
	assert.Equal(t, "Payment failed", err.Error())
	assert.Empty(t, rec.sessionIDs)
}

func TestCheckoutSurfacesRedirectError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "cs_test_456"})
	}))
	defer server.Close()

	rec := &redirectRecorder{err: errors.New("browser navigation failed")}
	client := NewClient(server.URL, rec.redirect)

	err := client.Checkout(context.Background(), "birthday", Config{Style: "pop", Message: "Joyeux anniversaire"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect to checkout")
	assert.Contains(t, err.Error(), "browser navigation failed")
	// The redirect primitive was still invoked exactly once.
	assert.Equal(t, []string{"cs_test_456"}, rec.sessionIDs)
}

func TestCheckoutNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	rec := &redirectRecorder{}
	client := NewClient(server.URL, rec.redirect)

	err := client.Checkout(context.Background(), "birthday", Config{Style: "pop", Message: "Joyeux anniversaire"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create checkout session")
	assert.Empty(t, rec.sessionIDs)
}
