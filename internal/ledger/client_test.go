// internal/ledger/client_test.go
package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/domain"
)

func TestClientHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"id":"e1"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "token-123")
	entry, err := client.CreateEntry(context.Background(), domain.CreateEntryRequest{
		Value: 150, Date: "2025-11-25", ModalityID: "m1",
	})
	require.NoError(t, err)
	assert.Equal(t, "e1", entry.ID)
}

func TestClientSemTokenNaoEnviaAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").ListEntries(context.Background(), "", "")
	require.NoError(t, err)
}

func TestCreateEntryPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/financial-entries", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"e1"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "t")
	_, err := client.CreateEntry(context.Background(), domain.CreateEntryRequest{
		Value:           120.5,
		Date:            "2025-11-25",
		ModalityID:      "m1",
		Description:     "Venda - Recebimento Crediario",
		IsCreditPayment: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 120.5, got["value"])
	assert.Equal(t, "2025-11-25", got["date"])
	assert.Equal(t, true, got["is_credit_payment"])

	// reexecutar o mesmo import gera um segundo POST idêntico; a proteção
	// contra duplicata é responsabilidade do operador (dry run primeiro)
	_, err = client.CreateEntry(context.Background(), domain.CreateEntryRequest{
		Value: 120.5, Date: "2025-11-25", ModalityID: "m1",
	})
	require.NoError(t, err)
}

func TestListEntriesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025-11-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2025-11-30", r.URL.Query().Get("end_date"))
		w.Write([]byte(`[{"id":"e1","value":10,"date":"2025-11-05","modality_id":"m1"}]`))
	}))
	defer srv.Close()

	entries, err := New(srv.URL, "t").ListEntries(context.Background(), "2025-11-01", "2025-11-30")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)
}

func TestAPIErrorTruncado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(strings.Repeat("x", 900)))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "t").CreateEntry(context.Background(), domain.CreateEntryRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Len(t, apiErr.Body, 503) // 500 + "..."
	assert.Contains(t, apiErr.Error(), "status 422")
}

func TestDeleteEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/financial-entries/e9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL, "t").DeleteEntry(context.Background(), "e9"))
}

func TestToggleModality(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/payment-modalities/m1/toggle", r.URL.Path)
		w.Write([]byte(`{"id":"m1","name":"Pix Sicredi","color":"#00C853","is_active":false}`))
	}))
	defer srv.Close()

	mod, err := New(srv.URL, "t").ToggleModality(context.Background(), "m1")
	require.NoError(t, err)
	assert.False(t, mod.IsActive)
}

func TestPayInstallment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/credit-purchases/cp1/installments/i2/pay", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "m1", payload["modality_id"])
		w.Write([]byte(`{"id":"i2","numero_parcela":2,"valor":100,"data_vencimento":"2025-12-10","status":"pago"}`))
	}))
	defer srv.Close()

	inst, err := New(srv.URL, "t").PayInstallment(context.Background(), "cp1", "i2", "m1")
	require.NoError(t, err)
	assert.Equal(t, domain.InstallmentPago, inst.Status)
}

func TestCreateAccountBoletoSemPaid(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"a1"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "t").CreateAccount(context.Background(), domain.CreateAccountRequest{
		Value: 320, Date: "2025-11-05", Description: "Boleto", Type: domain.AccountTypeBoleto,
	})
	require.NoError(t, err)

	// boletos são criados sem o campo paid no payload
	_, existe := got["paid"]
	assert.False(t, existe)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "user-1",
	}).SignedString([]byte("segredo"))
	require.NoError(t, err)

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))

	assert.False(t, TokenExpired(token, time.Now()))
	assert.True(t, TokenExpired(token, exp.Add(time.Minute)))

	// token ilegível conta como vencido
	assert.True(t, TokenExpired("nao-e-um-jwt", time.Now()))

	semExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
	}).SignedString([]byte("segredo"))
	require.NoError(t, err)
	assert.True(t, TokenExpired(semExp, time.Now()))
}
