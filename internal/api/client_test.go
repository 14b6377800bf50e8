package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tallerctl/internal/apierror"
	"tallerctl/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnviaCabeceras(t *testing.T) {
	var capturada http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturada = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"presupuestos":[],"clientes":[],"vehiculos":[],"productos":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "token-123")
	_, err := c.ObtenerSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-123", capturada.Get("Authorization"))
	assert.Equal(t, "application/json", capturada.Get("Content-Type"))
	assert.NotEmpty(t, capturada.Get("X-Request-ID"))
}

func TestSinTokenNoEnviaAuthorization(t *testing.T) {
	var capturada http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturada = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").ListarPresupuestos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, capturada.Get("Authorization"))
}

func TestDecodificaElSobreDeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Presupuesto no encontrado"}`))
	}))
	defer srv.Close()

	err := New(srv.URL, "").EliminarPresupuesto(context.Background(), 9)
	require.Error(t, err)

	apiErr, ok := err.(*apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Presupuesto no encontrado", apiErr.Message)
}

func TestErrorSinSobreUsaMensajeGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	err := New(srv.URL, "").EliminarPresupuesto(context.Background(), 1)
	require.Error(t, err)

	apiErr, ok := err.(*apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, apierror.MensajeGenerico, apiErr.Message)
}

func TestSesionInvalida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Sesión expirada"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "viejo").ObtenerSnapshot(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*apierror.APIError)
	require.True(t, ok)
	assert.True(t, apiErr.SesionInvalida())
}

func TestCrearEnviaPayloadPlano(t *testing.T) {
	var cuerpo []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cuerpo, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":10,"estado":"PENDIENTE","total_estimado":0,"fecha_creacion":"2026-03-12T10:30:00Z"}`))
	}))
	defer srv.Close()

	cinco := 5
	resp, err := New(srv.URL, "").CrearPresupuesto(context.Background(), dto.CrearPresupuestoRequest{
		ClienteID:     &cinco,
		Estado:        "PENDIENTE",
		TotalEstimado: decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.ID)
	assert.JSONEq(t,
		`{"cliente_id":5,"vehiculo_id":null,"estado":"PENDIENTE","total_estimado":"0","productos":null}`,
		string(cuerpo))
}

func TestErrorDeRedSePropaga(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // servidor caído

	_, err := New(srv.URL, "").ObtenerSnapshot(context.Background())
	require.Error(t, err)
	_, esAPIError := err.(*apierror.APIError)
	assert.False(t, esAPIError, "un fallo de transporte no es un error del servidor")
}
