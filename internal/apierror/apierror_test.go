package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMensaje(t *testing.T) {
	assert.Equal(t, "", Mensaje(nil))
	assert.Equal(t, "Presupuesto no encontrado", Mensaje(New("Presupuesto no encontrado")))
	assert.Equal(t, MensajeGenerico, Mensaje(errors.New("connection refused")))
	assert.Equal(t, MensajeGenerico, Mensaje(&APIError{Status: http.StatusInternalServerError}))
}

func TestMensajeConErrorEnvuelto(t *testing.T) {
	// el mensaje del servidor sobrevive aunque alguien envuelva el error
	envuelto := fmt.Errorf("api: PUT /presupuestos/1: %w", NewStatus(http.StatusBadRequest, "Estado inválido"))
	assert.Equal(t, "Estado inválido", Mensaje(envuelto))
}

func TestSesionInvalida(t *testing.T) {
	assert.True(t, NewStatus(http.StatusUnauthorized, "Sesión expirada").SesionInvalida())
	assert.False(t, NewStatus(http.StatusForbidden, "Sin permiso").SesionInvalida())
}
