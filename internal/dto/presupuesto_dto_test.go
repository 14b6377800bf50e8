package dto

import (
	"encoding/json"
	"testing"

	"tallerctl/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

// Los payloads de escritura sólo llevan claves foráneas y escalares: nunca
// nombre de cliente, matrícula ni nombre/categoría de producto.
func TestPayloadDeEscrituraEsPlano(t *testing.T) {
	req := CrearPresupuestoRequest{
		ClienteID:     intPtr(5),
		VehiculoID:    intPtr(3),
		Estado:        model.EstadoPendiente,
		TotalEstimado: decimal.NewFromFloat(185.5),
		Productos:     []ItemPresupuestoRequest{{ProductoID: 1, Cantidad: 2}},
	}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))

	for _, prohibida := range []string{"cliente", "vehiculo", "nombre", "matricula", "categoria"} {
		assert.NotContains(t, payload, prohibida)
	}
	assert.Contains(t, payload, "cliente_id")
	assert.Contains(t, payload, "vehiculo_id")

	linea := payload["productos"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"producto_id": float64(1), "cantidad": float64(2)}, linea)
}

func TestPatchParcialOmiteCamposNulos(t *testing.T) {
	estado := model.EstadoRealizado
	raw, err := json.Marshal(ActualizarPresupuestoRequest{Estado: &estado})
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, map[string]interface{}{"estado": "REALIZADO"}, payload)
}

func TestValidacionDeBorrador(t *testing.T) {
	valido := CrearPresupuestoRequest{
		Estado:        model.EstadoPendiente,
		TotalEstimado: decimal.Zero,
	}
	assert.NoError(t, Validate.Struct(valido), "líneas vacías son válidas")

	casos := map[string]CrearPresupuestoRequest{
		"sin estado":         {TotalEstimado: decimal.Zero},
		"estado desconocido": {Estado: "APROBADO"},
		"total negativo":     {Estado: model.EstadoPendiente, TotalEstimado: decimal.NewFromInt(-1)},
		"cantidad cero": {
			Estado:    model.EstadoPendiente,
			Productos: []ItemPresupuestoRequest{{ProductoID: 1, Cantidad: 0}},
		},
	}
	for nombre, req := range casos {
		assert.Error(t, Validate.Struct(req), nombre)
	}
}

// El patch parcial respeta los mismos invariantes que el alta: un total
// negativo o una referencia inválida no deben pasar la validación.
func TestValidacionDelPatch(t *testing.T) {
	assert.NoError(t, Validate.Struct(ActualizarPresupuestoRequest{}), "patch vacío es válido")

	total := decimal.NewFromInt(175)
	valido := ActualizarPresupuestoRequest{TotalEstimado: &total, ClienteID: intPtr(5)}
	assert.NoError(t, Validate.Struct(valido))

	negativo := decimal.NewFromInt(-50)
	cero := 0
	estado := "APROBADO"
	casos := map[string]ActualizarPresupuestoRequest{
		"total negativo":     {TotalEstimado: &negativo},
		"estado desconocido": {Estado: &estado},
		"cliente cero":       {ClienteID: &cero},
		"vehiculo negativo":  {VehiculoID: intPtr(-3)},
		"cantidad cero":      {Productos: []ItemPresupuestoRequest{{ProductoID: 1, Cantidad: 0}}},
	}
	for nombre, req := range casos {
		assert.Error(t, Validate.Struct(req), nombre)
	}
}
