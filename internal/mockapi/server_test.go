package mockapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tallerctl/internal/api"
	"tallerctl/internal/apierror"
	"tallerctl/internal/dto"
	"tallerctl/internal/model"
	"tallerctl/internal/presupuesto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arrancar levanta el mock con los datos de demo y devuelve un cliente real
// apuntándole: el camino completo cliente → gin → cliente.
func arrancar(t *testing.T, token string) (*api.Client, *Server) {
	t.Helper()
	srv := New()
	srv.Token = token
	srv.SeedDemo()
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return api.New(ts.URL, token), srv
}

func TestSnapshotCombinado(t *testing.T) {
	cliente, _ := arrancar(t, "")

	snap, err := cliente.ObtenerSnapshot(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Presupuestos, 3)
	assert.Len(t, snap.Clientes, 2)
	assert.Len(t, snap.Vehiculos, 2)
	assert.Len(t, snap.Productos, 3)
}

func TestCicloCompletoCrearActualizarEliminar(t *testing.T) {
	cliente, _ := arrancar(t, "")
	ctx := context.Background()

	cinco := 5
	creado, err := cliente.CrearPresupuesto(ctx, dto.CrearPresupuestoRequest{
		ClienteID:     &cinco,
		Estado:        model.EstadoPendiente,
		TotalEstimado: decimal.NewFromInt(150),
		Productos:     []dto.ItemPresupuestoRequest{{ProductoID: 1, Cantidad: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, creado.ID, "el servidor asigna el id")
	assert.False(t, creado.FechaCreacion.IsZero())
	assert.Nil(t, creado.FechaRealizado)

	// round-trip: tras actualizar y recargar, los campos no derivados
	// coinciden con el patch
	estado := model.EstadoRealizado
	total := decimal.NewFromInt(175)
	actualizado, err := cliente.ActualizarPresupuesto(ctx, creado.ID, dto.ActualizarPresupuestoRequest{
		Estado:        &estado,
		TotalEstimado: &total,
	})
	require.NoError(t, err)
	assert.NotNil(t, actualizado.FechaRealizado, "pasar a REALIZADO fija la fecha")

	snap, err := cliente.ObtenerSnapshot(ctx)
	require.NoError(t, err)
	var recargado *model.Presupuesto
	for i := range snap.Presupuestos {
		if snap.Presupuestos[i].ID == creado.ID {
			recargado = &snap.Presupuestos[i]
		}
	}
	require.NotNil(t, recargado)
	assert.Equal(t, model.EstadoRealizado, recargado.Estado)
	assert.True(t, recargado.TotalEstimado.Equal(total))
	require.NotNil(t, recargado.ClienteID)
	assert.Equal(t, 5, *recargado.ClienteID, "los campos no parchados se conservan")

	require.NoError(t, cliente.EliminarPresupuesto(ctx, creado.ID))
	lista, err := cliente.ListarPresupuestos(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 3)
}

func TestActualizarNoLimpiaFechaRealizado(t *testing.T) {
	cliente, _ := arrancar(t, "")
	ctx := context.Background()

	// el presupuesto 2 de demo ya está REALIZADO
	estado := model.EstadoPendiente
	resp, err := cliente.ActualizarPresupuesto(ctx, 2, dto.ActualizarPresupuestoRequest{Estado: &estado})
	require.NoError(t, err)
	assert.NotNil(t, resp.FechaRealizado, "una vez fijada, la fecha no se limpia")
}

func TestValidacionDelServidor(t *testing.T) {
	cliente, _ := arrancar(t, "")

	_, err := cliente.CrearPresupuesto(context.Background(), dto.CrearPresupuestoRequest{
		Estado: "APROBADO", // no es un estado conocido
	})
	require.Error(t, err)
	apiErr, ok := err.(*apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}

func TestActualizarRechazaTotalNegativo(t *testing.T) {
	cliente, _ := arrancar(t, "")
	ctx := context.Background()

	negativo := decimal.NewFromInt(-50)
	_, err := cliente.ActualizarPresupuesto(ctx, 1, dto.ActualizarPresupuestoRequest{TotalEstimado: &negativo})
	require.Error(t, err)
	apiErr, ok := err.(*apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)

	// el registro queda como estaba
	snap, err := cliente.ObtenerSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Presupuestos[0].TotalEstimado.Equal(decimal.NewFromFloat(185.50)))
}

func TestCredencialRequerida(t *testing.T) {
	srv := New()
	srv.Token = "secreto"
	srv.SeedDemo()
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	_, err := api.New(ts.URL, "otro").ObtenerSnapshot(context.Background())
	require.Error(t, err)
	apiErr, ok := err.(*apierror.APIError)
	require.True(t, ok)
	assert.True(t, apiErr.SesionInvalida())
	assert.Equal(t, "Sesión expirada", apiErr.Message)
}

func TestEliminarInexistente(t *testing.T) {
	cliente, _ := arrancar(t, "")
	err := cliente.EliminarPresupuesto(context.Background(), 999)
	require.Error(t, err)
	apiErr, ok := err.(*apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Presupuesto no encontrado", apiErr.Message)
}

// El view-model contra el mock de punta a punta: la ley de denormalización
// del escenario concreto (cliente 5 = "Juan Pérez").
func TestViewModelContraElMock(t *testing.T) {
	cliente, _ := arrancar(t, "")

	vm := presupuesto.NewViewModel(cliente, nil)
	require.NoError(t, vm.Cargar(context.Background()))

	items := vm.Presupuestos()
	require.Len(t, items, 3)
	require.NotNil(t, items[0].Cliente)
	assert.Equal(t, model.Cliente{ID: 5, Nombre: "Juan Pérez"}, *items[0].Cliente)
	assert.Equal(t, "$185.50", items[0].TotalTexto())
}
