// Package presupuesto implements the budget grid view-model: it owns the
// denormalized local collection, the snapshot join against the catalog, and
// all create/update/delete traffic to the remote store. No other component
// mutates the collection.
package presupuesto

import (
	"context"
	"errors"
	"strings"
	"sync"

	"tallerctl/internal/apierror"
	"tallerctl/internal/dto"
	"tallerctl/internal/model"

	"github.com/rs/zerolog/log"
)

var (
	// ErrPresupuestoNoEncontrado means the caller asked to mutate an id that
	// is not in the local collection — a programmer error, surfaced loudly.
	ErrPresupuestoNoEncontrado = errors.New("presupuesto no encontrado en el estado local")
	// ErrEdicionEnCurso guards against a second mutation of the same record
	// while its previous one is still in flight.
	ErrEdicionEnCurso = errors.New("el presupuesto ya tiene una edición en curso")
)

// Gateway is the remote store as the view-model sees it. *api.Client
// implements it; tests plug in stubs.
type Gateway interface {
	ObtenerSnapshot(ctx context.Context) (*dto.SnapshotResponse, error)
	CrearPresupuesto(ctx context.Context, req dto.CrearPresupuestoRequest) (*model.Presupuesto, error)
	ActualizarPresupuesto(ctx context.Context, id int, req dto.ActualizarPresupuestoRequest) (*model.Presupuesto, error)
	EliminarPresupuesto(ctx context.Context, id int) error
}

// catalogo is the point-in-time lookup tables of the last snapshot. Kept so
// that create/update responses can be re-denormalized without another fetch.
type catalogo struct {
	clientes  map[int]model.Cliente
	vehiculos map[int]model.Vehiculo
	productos map[int]model.Producto
}

// ViewModel holds the denormalized presupuesto collection. All methods are
// safe for concurrent use; the mutex stands in for the single-threaded event
// loop the web original ran on.
type ViewModel struct {
	mu       sync.Mutex
	gw       Gateway
	notifier Notifier

	items    []View
	cat      catalogo
	cargando bool
	enVuelo  map[int]struct{}
}

func NewViewModel(gw Gateway, notifier Notifier) *ViewModel {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ViewModel{
		gw:       gw,
		notifier: notifier,
		enVuelo:  make(map[int]struct{}),
	}
}

// ─── Lectura ─────────────────────────────────────────────────────────────────

// Cargar fetches a full snapshot and replaces the local collection with the
// denormalized result, preserving server order. On failure the previous
// collection is kept untouched and one notification is emitted; the loading
// flag is cleared on every exit path.
func (vm *ViewModel) Cargar(ctx context.Context) error {
	vm.mu.Lock()
	vm.cargando = true
	vm.mu.Unlock()

	defer func() {
		vm.mu.Lock()
		vm.cargando = false
		vm.mu.Unlock()
	}()

	snap, err := vm.gw.ObtenerSnapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error al cargar los datos de presupuestos")
		vm.notifier.Error(apierror.Mensaje(err))
		return err
	}

	cat := catalogo{
		clientes:  make(map[int]model.Cliente, len(snap.Clientes)),
		vehiculos: make(map[int]model.Vehiculo, len(snap.Vehiculos)),
		productos: make(map[int]model.Producto, len(snap.Productos)),
	}
	for _, c := range snap.Clientes {
		cat.clientes[c.ID] = c
	}
	for _, v := range snap.Vehiculos {
		cat.vehiculos[v.ID] = v
	}
	for _, p := range snap.Productos {
		cat.productos[p.ID] = p
	}

	items := make([]View, 0, len(snap.Presupuestos))
	for _, p := range snap.Presupuestos {
		items = append(items, denormalizar(p, cat))
	}

	vm.mu.Lock()
	vm.cat = cat
	vm.items = items
	vm.mu.Unlock()
	return nil
}

// denormalizar resolves the foreign keys of one flat record against the
// catalog. Display fields are recomputed on every call, never frozen.
func denormalizar(p model.Presupuesto, cat catalogo) View {
	v := View{Presupuesto: p}
	if p.ClienteID != nil {
		if c, ok := cat.clientes[*p.ClienteID]; ok {
			v.Cliente = &c
		}
	}
	if p.VehiculoID != nil {
		if veh, ok := cat.vehiculos[*p.VehiculoID]; ok {
			v.Vehiculo = &veh
		}
	}
	for _, item := range p.Productos {
		iv := ItemView{
			ProductoID: item.ProductoID,
			Cantidad:   int(item.Cantidad),
			Nombre:     Desconocido,
			Categoria:  Desconocido,
		}
		if prod, ok := cat.productos[item.ProductoID]; ok {
			iv.Nombre = prod.Nombre
			iv.Categoria = prod.Categoria
		}
		v.Items = append(v.Items, iv)
	}
	return v
}

// Presupuestos returns a copy of the current collection in server order.
func (vm *ViewModel) Presupuestos() []View {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]View, len(vm.items))
	copy(out, vm.items)
	return out
}

// Cargando reports whether a snapshot fetch is in progress.
func (vm *ViewModel) Cargando() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.cargando
}

// EnEdicion reports whether id has a mutation in flight, so the UI can
// disable that row's controls.
func (vm *ViewModel) EnEdicion(id int) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	_, ok := vm.enVuelo[id]
	return ok
}

// Filtrar returns the rows whose estado or client name contains texto,
// case-insensitively. Pure: the authoritative collection is never touched,
// and an empty texto returns everything.
func (vm *ViewModel) Filtrar(texto string) []View {
	todos := vm.Presupuestos()
	texto = strings.ToLower(strings.TrimSpace(texto))
	if texto == "" {
		return todos
	}
	out := make([]View, 0, len(todos))
	for _, v := range todos {
		if strings.Contains(strings.ToLower(v.Estado), texto) ||
			strings.Contains(strings.ToLower(v.ClienteNombre()), texto) {
			out = append(out, v)
		}
	}
	return out
}

// Paginar slices items into 1-based pages of tam rows. A page past the end
// (or an invalid page/size) returns an empty slice rather than panicking;
// clamping to the last valid page is a UI decision, not done here.
func Paginar(items []View, pagina, tam int) []View {
	if pagina < 1 || tam < 1 {
		return []View{}
	}
	inicio := (pagina - 1) * tam
	if inicio >= len(items) {
		return []View{}
	}
	fin := inicio + tam
	if fin > len(items) {
		fin = len(items)
	}
	return items[inicio:fin]
}

// TotalPaginas returns the number of pages needed for n rows (at least 1).
func TotalPaginas(n, tam int) int {
	if tam < 1 || n <= 0 {
		return 1
	}
	return (n + tam - 1) / tam
}

// ─── Escritura ───────────────────────────────────────────────────────────────

// Crear validates the draft, sends the flat payload and appends the server's
// record — re-denormalized against the held catalog — to the collection. On
// any failure the collection is unchanged and one notification is emitted.
func (vm *ViewModel) Crear(ctx context.Context, req dto.CrearPresupuestoRequest) error {
	if err := dto.Validate.Struct(req); err != nil {
		vm.notifier.Error(apierror.NewValidation(nil).Message)
		return err
	}

	creado, err := vm.gw.CrearPresupuesto(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("error al agregar presupuesto")
		vm.notifier.Error(apierror.Mensaje(err))
		return err
	}

	vm.mu.Lock()
	vm.items = append(vm.items, denormalizar(*creado, vm.cat))
	vm.mu.Unlock()
	vm.notifier.Exito("Presupuesto creado correctamente")
	return nil
}

// Actualizar sends a flat patch for an id that must exist locally and
// replaces that single record with the server's response. The rest of the
// collection — and the caller's scroll position — is left alone.
func (vm *ViewModel) Actualizar(ctx context.Context, id int, req dto.ActualizarPresupuestoRequest) error {
	if err := dto.Validate.Struct(req); err != nil {
		vm.notifier.Error(apierror.NewValidation(nil).Message)
		return err
	}
	if err := vm.marcarEnVuelo(id); err != nil {
		vm.notifier.Error(err.Error())
		return err
	}
	defer vm.liberarEnVuelo(id)

	actualizado, err := vm.gw.ActualizarPresupuesto(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("error al actualizar presupuesto")
		vm.notifier.Error(apierror.Mensaje(err))
		return err
	}

	vm.mu.Lock()
	for i := range vm.items {
		if vm.items[i].ID == id {
			vm.items[i] = denormalizar(*actualizado, vm.cat)
			break
		}
	}
	vm.mu.Unlock()
	vm.notifier.Exito("Presupuesto actualizado correctamente")
	return nil
}

// Eliminar removes id from the remote store and then from the local
// collection. The confirmation prompt is the caller's contract: this method
// must only ever run after the user explicitly confirmed.
func (vm *ViewModel) Eliminar(ctx context.Context, id int) error {
	if err := vm.marcarEnVuelo(id); err != nil {
		vm.notifier.Error(err.Error())
		return err
	}
	defer vm.liberarEnVuelo(id)

	if err := vm.gw.EliminarPresupuesto(ctx, id); err != nil {
		log.Error().Err(err).Int("id", id).Msg("error al eliminar presupuesto")
		vm.notifier.Error(apierror.Mensaje(err))
		return err
	}

	vm.mu.Lock()
	filtrados := vm.items[:0:0]
	for _, v := range vm.items {
		if v.ID != id {
			filtrados = append(filtrados, v)
		}
	}
	vm.items = filtrados
	vm.mu.Unlock()
	vm.notifier.Exito("Presupuesto eliminado correctamente")
	return nil
}

// marcarEnVuelo reserves id for a single in-flight mutation. The id must
// exist locally: mutating an unknown id is a usage error, not a remote call.
func (vm *ViewModel) marcarEnVuelo(id int) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	existe := false
	for i := range vm.items {
		if vm.items[i].ID == id {
			existe = true
			break
		}
	}
	if !existe {
		return ErrPresupuestoNoEncontrado
	}
	if _, ok := vm.enVuelo[id]; ok {
		return ErrEdicionEnCurso
	}
	vm.enVuelo[id] = struct{}{}
	return nil
}

func (vm *ViewModel) liberarEnVuelo(id int) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	delete(vm.enVuelo, id)
}

// Restablecer drops all local state. Called on logout / navigation-away by
// the owning store, never implicitly.
func (vm *ViewModel) Restablecer() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.items = nil
	vm.cat = catalogo{}
	vm.enVuelo = make(map[int]struct{})
	vm.cargando = false
}
