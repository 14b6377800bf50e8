// Package mockapi is an in-memory stand-in for the taller mecánico backend:
// the four presupuesto endpoints plus the combined snapshot, with the same
// error envelope the real API uses. It backs cmd/mockapi for local
// development and the integration tests.
package mockapi

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"tallerctl/internal/apierror"
	"tallerctl/internal/dto"
	"tallerctl/internal/model"

	"github.com/gin-gonic/gin"
)

// Server holds the fixture data. Ids are assigned server-side and never
// reused, matching the contract of the real backend.
type Server struct {
	mu sync.Mutex

	Token string // when non-empty, requests must carry it as a bearer credential

	seq          int
	presupuestos []model.Presupuesto
	clientes     []model.Cliente
	vehiculos    []model.Vehiculo
	productos    []model.Producto
}

func New() *Server {
	return &Server{}
}

// Seed replaces the fixture tables. The id sequence continues after the
// highest seeded presupuesto id.
func (s *Server) Seed(presupuestos []model.Presupuesto, clientes []model.Cliente, vehiculos []model.Vehiculo, productos []model.Producto) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presupuestos = presupuestos
	s.clientes = clientes
	s.vehiculos = vehiculos
	s.productos = productos
	for _, p := range presupuestos {
		if p.ID > s.seq {
			s.seq = p.ID
		}
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/")
	api.Use(s.auth())
	{
		api.GET("/presupuestos", s.listar)
		api.GET("/presupuestos/data", s.snapshot)
		api.POST("/presupuestos", s.crear)
		api.PUT("/presupuestos/:id", s.actualizar)
		api.DELETE("/presupuestos/:id", s.eliminar)
	}
	return r
}

// auth enforces the bearer credential when one is configured. 401 is the
// global "session invalid" signal for the client's outer layer.
func (s *Server) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.Token == "" {
			c.Next()
			return
		}
		if c.GetHeader("Authorization") != "Bearer "+s.Token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesión expirada"))
			return
		}
		c.Next()
	}
}

// ─── Handlers ────────────────────────────────────────────────────────────────

func (s *Server) listar(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Presupuesto, len(s.presupuestos))
	copy(out, s.presupuestos)
	c.JSON(http.StatusOK, out)
}

func (s *Server) snapshot(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, dto.SnapshotResponse{
		Presupuestos: append([]model.Presupuesto{}, s.presupuestos...),
		Clientes:     append([]model.Cliente{}, s.clientes...),
		Vehiculos:    append([]model.Vehiculo{}, s.vehiculos...),
		Productos:    append([]model.Producto{}, s.productos...),
	})
}

func (s *Server) crear(c *gin.Context) {
	var req dto.CrearPresupuestoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	p := model.Presupuesto{
		ID:            s.seq,
		ClienteID:     req.ClienteID,
		VehiculoID:    req.VehiculoID,
		TotalEstimado: req.TotalEstimado,
		Estado:        req.Estado,
		FechaCreacion: time.Now().UTC(),
	}
	for _, item := range req.Productos {
		p.Productos = append(p.Productos, model.ItemPresupuesto{
			ProductoID: item.ProductoID,
			Cantidad:   model.Cantidad(item.Cantidad),
		})
	}
	if p.Estado == model.EstadoRealizado {
		now := time.Now().UTC()
		p.FechaRealizado = &now
	}
	s.presupuestos = append(s.presupuestos, p)
	c.JSON(http.StatusCreated, p)
}

func (s *Server) actualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarPresupuestoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.presupuestos {
		if s.presupuestos[i].ID != id {
			continue
		}
		p := &s.presupuestos[i]
		if req.ClienteID != nil {
			p.ClienteID = req.ClienteID
		}
		if req.VehiculoID != nil {
			p.VehiculoID = req.VehiculoID
		}
		if req.TotalEstimado != nil {
			p.TotalEstimado = *req.TotalEstimado
		}
		if req.Estado != nil {
			p.Estado = *req.Estado
			// fecha_realizado se fija al pasar a REALIZADO y nunca se limpia
			if p.Estado == model.EstadoRealizado && p.FechaRealizado == nil {
				now := time.Now().UTC()
				p.FechaRealizado = &now
			}
		}
		if req.Productos != nil {
			p.Productos = nil
			for _, item := range req.Productos {
				p.Productos = append(p.Productos, model.ItemPresupuesto{
					ProductoID: item.ProductoID,
					Cantidad:   model.Cantidad(item.Cantidad),
				})
			}
		}
		c.JSON(http.StatusOK, *p)
		return
	}
	c.JSON(http.StatusNotFound, apierror.New("Presupuesto no encontrado"))
}

func (s *Server) eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.presupuestos {
		if s.presupuestos[i].ID == id {
			s.presupuestos = append(s.presupuestos[:i], s.presupuestos[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, apierror.New("Presupuesto no encontrado"))
}
