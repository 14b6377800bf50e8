// Package store is the app-wide state container: one explicitly-owned object
// built at startup and handed to the front-ends, holding the transport and
// every view-model. Nothing global, nothing implicit.
package store

import (
	"tallerctl/internal/api"
	"tallerctl/internal/config"
	"tallerctl/internal/presupuesto"
)

// App owns the shared mutable state of the client for the lifetime of a
// session.
type App struct {
	Config       *config.Config
	API          *api.Client
	Presupuestos *presupuesto.ViewModel
}

// New wires the transport and view-models from config. notifier may be nil,
// in which case notifications go to the log.
func New(cfg *config.Config, notifier presupuesto.Notifier) *App {
	client := api.New(cfg.APIURL, cfg.Token)
	return &App{
		Config:       cfg,
		API:          client,
		Presupuestos: presupuesto.NewViewModel(client, notifier),
	}
}

// Reset tears down session state. Called on logout or navigation-away, never
// implicitly.
func (a *App) Reset() {
	a.Presupuestos.Restablecer()
}
