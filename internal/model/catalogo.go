package model

// Entidades del catálogo. Son referenciadas por los presupuestos pero este
// cliente nunca las modifica; llegan completas en cada snapshot.

type Cliente struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

type Vehiculo struct {
	ID        int    `json:"id"`
	Matricula string `json:"matricula"`
}

type Producto struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
}
