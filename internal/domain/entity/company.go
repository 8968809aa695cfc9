package entity

import "time"

// Nichos de negocio soportados por empresa.
const (
	NicheFarmacia    = "farmacia"
	NicheVeterinaria = "veterinaria"
)

// Company representa una empresa (tenant). Todo recurso del inventario pertenece a una.
type Company struct {
	ID        string
	Name      string // único a nivel global
	Niche     string // farmacia, veterinaria
	Address   string
	Phone     string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
