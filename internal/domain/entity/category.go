package entity

import (
	"encoding/json"
	"time"
)

// Category representa una categoría de productos, única por nombre dentro de la empresa.
// ExtraFields guarda datos específicos por nicho (ej. {"tipo_medicamento":"controlado"}).
type Category struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	ExtraFields json.RawMessage
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
