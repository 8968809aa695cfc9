package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/inventory"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		typ      string
		quantity int64
		want     int64
	}{
		{"entrada suma", 100, entity.MovementTypeIn, 30, 130},
		{"salida resta", 100, entity.MovementTypeOut, 30, 70},
		{"salida puede dar negativo (lo valida el motor)", 10, entity.MovementTypeOut, 30, -20},
		{"ajuste fija la cantidad", 100, entity.MovementTypeAdjustment, 55, 55},
		{"ajuste a cero", 100, entity.MovementTypeAdjustment, 0, 0},
		{"tipo desconocido no cambia nada", 100, "otro", 30, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Apply(tc.current, tc.typ, tc.quantity))
		})
	}
}

func TestRevert(t *testing.T) {
	// Revert(Apply(x)) debe devolver x para entradas y salidas.
	assert.Equal(t, int64(100), inventory.Revert(inventory.Apply(100, entity.MovementTypeIn, 30), entity.MovementTypeIn, 30, 0))
	assert.Equal(t, int64(100), inventory.Revert(inventory.Apply(100, entity.MovementTypeOut, 30), entity.MovementTypeOut, 30, 0))

	// El ajuste se revierte con la pre-imagen, no con la cantidad.
	assert.Equal(t, int64(100), inventory.Revert(55, entity.MovementTypeAdjustment, 55, 100))
}

func TestReverseType(t *testing.T) {
	assert.Equal(t, entity.MovementTypeOut, inventory.ReverseType(entity.MovementTypeIn))
	assert.Equal(t, entity.MovementTypeIn, inventory.ReverseType(entity.MovementTypeOut))
	assert.Equal(t, entity.MovementTypeAdjustment, inventory.ReverseType(entity.MovementTypeAdjustment))
	assert.Equal(t, entity.MovementTypeTransfer, inventory.ReverseType(entity.MovementTypeTransfer))
}
