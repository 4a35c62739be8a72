package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// ValidateRequest
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateRequest_CantidadCeroONegativa(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		err := stock.ValidateRequest(entity.TransTypeIN, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d debe rechazarse", qty)
	}
}

func TestValidateRequest_TipoDesconocido(t *testing.T) {
	for _, tt := range []string{"", "in", "TRANSFER", "FAULT"} {
		err := stock.ValidateRequest(tt, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidTransactionType, "tipo %q debe rechazarse", tt)
	}
}

func TestValidateRequest_TiposValidos(t *testing.T) {
	for _, tt := range []string{entity.TransTypeIN, entity.TransTypeOUT, entity.TransTypeANOMALY} {
		assert.NoError(t, stock.ValidateRequest(tt, 1))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply — tabla de reglas
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaSinTecho(t *testing.T) {
	next, err := stock.Apply(entity.TransTypeIN, 30, 100, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 130, next)
}

func TestApply_EntradaHastaElTechoExacto(t *testing.T) {
	// Llegar exactamente al máximo es válido; superarlo no.
	next, err := stock.Apply(entity.TransTypeIN, 50, 100, 0, intPtr(150))
	require.NoError(t, err)
	assert.Equal(t, 150, next)
}

func TestApply_EntradaSuperaElTecho(t *testing.T) {
	_, err := stock.Apply(entity.TransTypeIN, 51, 100, 0, intPtr(150))
	assert.ErrorIs(t, err, domain.ErrStockCeilingExceeded)
}

func TestApply_SalidaNormal(t *testing.T) {
	next, err := stock.Apply(entity.TransTypeOUT, 40, 100, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, next)
}

func TestApply_SalidaDejaStockEnCero(t *testing.T) {
	next, err := stock.Apply(entity.TransTypeOUT, 100, 100, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestApply_SalidaInsuficiente(t *testing.T) {
	_, err := stock.Apply(entity.TransTypeOUT, 101, 100, 0, nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApply_AnomaliaMismaGuardaQueSalida(t *testing.T) {
	next, err := stock.Apply(entity.TransTypeANOMALY, 5, 20, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 15, next)

	_, err = stock.Apply(entity.TransTypeANOMALY, 21, 20, 0, nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApply_StockMinNuncaBloquea(t *testing.T) {
	// Una salida que deja el stock por debajo del mínimo es válida: el mínimo
	// solo clasifica para reportes.
	next, err := stock.Apply(entity.TransTypeOUT, 95, 100, 50, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, next)
}

func TestApply_EsPura(t *testing.T) {
	// Misma entrada, mismo resultado, sin efectos colaterales observables.
	for i := 0; i < 3; i++ {
		next, err := stock.Apply(entity.TransTypeIN, 10, 5, 0, intPtr(100))
		require.NoError(t, err)
		assert.Equal(t, 15, next)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Status
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_Clasificacion(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		stockMin int
		stockMax *int
		want     string
	}{
		{"cero es out_of_stock", 0, 10, nil, entity.StockStatusOut},
		{"bajo el mínimo es low_stock", 5, 10, nil, entity.StockStatusLow},
		{"sobre el techo es over_stock", 200, 10, intPtr(150), entity.StockStatusOver},
		{"sin techo nunca hay over_stock", 1000, 10, nil, entity.StockStatusNormal},
		{"dentro de límites es normal", 50, 10, intPtr(150), entity.StockStatusNormal},
		{"igual al mínimo es normal", 10, 10, nil, entity.StockStatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.Status(tc.current, tc.stockMin, tc.stockMax))
		})
	}
}
