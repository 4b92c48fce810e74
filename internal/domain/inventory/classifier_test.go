package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-salud/internal/domain"
	"github.com/jhoicas/inventario-salud/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de referencia del clasificador
//
// Caso 1: cantidad=10, tasa=5/día, lead time=3 días
//   → cobertura = 2 días → CRITICAL (2 < 3) → pedido sugerido = 5×3−10 = 5
// Caso 2: cantidad=100, tasa=2/día, lead time=5 días
//   → cobertura = 50 días → OK
// ──────────────────────────────────────────────────────────────────────────────

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestClassify_VectorCritical(t *testing.T) {
	c, err := inventory.Classify(d(10), d(5), d(3))
	require.NoError(t, err)

	assert.Equal(t, inventory.StatusCritical, c.Status)
	require.NotNil(t, c.DaysOfSupply)
	assert.True(t, c.DaysOfSupply.Equal(d(2)),
		"la cobertura debe ser exactamente cantidad/tasa = 2 días, fue %s", c.DaysOfSupply)

	sugerido := inventory.SuggestedReorderQty(d(10), d(5), d(3))
	assert.True(t, sugerido.Equal(d(5)), "pedido sugerido = 5×3−10 = 5, fue %s", sugerido)
}

func TestClassify_VectorOK(t *testing.T) {
	c, err := inventory.Classify(d(100), d(2), d(5))
	require.NoError(t, err)

	assert.Equal(t, inventory.StatusOK, c.Status)
	require.NotNil(t, c.DaysOfSupply)
	assert.True(t, c.DaysOfSupply.Equal(d(50)))
}

// Frontera WARNING: cobertura en [lead, 2×lead) es WARNING; exactamente 2×lead ya es OK.
func TestClassify_FronterasWarning(t *testing.T) {
	// cobertura = 3 días, lead = 3 → no es CRITICAL (3 < 3 es falso) pero sí WARNING (3 < 6)
	c, err := inventory.Classify(d(15), d(5), d(3))
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusWarning, c.Status)

	// cobertura = 6 días, lead = 3 → exactamente 2×lead → OK
	c, err = inventory.Classify(d(30), d(5), d(3))
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusOK, c.Status)
}

// Tasa de consumo cero: cobertura infinita, siempre OK y sin días calculados.
func TestClassify_TasaCero_EsOK(t *testing.T) {
	c, err := inventory.Classify(d(0), d(0), d(10))
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusOK, c.Status)
	assert.Nil(t, c.DaysOfSupply, "con tasa cero no hay días de cobertura definidos")
}

// Monotonicidad: bajar la cantidad (tasa y lead fijos) nunca mejora el estado.
func TestClassify_MonotonoEnCantidad(t *testing.T) {
	rank := map[string]int{
		inventory.StatusOK:       0,
		inventory.StatusWarning:  1,
		inventory.StatusCritical: 2,
	}

	rate, lead := d(4), d(7)
	prev := -1
	// De 200 unidades bajando hasta 0: la severidad solo puede mantenerse o subir.
	for qty := 200; qty >= 0; qty -= 5 {
		c, err := inventory.Classify(decimal.NewFromInt(int64(qty)), rate, lead)
		require.NoError(t, err)
		sev := rank[c.Status]
		assert.GreaterOrEqual(t, sev, prev,
			"al bajar de cantidad el estado no puede mejorar (qty=%d)", qty)
		prev = sev
	}
}

// Entradas negativas: error de validación, nunca se clasifica.
func TestClassify_NegativosRechazados(t *testing.T) {
	_, err := inventory.Classify(d(-1), d(5), d(3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.Classify(d(10), d(-5), d(3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.Classify(d(10), d(5), d(-3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El pedido sugerido nunca es negativo, incluso con stock de sobra.
func TestSuggestedReorderQty_NuncaNegativo(t *testing.T) {
	casos := []struct{ qty, rate, lead float64 }{
		{100, 2, 5},  // stock sobrado
		{10, 5, 3},   // déficit de 5
		{0, 0, 10},   // sin consumo
		{50, 10, 5},  // exactamente en el punto: 10×5−50 = 0
	}
	for _, tc := range casos {
		got := inventory.SuggestedReorderQty(d(tc.qty), d(tc.rate), d(tc.lead))
		assert.False(t, got.IsNegative(),
			"sugerido negativo para qty=%v rate=%v lead=%v: %s", tc.qty, tc.rate, tc.lead, got)
	}
}

// Cobertura exacta en decimal: cantidad/tasa sin redondeos intermedios.
func TestDaysOfSupply_DivisionExacta(t *testing.T) {
	days, ok := inventory.DaysOfSupply(d(10), d(4))
	require.True(t, ok)
	assert.True(t, days.Equal(d(2.5)), "10/4 debe ser 2.5 exacto, fue %s", days)

	_, ok = inventory.DaysOfSupply(d(10), decimal.Zero)
	assert.False(t, ok)
}

func TestNeedsAction(t *testing.T) {
	assert.True(t, inventory.NeedsAction(inventory.StatusCritical))
	assert.True(t, inventory.NeedsAction(inventory.StatusWarning))
	assert.False(t, inventory.NeedsAction(inventory.StatusOK))
}
