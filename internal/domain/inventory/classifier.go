package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-salud/internal/domain"
)

// Estados posibles de stock para un (sede, insumo).
const (
	StatusCritical = "CRITICAL" // días de cobertura < lead time: riesgo de quiebre
	StatusWarning  = "WARNING"  // días de cobertura < 2 × lead time: reordenar pronto
	StatusOK       = "OK"
)

// Classification es el resultado del clasificador para un (sede, insumo).
// DaysOfSupply es nil cuando la tasa de consumo es cero (horizonte infinito, estado OK).
type Classification struct {
	Status       string
	DaysOfSupply *decimal.Decimal
}

var two = decimal.NewFromInt(2)

// DaysOfSupply calcula los días de cobertura: cantidad / tasa de consumo diaria.
// ok es false cuando la tasa es cero (cobertura infinita).
func DaysOfSupply(quantity, dailyRate decimal.Decimal) (days decimal.Decimal, ok bool) {
	if dailyRate.IsZero() {
		return decimal.Zero, false
	}
	return quantity.Div(dailyRate), true
}

// Classify es el clasificador de estado de stock (función pura, sin estado oculto):
//
//	DiasCobertura = Cantidad / TasaDiaria
//	CRITICAL si DiasCobertura <  LeadTime
//	WARNING  si DiasCobertura <  2 × LeadTime
//	OK       en el resto de casos (incluida tasa cero: cobertura infinita)
//
// Cantidad o tasa negativas son un error de validación de datos: deben rechazarse
// en la ingesta y nunca llegar aquí; se devuelve domain.ErrInvalidInput como guarda.
func Classify(quantity, dailyRate, leadTimeDays decimal.Decimal) (Classification, error) {
	if quantity.IsNegative() || dailyRate.IsNegative() || leadTimeDays.IsNegative() {
		return Classification{}, domain.ErrInvalidInput
	}

	days, finite := DaysOfSupply(quantity, dailyRate)
	if !finite {
		return Classification{Status: StatusOK}, nil
	}

	c := Classification{DaysOfSupply: &days}
	switch {
	case days.LessThan(leadTimeDays):
		c.Status = StatusCritical
	case days.LessThan(leadTimeDays.Mul(two)):
		c.Status = StatusWarning
	default:
		c.Status = StatusOK
	}
	return c, nil
}

// SuggestedReorderQty calcula la cantidad sugerida de pedido:
// TasaDiaria × LeadTime − Cantidad, con piso en cero (nunca negativa).
func SuggestedReorderQty(quantity, dailyRate, leadTimeDays decimal.Decimal) decimal.Decimal {
	qty := dailyRate.Mul(leadTimeDays).Sub(quantity)
	if qty.IsNegative() {
		return decimal.Zero
	}
	return qty
}

// NeedsAction indica si un estado entra en la lista de acción de compras.
func NeedsAction(status string) bool {
	return status == StatusCritical || status == StatusWarning
}
