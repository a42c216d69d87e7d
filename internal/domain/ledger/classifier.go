// Package ledger contiene la política de clasificación de movimientos de stock:
// dada la cantidad previa y la solicitada, decide qué entrada (si alguna)
// corresponde anotar en el libro de movimientos. Es lógica pura: sin BD, sin
// reloj, sin estado.
package ledger

import "github.com/invorya/almacen-api/internal/domain/entity"

// Decision describe el movimiento a anotar: tipo y magnitud.
// Quantity siempre >= 0; la dirección la lleva Type.
type Decision struct {
	Type     string
	Quantity int64
}

// ClassifyEdit decide el movimiento para una edición de stock.
// Devuelve nil cuando no corresponde anotar nada:
//   - requested == previous: una edición sin cambio no genera asiento.
//   - warehouseID nil: el cambio procede sin auditarse. Es una peculiaridad
//     del contrato; el caller debe dejar constancia en el log.
//
// Un incremento por edición es ADJUSTMENT, no IN: IN queda reservado para el
// stock inicial en la creación del artículo.
func ClassifyEdit(previous, requested int64, warehouseID *int64) *Decision {
	if warehouseID == nil {
		return nil
	}
	switch {
	case requested == previous:
		return nil
	case requested > previous:
		return &Decision{Type: entity.MovementTypeADJUSTMENT, Quantity: requested - previous}
	default:
		return &Decision{Type: entity.MovementTypeOUT, Quantity: previous - requested}
	}
}

// ClassifyCreate decide el movimiento para la creación de un artículo con stock
// inicial. No hay cantidad previa que comparar: siempre IN con la magnitud completa.
func ClassifyCreate(initialStock int64) Decision {
	return Decision{Type: entity.MovementTypeIN, Quantity: initialStock}
}

// ClassifyDelete decide el movimiento para un borrado lógico: DELETE con el
// stock restante al momento del borrado, incluso cuando es cero. La fila solo
// se marca como borrada, pero el libro anota la cantidad completa como retirada.
func ClassifyDelete(currentStock int64) Decision {
	return Decision{Type: entity.MovementTypeDELETE, Quantity: currentStock}
}
