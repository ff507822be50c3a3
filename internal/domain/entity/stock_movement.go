package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada inicial o reposición
	MovementTypeADJUSTMENT = "ADJUSTMENT" // corrección manual (puede ser negativa)
)

// StockMovement registra las entradas y ajustes de stock de un producto.
// Las salidas no se registran aquí: las tablas sales y returns son en sí
// mismas el histórico de depleciones. El auditor de stock combina ambas
// fuentes para derivar el stock esperado.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string
	Quantity  decimal.Decimal // positiva en IN; con signo en ADJUSTMENT
	Note      string
	Date      time.Time
	CreatedAt time.Time
	CreatedBy string
}
