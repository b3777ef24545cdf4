package models

type DetalleVenta struct {
	DetalleID      uint    `gorm:"primaryKey"`
	VentaID        uint    `gorm:"index;not null"`
	ProductoID     uint    `gorm:"index;not null"`
	Cantidad       int     `gorm:"not null"`
	PrecioUnitario float64 `gorm:"not null"`
	Subtotal       float64 `gorm:"not null"`
}
