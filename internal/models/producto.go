package models

import "time"

// Producto mirrors the original Productos table plus the barcode column.
// CodigoBarras is nullable (legacy rows) but unique once set; the index is
// the real uniqueness guardian, the handler pre-check only improves the
// error message.
type Producto struct {
	ProductoID   uint      `gorm:"primaryKey"`
	Nombre       string    `gorm:"size:200;not null"`
	CategoriaID  uint      `gorm:"index"`
	Precio       float64   `gorm:"not null"`
	Stock        int       `gorm:"not null;default:0"`
	Descripcion  string    `gorm:"size:500"`
	ProveedorID  uint      `gorm:"index"`
	FechaIngreso time.Time `gorm:"type:date"`
	CodigoBarras *string   `gorm:"size:64;uniqueIndex"`

	Detalles []DetalleVenta `gorm:"foreignKey:ProductoID" json:"-"`
}
