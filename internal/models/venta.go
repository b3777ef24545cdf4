package models

import "time"

type Venta struct {
	VentaID    uint      `gorm:"primaryKey"`
	Fecha      time.Time `gorm:"type:date"`
	EmpleadoID uint      `gorm:"index;not null"`
	Total      float64   `gorm:"not null"`

	Detalles []DetalleVenta `gorm:"foreignKey:VentaID" json:"-"`
}
