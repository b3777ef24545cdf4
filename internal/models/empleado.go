package models

import "time"

type Empleado struct {
	EmpleadoID   uint      `gorm:"primaryKey"`
	Nombre       string    `gorm:"size:100;not null"`
	Puesto       string    `gorm:"size:100;not null"`
	FechaIngreso time.Time `gorm:"type:date"`

	Ventas []Venta `gorm:"foreignKey:EmpleadoID" json:"-"`
}
