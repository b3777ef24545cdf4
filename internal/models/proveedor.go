package models

type Proveedor struct {
	ProveedorID uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:200;not null"`
	Telefono    string `gorm:"size:30"`
	Email       string `gorm:"size:200"`
	Direccion   string `gorm:"size:300"`
}
