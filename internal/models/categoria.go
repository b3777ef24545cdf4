package models

type Categoria struct {
	CategoriaID uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:100;not null"`
	Descripcion string `gorm:"size:500"`
}
