package database

import (
	"log"

	"puntoventa-backend/internal/config"
	"puntoventa-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError: los conflictos de índice único llegan como
	// gorm.ErrDuplicatedKey y los handlers los mapean a 400.
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Empleado{},
		&models.Proveedor{},
		&models.Categoria{},
		&models.Producto{},
		&models.Venta{},
		&models.DetalleVenta{},
	)
	if err != nil {
		log.Fatalf("Error en AutoMigrate: %v", err)
	}

	log.Println("Conexión a la base de datos establecida. Migración completada.")
}
