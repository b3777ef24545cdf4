package main

import (
	"log"
	"strings"

	"puntoventa-backend/internal/barcode"
	"puntoventa-backend/internal/config"
	"puntoventa-backend/internal/database"
	"puntoventa-backend/internal/inventario"
	"puntoventa-backend/internal/personal"
	"puntoventa-backend/internal/ventas"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	// Restos de caídas anteriores; la limpieza normal es por request.
	barcode.SweepTmp(cfg.BarcodeTmpPath)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API Punto de Venta"})
	})

	// Empleados
	app.Post("/empleados", personal.CrearEmpleadoHandler())
	app.Get("/empleados", personal.ListarEmpleadosHandler())

	// Proveedores
	app.Post("/proveedores", inventario.CrearProveedorHandler())
	app.Get("/proveedores", inventario.ListarProveedoresHandler())

	// Categorías
	app.Post("/categorias", inventario.CrearCategoriaHandler())
	app.Get("/categorias", inventario.ListarCategoriasHandler())

	// Productos. Las rutas fijas van antes que :producto_id.
	app.Post("/productos", inventario.CrearProductoHandler())
	app.Get("/productos", inventario.ListarProductosHandler())
	app.Post("/productos/escaneo", inventario.EscaneoHandler())
	app.Get("/productos/por-codigo/:codigo", inventario.BuscarPorCodigoHandler())
	app.Get("/productos/:producto_id", inventario.ObtenerProductoHandler())
	app.Get("/productos/:producto_id/barcode", inventario.ProductoBarcodeHandler(cfg))

	// Generación de códigos de barras sueltos
	app.Post("/generate-barcode", inventario.GenerateBarcodeHandler(cfg))

	// Ventas
	app.Post("/ventas", ventas.CrearVentaHandler())
	app.Get("/ventas", ventas.ListarVentasHandler())

	// Detalles de venta
	app.Post("/detalleventas", ventas.CrearDetalleVentaHandler())
	app.Get("/detalleventas", ventas.ListarDetallesVentaHandler())

	log.Println("Servidor escuchando en el puerto:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
