package inventario

import (
	"errors"
	"strings"
	"time"

	"puntoventa-backend/internal/barcode"
	"puntoventa-backend/internal/database"
	"puntoventa-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Intentos de generación antes de rendirse ante colisiones consecutivas.
const maxIntentosCodigo = 5

type CrearProductoRequest struct {
	Nombre       string  `json:"Nombre"`
	CategoriaID  uint    `json:"CategoriaID"`
	Precio       float64 `json:"Precio"`
	Stock        int     `json:"Stock"`
	Descripcion  string  `json:"Descripcion"`
	ProveedorID  uint    `json:"ProveedorID"`
	FechaIngreso string  `json:"FechaIngreso"` // YYYY-MM-DD
	CodigoBarras *string `json:"CodigoBarras"` // opcional, se genera EAN-13 si falta
}

// POST /productos
// Sin CodigoBarras se asigna un EAN-13 generado. El índice único de la
// columna es el guardián real de la unicidad; la consulta previa solo da
// un mensaje de error más claro.
func CrearProductoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearProductoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		body.Nombre = strings.TrimSpace(body.Nombre)
		if body.Nombre == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre es obligatorio")
		}
		if body.Precio < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Precio no puede ser negativo")
		}

		fecha, err := parseFecha(body.FechaIngreso)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "FechaIngreso inválida, formato esperado YYYY-MM-DD")
		}

		solicitado := ""
		if body.CodigoBarras != nil {
			solicitado = strings.TrimSpace(*body.CodigoBarras)
		}
		codigo, err := asignarCodigo(solicitado, func(codigo string) bool {
			var existente models.Producto
			return database.DB.First(&existente, "codigo_barras = ?", codigo).Error == nil
		})
		if err != nil {
			if errors.Is(err, errCodigoDuplicado) {
				return fiber.NewError(fiber.StatusBadRequest, "El código de barras ya está registrado en otro producto")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo asignar un código de barras al producto")
		}

		p := models.Producto{
			Nombre:       body.Nombre,
			CategoriaID:  body.CategoriaID,
			Precio:       body.Precio,
			Stock:        body.Stock,
			Descripcion:  strings.TrimSpace(body.Descripcion),
			ProveedorID:  body.ProveedorID,
			FechaIngreso: fecha,
			CodigoBarras: &codigo,
		}
		if err := database.DB.Create(&p).Error; err != nil {
			return crearProductoError(err)
		}

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

var errCodigoDuplicado = errors.New("el código de barras ya está registrado en otro producto")

// asignarCodigo decide el código definitivo de un producto nuevo: valida el
// suministrado contra existe, o genera un EAN-13 reintentando ante
// colisiones. El que llama decide cómo consulta existe.
func asignarCodigo(solicitado string, existe func(codigo string) bool) (string, error) {
	if solicitado != "" {
		if existe(solicitado) {
			return "", errCodigoDuplicado
		}
		return solicitado, nil
	}

	for intento := 0; intento < maxIntentosCodigo; intento++ {
		candidato, err := barcode.Generate(barcode.FormatEAN13)
		if err != nil {
			return "", err
		}
		if !existe(candidato) {
			return candidato, nil
		}
	}
	return "", errors.New("no se pudo generar un código de barras único")
}

// crearProductoError traduce el fallo del insert. El índice único puede
// detectar una carrera que el pre-check de asignarCodigo no vio.
func crearProductoError(err error) *fiber.Error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fiber.NewError(fiber.StatusBadRequest, "El código de barras ya está registrado en otro producto")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el producto")
}

// GET /productos
func ListarProductosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var productos []models.Producto
		if err := database.DB.Order("producto_id asc").Find(&productos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los productos")
		}
		return c.JSON(productos)
	}
}

// GET /productos/:producto_id
func ObtenerProductoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("producto_id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador de producto inválido")
		}

		var p models.Producto
		if err := database.DB.First(&p, "producto_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}
		return c.JSON(p)
	}
}

// GET /productos/por-codigo/:codigo
func BuscarPorCodigoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		codigo := strings.TrimSpace(c.Params("codigo"))
		if codigo == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Código vacío")
		}

		var p models.Producto
		if err := database.DB.First(&p, "codigo_barras = ?", codigo).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "No existe un producto con ese código de barras")
		}
		return c.JSON(p)
	}
}

func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
