package inventario

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"puntoventa-backend/internal/barcode"
	"puntoventa-backend/internal/config"
	"puntoventa-backend/internal/database"
	"puntoventa-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type GenerateBarcodeRequest struct {
	BarcodeType string `json:"barcode_type"` // "ean13" (defecto) o "code128"
	Filename    string `json:"filename"`
}

type EscaneoResponse struct {
	Detectados  int               `json:"detectados"`
	Encontrados int               `json:"encontrados"`
	Productos   []models.Producto `json:"productos"`
}

// POST /generate-barcode
// Genera un identificador nuevo y responde con su imagen PNG.
func GenerateBarcodeHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body GenerateBarcodeRequest
		if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		formato, err := barcode.ParseFormat(body.BarcodeType)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		codigo, err := barcode.Generate(formato)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el código")
		}

		path, err := barcode.EncodeToFile(codigo, formato, cfg.BarcodeTmpPath, body.Filename)
		if err != nil {
			log.Printf("Error al codificar %q: %v", codigo, err)
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar la imagen del código")
		}

		nombre := body.Filename
		if nombre == "" {
			nombre = codigo + ".png"
		}
		return enviarPNG(c, path, nombre)
	}
}

// GET /productos/:producto_id/barcode
// Renderiza el código almacenado del producto. EAN-13 cuando el código es
// un EAN-13 válido, Code 128 para cualquier otro valor almacenado.
func ProductoBarcodeHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("producto_id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador de producto inválido")
		}

		var p models.Producto
		if err := database.DB.First(&p, "producto_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}
		if p.CodigoBarras == nil || *p.CodigoBarras == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El producto no tiene código de barras asignado")
		}

		formato := barcode.FormatEAN13
		if !barcode.ValidEAN13(*p.CodigoBarras) {
			formato = barcode.FormatCode128
		}

		path, err := barcode.EncodeToFile(*p.CodigoBarras, formato, cfg.BarcodeTmpPath, "")
		if err != nil {
			log.Printf("Error al codificar el código del producto %d: %v", p.ProductoID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar la imagen del código")
		}

		return enviarPNG(c, path, fmt.Sprintf("producto-%d.png", p.ProductoID))
	}
}

// POST /productos/escaneo
// Recibe una imagen, decodifica todos los símbolos presentes y resuelve
// cada uno contra los productos almacenados.
func EscaneoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Falta el archivo 'file' en el formulario")
		}

		ct := fh.Header.Get("Content-Type")
		if !barcode.ContentTypeAccepted(ct) {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Formato de imagen no soportado: %s", ct))
		}

		f, err := fh.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo abrir el archivo subido")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer el archivo subido")
		}

		payloads, err := barcode.Decode(data)
		if err != nil {
			switch {
			case errors.Is(err, barcode.ErrSinCodigos), errors.Is(err, barcode.ErrImagenIlegible):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				log.Printf("Fallo inesperado al decodificar la imagen subida: %v", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Fallo inesperado al procesar la imagen")
			}
		}

		productos := resolverCodigos(payloads, func(codigo string) (models.Producto, bool) {
			var p models.Producto
			if err := database.DB.First(&p, "codigo_barras = ?", codigo).Error; err != nil {
				return models.Producto{}, false
			}
			return p, true
		})
		if len(productos) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Ningún producto coincide con los códigos detectados")
		}

		return c.JSON(EscaneoResponse{
			Detectados:  len(payloads),
			Encontrados: len(productos),
			Productos:   productos,
		})
	}
}

// enviarPNG responde con la imagen transitoria y la elimina en toda salida,
// incluida la de error.
func enviarPNG(c *fiber.Ctx, path, nombre string) error {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo leer la imagen generada")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", nombre))
	return c.Send(data)
}
