package inventario

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"puntoventa-backend/internal/barcode"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Solo rutas de validación que fallan antes de tocar la base de datos.
func TestCrearProductoValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/productos", CrearProductoHandler())

	tests := []struct {
		name string
		body string
	}{
		{"nombre vacío", `{"Nombre":"","Precio":10}`},
		{"precio negativo", `{"Nombre":"Café","Precio":-1}`},
		{"fecha inválida", `{"Nombre":"Café","Precio":10,"FechaIngreso":"ayer"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/productos", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAsignarCodigoSuministradoDuplicado(t *testing.T) {
	_, err := asignarCodigo("4006381333931", func(string) bool { return true })
	assert.ErrorIs(t, err, errCodigoDuplicado)
}

func TestAsignarCodigoSuministradoNuevo(t *testing.T) {
	codigo, err := asignarCodigo("4006381333931", func(string) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, "4006381333931", codigo)
}

func TestAsignarCodigoGenerado(t *testing.T) {
	codigo, err := asignarCodigo("", func(string) bool { return false })
	require.NoError(t, err)
	assert.True(t, barcode.ValidEAN13(codigo), "el código generado debe ser un EAN-13 válido, fue %q", codigo)
}

// La primera colisión fuerza un reintento con otro candidato.
func TestAsignarCodigoReintentaTrasColision(t *testing.T) {
	consultas := 0
	codigo, err := asignarCodigo("", func(string) bool {
		consultas++
		return consultas == 1
	})
	require.NoError(t, err)
	assert.True(t, barcode.ValidEAN13(codigo))
	assert.Equal(t, 2, consultas)
}

func TestAsignarCodigoAgotaIntentos(t *testing.T) {
	consultas := 0
	_, err := asignarCodigo("", func(string) bool {
		consultas++
		return true
	})
	assert.Error(t, err)
	assert.Equal(t, maxIntentosCodigo, consultas)
}

// El índice único es quien resuelve la carrera pre-check/insert: un
// duplicate key del insert también debe responder 400.
func TestCrearProductoErrorDuplicateKey(t *testing.T) {
	e := crearProductoError(gorm.ErrDuplicatedKey)
	assert.Equal(t, http.StatusBadRequest, e.Code)

	e = crearProductoError(fmt.Errorf("insert productos: %w", gorm.ErrDuplicatedKey))
	assert.Equal(t, http.StatusBadRequest, e.Code)

	e = crearProductoError(fmt.Errorf("conexión perdida"))
	assert.Equal(t, http.StatusInternalServerError, e.Code)
}

func TestObtenerProductoBadID(t *testing.T) {
	app := fiber.New()
	app.Get("/productos/:producto_id", ObtenerProductoHandler())

	req := httptest.NewRequest(http.MethodGet, "/productos/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
