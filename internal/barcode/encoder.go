package barcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	bcode "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Prefijo de las imágenes transitorias; el sweep de arranque lo usa
	// para reconocer restos de ejecuciones anteriores.
	tmpFilePrefix = "barcode-"

	symbolHeight = 120
	scaleFactor  = 3
	quietZone    = 24 // margen blanco, los lectores lo necesitan
)

// Encode valida el identificador y lo renderiza como PNG.
func Encode(code string, f Format) ([]byte, error) {
	var (
		bc  bcode.Barcode
		err error
	)

	switch f {
	case FormatEAN13:
		if !ValidEAN13(code) {
			return nil, fmt.Errorf("código EAN-13 inválido: %q", code)
		}
		bc, err = ean.Encode(code)
	case FormatCode128:
		if code == "" {
			return nil, fmt.Errorf("código Code 128 vacío")
		}
		bc, err = code128.Encode(code)
	default:
		return nil, fmt.Errorf("tipo de código no soportado: %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("no se pudo codificar %q: %w", code, err)
	}

	scaled, err := bcode.Scale(bc, bc.Bounds().Dx()*scaleFactor, symbolHeight)
	if err != nil {
		return nil, fmt.Errorf("no se pudo escalar el código: %w", err)
	}

	// Lienzo blanco con zona de silencio alrededor del símbolo.
	w := scaled.Bounds().Dx() + 2*quietZone
	h := scaled.Bounds().Dy() + 2*quietZone
	canvas := imaging.New(w, h, color.White)
	canvas = imaging.Paste(canvas, scaled, image.Pt(quietZone, quietZone))

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("no se pudo generar el PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeToFile escribe el PNG en dir como archivo transitorio y devuelve la
// ruta. El que llama es responsable de eliminarlo en todas las salidas
// (defer os.Remove). Sin filename se usa un nombre generado con uuid.
func EncodeToFile(code string, f Format, dir, filename string) (string, error) {
	data, err := Encode(code, f)
	if err != nil {
		return "", err
	}

	if filename == "" {
		filename = uuid.NewString() + ".png"
	} else {
		filename = filepath.Base(filename)
		if !strings.HasSuffix(strings.ToLower(filename), ".png") {
			filename += ".png"
		}
	}

	path := filepath.Join(dir, tmpFilePrefix+filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("no se pudo escribir la imagen transitoria: %w", err)
	}
	return path, nil
}
