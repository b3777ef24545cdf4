package barcode

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	_ "golang.org/x/image/webp"
)

var (
	// ErrImagenIlegible: los bytes subidos no son una imagen decodificable.
	ErrImagenIlegible = errors.New("no se pudo leer la imagen")
	// ErrSinCodigos: la imagen se leyó pero no contiene ningún símbolo.
	ErrSinCodigos = errors.New("no se detectó ningún código de barras en la imagen")
)

var acceptedContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
}

// ContentTypeAccepted reports whether the upload content type is one of the
// supported image formats. Parameters after ";" are ignored.
func ContentTypeAccepted(ct string) bool {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return acceptedContentTypes[strings.ToLower(strings.TrimSpace(ct))]
}

const (
	// Profundidad máxima de la división en franjas.
	maxProfundidad = 4
	// Una región más estrecha que esto no puede contener un símbolo.
	minRegion = 24
)

// Decode localiza y decodifica todos los símbolos presentes en la imagen.
// La imagen se pasa a escala de grises antes de buscar: los lectores
// dependen del contraste, no del color.
func Decode(data []byte) ([]string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrImagenIlegible
	}

	d := &detector{
		readers: []gozxing.Reader{
			oned.NewEAN13Reader(),
			oned.NewCode128Reader(),
		},
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
	d.buscar(imaging.Grayscale(img), 0)

	if len(d.payloads) == 0 {
		return nil, ErrSinCodigos
	}
	return d.payloads, nil
}

// detector busca símbolos dividiendo la imagen en franjas alrededor de cada
// hallazgo, al estilo del GenericMultipleBarcodeReader de zxing: decodifica
// un símbolo y sigue buscando en lo que queda a la izquierda, arriba, a la
// derecha y abajo de él. Las franjas se solapan, así que un texto ya
// registrado no se vuelve a añadir.
type detector struct {
	readers  []gozxing.Reader
	hints    map[gozxing.DecodeHintType]interface{}
	payloads []string
}

func (d *detector) buscar(img image.Image, profundidad int) {
	if profundidad > maxProfundidad {
		return
	}
	ancho, alto := img.Bounds().Dx(), img.Bounds().Dy()
	if ancho < minRegion || alto < minRegion {
		return
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return
	}
	res := d.decodificarUno(bmp)
	if res == nil {
		return
	}

	texto := res.GetText()
	if !d.registrado(texto) {
		d.payloads = append(d.payloads, texto)
	}

	minX, minY, maxX, maxY := extension(res, ancho, alto)

	if minX >= minRegion {
		d.buscar(imaging.Crop(img, image.Rect(0, 0, minX, alto)), profundidad+1)
	}
	if minY >= minRegion {
		d.buscar(imaging.Crop(img, image.Rect(0, 0, ancho, minY)), profundidad+1)
	}
	if ancho-maxX >= minRegion {
		d.buscar(imaging.Crop(img, image.Rect(maxX, 0, ancho, alto)), profundidad+1)
	}
	if alto-maxY >= minRegion {
		d.buscar(imaging.Crop(img, image.Rect(0, maxY, ancho, alto)), profundidad+1)
	}
}

// decodificarUno prueba en orden los lectores de los dos formatos que este
// sistema emite; nil cuando ninguno encuentra un símbolo en la región.
func (d *detector) decodificarUno(bmp *gozxing.BinaryBitmap) *gozxing.Result {
	for _, rd := range d.readers {
		rd.Reset()
		if res, err := rd.Decode(bmp, d.hints); err == nil {
			return res
		}
	}
	return nil
}

func (d *detector) registrado(texto string) bool {
	for _, p := range d.payloads {
		if p == texto {
			return true
		}
	}
	return false
}

// extension devuelve el rectángulo que cubren los puntos del resultado,
// acotado a la región. Sin puntos se asume la región completa, lo que corta
// la recursión.
func extension(res *gozxing.Result, ancho, alto int) (minX, minY, maxX, maxY int) {
	pts := res.GetResultPoints()
	if len(pts) == 0 {
		return 0, 0, ancho, alto
	}
	minX, minY = ancho, alto
	for _, p := range pts {
		x, y := int(p.GetX()), int(p.GetY())
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > ancho {
		maxX = ancho
	}
	if maxY > alto {
		maxY = alto
	}
	return minX, minY, maxX, maxY
}
