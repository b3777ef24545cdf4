package barcode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTypeAccepted(t *testing.T) {
	tests := []struct {
		ct   string
		want bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"image/jpg", true},
		{"image/webp", true},
		{"IMAGE/PNG", true},
		{"image/png; charset=binary", true},
		{"image/gif", false},
		{"text/plain", false},
		{"application/pdf", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContentTypeAccepted(tt.ct), "content type %q", tt.ct)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("esto no es una imagen"))
	assert.ErrorIs(t, err, ErrImagenIlegible)
}

func TestDecodeBlankImage(t *testing.T) {
	blanco := imaging.New(400, 200, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, blanco))

	_, err := Decode(buf.Bytes())
	assert.ErrorIs(t, err, ErrSinCodigos)
}

func TestDecodeSingleSymbol(t *testing.T) {
	const code = "4006381333931"
	data, err := Encode(code, FormatEAN13)
	require.NoError(t, err)

	payloads, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.Equal(t, code, payloads[0])
}

// Dos símbolos distintos en una misma imagen: ambos deben detectarse.
func TestDecodeMultipleSymbols(t *testing.T) {
	codigoA, err := Generate(FormatEAN13)
	require.NoError(t, err)
	codigoB, err := Generate(FormatEAN13)
	require.NoError(t, err)
	if codigoA == codigoB {
		t.Skip("colisión improbable de códigos generados")
	}

	imgA := mustDecodePNG(t, codigoA)
	imgB := mustDecodePNG(t, codigoB)

	// Lienzo con separación vertical amplia entre los dos símbolos.
	w := imgA.Bounds().Dx()
	if bw := imgB.Bounds().Dx(); bw > w {
		w = bw
	}
	h := imgA.Bounds().Dy() + imgB.Bounds().Dy() + 200
	canvas := imaging.New(w, h, color.White)
	canvas = imaging.Paste(canvas, imgA, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, imgB, image.Pt(0, imgA.Bounds().Dy()+200))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, canvas))

	payloads, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, payloads, 2)
	assert.ElementsMatch(t, []string{codigoA, codigoB}, payloads)
}

func mustDecodePNG(t *testing.T, code string) image.Image {
	t.Helper()
	data, err := Encode(code, FormatEAN13)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}
