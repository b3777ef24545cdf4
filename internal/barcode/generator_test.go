package barcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEAN13Properties(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := Generate(FormatEAN13)
		require.NoError(t, err)
		require.Len(t, code, 13)

		assert.GreaterOrEqual(t, code[0], byte('1'))
		assert.LessOrEqual(t, code[0], byte('9'))
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "dígito inesperado %q en %s", c, code)
		}
		assert.Equal(t, ean13CheckDigit(code[:12]), int(code[12]-'0'), "checksum incorrecto en %s", code)
		assert.True(t, ValidEAN13(code))
	}
}

func TestGenerateCode128Properties(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := Generate(FormatCode128)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(code), 8)
		assert.LessOrEqual(t, len(code), 15)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(code128Alphabet, c), "carácter inesperado %q en %s", c, code)
		}
	}
}

func TestEAN13CheckDigit(t *testing.T) {
	// 4006381333931 es el ejemplo clásico de EAN-13 con dígito de control 1.
	assert.Equal(t, 1, ean13CheckDigit("400638133393"))
	assert.Equal(t, 0, ean13CheckDigit("000000000000"))
}

func TestValidEAN13(t *testing.T) {
	assert.True(t, ValidEAN13("4006381333931"))
	assert.False(t, ValidEAN13("4006381333930"), "checksum incorrecto")
	assert.False(t, ValidEAN13("400638133393"), "12 dígitos")
	assert.False(t, ValidEAN13("40063813339311"), "14 dígitos")
	assert.False(t, ValidEAN13("400638133393a"), "carácter no numérico")
	assert.False(t, ValidEAN13(""))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatEAN13, false},
		{"ean13", FormatEAN13, false},
		{"EAN-13", FormatEAN13, false},
		{"code128", FormatCode128, false},
		{" Code-128 ", FormatCode128, false},
		{"qr", "", true},
		{"ean8", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "entrada %q", tt.in)
			continue
		}
		require.NoError(t, err, "entrada %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, err := Generate(Format("qr"))
	assert.Error(t, err)
}
