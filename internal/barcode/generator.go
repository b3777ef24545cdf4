package barcode

import (
	"fmt"
	"math/rand"
	"strings"
)

// Format is a supported barcode symbology.
type Format string

const (
	FormatEAN13   Format = "ean13"
	FormatCode128 Format = "code128"
)

// Alphabet for generated Code 128 identifiers.
const code128Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"

// ParseFormat normaliza el tipo recibido por la API. Vacío equivale a EAN-13.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ean13", "ean-13":
		return FormatEAN13, nil
	case "code128", "code-128":
		return FormatCode128, nil
	default:
		return "", fmt.Errorf("tipo de código no soportado: %q", s)
	}
}

// Generate produces a syntactically valid identifier for the symbology.
// No uniqueness guarantee; callers must check against stored codes.
func Generate(f Format) (string, error) {
	switch f {
	case FormatEAN13:
		return generateEAN13(), nil
	case FormatCode128:
		return generateCode128(), nil
	default:
		return "", fmt.Errorf("tipo de código no soportado: %q", f)
	}
}

// generateEAN13 returns 13 digits: leading digit 1-9, 11 random digits and
// the mod-10 check digit. The full checksum-valid code is what gets stored
// and rendered.
func generateEAN13() string {
	digits := make([]byte, 13)
	digits[0] = byte('1' + rand.Intn(9))
	for i := 1; i < 12; i++ {
		digits[i] = byte('0' + rand.Intn(10))
	}
	digits[12] = byte('0' + ean13CheckDigit(string(digits[:12])))
	return string(digits)
}

// ean13CheckDigit computes the standard weighted mod-10 check digit over a
// 12-digit payload (weights 1 and 3 alternating, position 2 weighted 3).
func ean13CheckDigit(payload string) int {
	sum := 0
	for i, c := range payload {
		d := int(c - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// ValidEAN13 reports whether code is exactly 13 digits with a correct
// check digit.
func ValidEAN13(code string) bool {
	if len(code) != 13 {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return int(code[12]-'0') == ean13CheckDigit(code[:12])
}

func generateCode128() string {
	n := 8 + rand.Intn(8) // longitud 8-15
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(code128Alphabet[rand.Intn(len(code128Alphabet))])
	}
	return b.String()
}
