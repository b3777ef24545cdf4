package inventario

import (
	"log"

	"puntoventa-backend/internal/models"
)

// resolverCodigos resuelve cada payload decodificado contra buscar.
// Los códigos sin producto asociado se registran y se omiten; los
// duplicados en la imagen producen entradas duplicadas. Que al menos uno
// resuelva ya es un éxito; el handler decide qué hacer con la lista vacía.
func resolverCodigos(payloads []string, buscar func(codigo string) (models.Producto, bool)) []models.Producto {
	productos := make([]models.Producto, 0, len(payloads))
	for _, codigo := range payloads {
		p, ok := buscar(codigo)
		if !ok {
			log.Printf("Código detectado sin producto asociado: %s", codigo)
			continue
		}
		productos = append(productos, p)
	}
	return productos
}
