package barcode

import (
	"log"
	"os"
	"path/filepath"
)

// SweepTmp elimina imágenes transitorias que quedaron de ejecuciones
// anteriores (caídas del proceso). Es un respaldo: la limpieza normal es
// por request, con defer.
func SweepTmp(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, tmpFilePrefix+"*.png"))
	if err != nil {
		return
	}
	removed := 0
	for _, m := range matches {
		if err := os.Remove(m); err == nil {
			removed++
		}
	}
	if removed > 0 {
		log.Printf("Limpieza de arranque: %d imagen(es) transitoria(s) eliminada(s) de %s", removed, dir)
	}
}
