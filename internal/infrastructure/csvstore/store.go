// Package csvstore implementa el Record Store sobre archivos CSV planos:
// un archivo por colección, fila de cabecera con los nombres de campo y una
// fila por registro, con los números codificados como strings.
//
// El contrato es carga completa / reemplazo completo: Save reescribe el
// archivo con exactamente los registros recibidos, en orden; los append los
// hacen los callers en memoria. La escritura pasa por un archivo temporal en
// el mismo directorio seguido de rename, de modo que un crash a mitad de
// guardado no deja la colección corrupta. Modelo de escritor único: no hay
// locking, dos ciclos load→append→save concurrentes pierden registros.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdrojas/plomeria-pos/internal/domain"
)

// Store carga y guarda colecciones con respaldo en dir.
type Store struct {
	dir string
}

// New construye el store. El directorio se crea en el primer Save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path devuelve la ruta del archivo de respaldo de una colección.
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".csv")
}

// Load lee todas las filas de datos de la colección (sin la cabecera).
// Si el archivo no existe retorna la colección vacía junto con
// domain.ErrMissingFile: el caller continúa en modo degradado y lo reporta.
func (s *Store) Load(collection string) ([][]string, error) {
	f, err := os.Open(s.Path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("colección %s: %w", collection, domain.ErrMissingFile)
		}
		return nil, fmt.Errorf("abrir colección %s: %w", collection, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer colección %s: %w", collection, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil // descartar cabecera
}

// Save reescribe la colección completa: cabecera + filas, vía temp + rename.
func (s *Store) Save(collection string, header []string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal para %s: %w", collection, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op si el rename ya ocurrió

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir cabecera de %s: %w", collection, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("escribir fila de %s: %w", collection, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("volcar colección %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal de %s: %w", collection, err)
	}
	if err := os.Rename(tmpName, s.Path(collection)); err != nil {
		return fmt.Errorf("reemplazar colección %s: %w", collection, err)
	}
	return nil
}
