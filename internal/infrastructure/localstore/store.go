// Package localstore implementa la persistencia del crediário sobre un
// almacén clave-valor local durable (archivo SQLite).
//
// El contrato es el de un localStorage: dos slots con arreglos JSON, lectura
// y escritura síncronas, sin transacciones entre slots. Cada mutación es un
// ciclo completo leer-modificar-escribir de la colección afectada, O(n) por
// llamada, aceptable para una tienda con un único operador.
package localstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/iwr-crediario/internal/domain"
)

// Slots persistidos. Los nombres de clave son parte del esquema: cambiarlos
// dejaría ilegibles los almacenes existentes.
const (
	SlotCustomers = "iwr_customers"
	SlotNotes     = "iwr_notes"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_slots (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// Store almacén clave-valor durable respaldado por SQLite.
type Store struct {
	db *sqlx.DB
}

// Open abre (o crea) el archivo del almacén y garantiza el esquema.
// Una sola conexión: el modelo de ejecución es síncrono y mono-sesión.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: abrir %s: %v", domain.ErrStoreUnavailable, path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: crear esquema: %v", domain.ErrStoreUnavailable, err)
	}
	return &Store{db: db}, nil
}

// Get devuelve los bytes del slot y si el slot existe.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.Get(&value, `SELECT value FROM kv_slots WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: leer slot %s: %v", domain.ErrStoreUnavailable, key, err)
	}
	return value, true, nil
}

// Set escribe los bytes del slot (upsert).
func (s *Store) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv_slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: escribir slot %s: %v", domain.ErrStoreUnavailable, key, err)
	}
	return nil
}

// Close cierra la conexión con el archivo.
func (s *Store) Close() error {
	return s.db.Close()
}
