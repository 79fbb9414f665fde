package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/turnero-digital/turnero-api/internal/httperr"
)

const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

// translatePG convierte violaciones de restricciones en errores de
// negocio: el índice único de slot / asistencia cierra la carrera
// check-then-act y aquí su fallo se vuelve un conflicto normal.
func translatePG(err error, conflictMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgFKViolation:
			return httperr.ErrBusinessMsg(httperr.CodeConflict, conflictMsg)
		}
	}
	return err
}
