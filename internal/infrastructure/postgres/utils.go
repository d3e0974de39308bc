package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de PostgreSQL para choques de constraint único.
const codigoUniqueViolation = "23505"

// isUniqueViolation detecta un choque de constraint único, por ejemplo un
// username ya registrado.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUniqueViolation
}
