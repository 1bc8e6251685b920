package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const timeLayout = time.RFC3339Nano

func parseDocTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// isUniqueViolation detecta el unique index (applicant_user_id, pet_id):
// ese índice es el respaldo de la unicidad cuando dos Submit corren a la vez.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
