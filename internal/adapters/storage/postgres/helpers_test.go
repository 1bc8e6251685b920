package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "shelters_user_id_key"}

	if !isUniqueViolation(unique) {
		t.Fatalf("expected 23505 to be detected")
	}
	// También envuelto, como lo devuelve database/sql en algunos paths.
	if !isUniqueViolation(fmt.Errorf("exec: %w", unique)) {
		t.Fatalf("expected wrapped 23505 to be detected")
	}

	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation must not count as unique violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Fatalf("plain error must not count as unique violation")
	}
	if isUniqueViolation(nil) {
		t.Fatalf("nil must not count as unique violation")
	}
}
