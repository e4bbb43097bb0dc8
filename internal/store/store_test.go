package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("unique violation code", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", ConstraintName: "favorites_user_id_book_id_key"}
		assert.True(t, isUniqueViolation(err))
	})

	t.Run("wrapped unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert favorite: %w", &pgconn.PgError{Code: "23505"})
		assert.True(t, isUniqueViolation(err))
	})

	t.Run("other pg error", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23503"} // foreign key violation
		assert.False(t, isUniqueViolation(err))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.False(t, isUniqueViolation(errors.New("connection refused")))
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, isUniqueViolation(nil))
	})
}
