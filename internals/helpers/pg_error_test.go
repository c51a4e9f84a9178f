package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_fee_grade_period_terms"}

	assert.True(t, IsUniqueViolation(dup))
	// error dari GORM biasanya sudah dibungkus
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert gagal: %w", dup)))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"})) // FK violation
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}
