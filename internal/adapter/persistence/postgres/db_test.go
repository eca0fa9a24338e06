package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "result_lines_result_id_parameter_id_key"}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert lines: %w", dup)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	if got := nullable("pat-1"); assert.NotNil(t, got) {
		assert.Equal(t, "pat-1", *got)
	}
}

func TestTestIDs(t *testing.T) {
	assert.Equal(t, []string{}, testIDs(nil))
	assert.Equal(t, []string{"cbc"}, testIDs([]string{"cbc"}))
}
