package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	raw := &pq.Error{Code: "40001"}

	assert.True(t, IsSerializationFailure(raw))
	assert.True(t, IsSerializationFailure(fmt.Errorf("GetByID - serialization conflict: %w", raw)))

	// Заворачивание через %v рвёт цепочку - код больше не виден
	assert.False(t, IsSerializationFailure(fmt.Errorf("scan slot: %v", raw)))

	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("boom")))
	assert.False(t, IsSerializationFailure(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	raw := &pq.Error{Code: "23505"}

	assert.True(t, IsUniqueViolation(raw))
	assert.True(t, IsUniqueViolation(fmt.Errorf("execute insert: %w", raw)))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "40001"}))
}
