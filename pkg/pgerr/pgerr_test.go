package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	exclusion := &pq.Error{Code: CodeExclusionViolation, Constraint: "bookings_unit_no_overlap"}
	wrapped := fmt.Errorf("insert booking: %w", exclusion)

	assert.True(t, IsExclusionViolation(wrapped))
	assert.False(t, IsUniqueViolation(wrapped))
	assert.Equal(t, "bookings_unit_no_overlap", Constraint(wrapped))

	assert.True(t, IsRetryable(&pq.Error{Code: CodeSerializationFailure}))
	assert.True(t, IsRetryable(&pq.Error{Code: CodeDeadlockDetected}))
	assert.False(t, IsRetryable(errors.New("boom")))
	assert.Equal(t, "", Code(nil))
}
