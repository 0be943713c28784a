package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ReportsEveryField(t *testing.T) {
	var c Collector
	require.True(t, c.Empty())
	require.NoError(t, c.Err())

	c.Add("name", "required")
	c.Add("email", "must be a valid email")
	c.Add("name", "must be 255 characters or less")

	err := c.Err()
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"required", "must be 255 characters or less"}, e.Details()["name"])
	assert.Equal(t, []string{"email", "name"}, e.SortedFields())
}

func TestCollector_MergeIgnoresOtherKinds(t *testing.T) {
	var c Collector
	c.Merge(NotFound("Company"))
	assert.True(t, c.Empty())

	c.Merge(Invalid("role", "required"))
	assert.False(t, c.Empty())
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create company: %w", Conflictf("a company with this name already exists"))
	assert.True(t, Is(err, KindConflict))
	assert.False(t, Is(err, KindNotFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, Is(nil, KindInternal))
}

func TestUnavailable_HidesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Unavailable(cause)
	assert.Equal(t, "store unavailable", err.Message)
	assert.ErrorIs(t, err, cause)
}
