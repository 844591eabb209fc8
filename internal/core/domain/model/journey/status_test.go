package journey_test

import (
	"testing"

	"foodjourney/internal/core/domain/model/journey"
	"foodjourney/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(journey.Unknown))
	assert.Equal(t, 1, int(journey.InProgress))
	assert.Equal(t, 2, int(journey.Completed))
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, journey.InProgress.Validate())
	require.NoError(t, journey.Completed.Validate())

	err := journey.Unknown.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "0 is not a valid status")

	require.ErrorIs(t, journey.Status(9).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Unknown", journey.Unknown.String())
	assert.Equal(t, "InProgress", journey.InProgress.String())
	assert.Equal(t, "Completed", journey.Completed.String())
	assert.Equal(t, "Unknown", journey.Status(9).String())
}

func TestStatus_Complete(t *testing.T) {
	t.Run("InProgress -> Completed", func(t *testing.T) {
		next, err := journey.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, journey.Completed, next)
		assert.True(t, next.IsFinal())
	})

	t.Run("Completed cannot complete again", func(t *testing.T) {
		next, err := journey.Completed.Complete()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Completed is not a valid status to complete")
		assert.Equal(t, journey.Unknown, next)
	})

	t.Run("Unknown cannot complete", func(t *testing.T) {
		_, err := journey.Unknown.Complete()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
