package selectmultiple

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no display")
	err := fmt.Errorf("start: %w", NewInfrastructureError("init", cause))

	require.True(t, IsInfrastructureError(err))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "start: selectmultiple: init: no display", err.Error())
	require.Equal(t, "selectmultiple: render", NewInfrastructureError("render", nil).Error())
}

func TestIsCancelled(t *testing.T) {
	require.True(t, IsCancelled(fmt.Errorf("screen: %w", ErrCancelled)))
	require.False(t, IsCancelled(ErrMissingItems))
	require.False(t, IsInfrastructureError(ErrCancelled))
}
