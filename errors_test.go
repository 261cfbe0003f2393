package fastbc_test

import (
	"errors"
	"testing"

	"github.com/arrowgraph/fastbc"
	"github.com/stretchr/testify/require"
)

func TestError_UnwrapAndAs(t *testing.T) {
	cause := errors.New("boom")
	err := fastbc.NewError(fastbc.KindOutputExists, cause)

	require.ErrorIs(t, err, cause)

	var target *fastbc.Error
	require.True(t, errors.As(err, &target))
	require.Equal(t, fastbc.KindOutputExists, target.Kind)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "InvalidInput", fastbc.KindInvalidInput.String())
	require.Equal(t, "InconsistentSubGraph", fastbc.KindInconsistentSubGraph.String())
	require.Equal(t, "OutputExists", fastbc.KindOutputExists.String())
}
