package parallel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootReturnsSameInstance(t *testing.T) {
	a := Root()
	b := Root()
	require.Same(t, a, b)
}
