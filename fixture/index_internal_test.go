package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelRepeats(t *testing.T) {
	t.Parallel()
	require.Equal(t, []int{1}, levelRepeats(1))
	require.Equal(t, []int{2, 1}, levelRepeats(2))
	require.Equal(t, []int{4, 2, 1}, levelRepeats(3))
	require.Equal(t, []int{6, 4, 2, 1}, levelRepeats(4))
}
