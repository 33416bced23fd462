package dfswalk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/dfswalk"
)

func TestStackPushTopPop(t *testing.T) {
	s := dfswalk.NewStack(4)
	require.True(t, s.Empty())

	s.Push(0, -1, []int{10, 11, 12})
	require.Equal(t, 1, s.Len())

	top := s.Top()
	require.False(t, top.Done())
	require.Equal(t, 10, top.Next())
	require.Equal(t, 11, top.Next())
	require.False(t, top.Done())
	require.Equal(t, 12, top.Next())
	require.True(t, top.Done())

	s.Push(1, 10, nil)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Top().Done())

	s.Pop()
	require.Equal(t, 1, s.Len())
	require.Equal(t, 0, s.Top().Vertex)

	s.Pop()
	require.True(t, s.Empty())
}
