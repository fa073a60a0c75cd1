package gatewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doismellburning/screech"
)

type fakeLine struct {
	values []int
	closed bool
}

func (f *fakeLine) SetValue(value int) error {
	f.values = append(f.values, value)

	return nil
}

func (f *fakeLine) Close() error {
	f.closed = true

	return nil
}

func TestUpdate_onlyWritesOnStateChange(t *testing.T) {
	pb := screech.NewPatchbay(1)
	point, ok := pb.Point()
	require.True(t, ok)

	fake := &fakeLine{}
	g := &Line{pb: pb, signal: point.Signal(), threshold: 0.5, line: fake}

	pb.Set(point, 0.1)
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.Empty(t, fake.values, "should not write until the line actually crosses threshold")

	pb.Set(point, 0.9)
	require.NoError(t, g.Update())
	assert.Equal(t, []int{1}, fake.values)

	require.NoError(t, g.Update())
	assert.Equal(t, []int{1}, fake.values, "repeated Update with no state change must not write again")

	pb.Set(point, 0.2)
	require.NoError(t, g.Update())
	assert.Equal(t, []int{1, 0}, fake.values)
}

func TestClose_closesUnderlyingLine(t *testing.T) {
	fake := &fakeLine{}
	g := &Line{line: fake}

	require.NoError(t, g.Close())
	assert.True(t, fake.closed)
}
