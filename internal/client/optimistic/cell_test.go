package optimistic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toggle(b bool) bool { return !b }

func TestApply_CommitSuccessKeepsValue(t *testing.T) {
	c := NewCell(false)

	var seenDuringCommit bool
	got, err := c.Apply(context.Background(), toggle, func(_ context.Context, v bool) error {
		seenDuringCommit = c.Get()
		assert.True(t, v)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, got)
	assert.True(t, seenDuringCommit, "value is applied before commit runs")
	assert.True(t, c.Get())
}

func TestApply_CommitFailureReverts(t *testing.T) {
	c := NewCell(3)
	boom := errors.New("boom")

	got, err := c.Apply(context.Background(), func(n int) int { return n + 1 }, func(context.Context, int) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, got)
	assert.Equal(t, 3, c.Get())
}

func TestApply_NewerWriteSurvivesRevert(t *testing.T) {
	c := NewCell("a")

	got, err := c.Apply(context.Background(), func(string) string { return "b" }, func(context.Context, string) error {
		c.Set("fresh")
		return errors.New("late failure")
	})
	require.Error(t, err)
	assert.Equal(t, "fresh", got)
	assert.Equal(t, "fresh", c.Get())
}

func TestApply_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	c := NewCell(0)

	_, err := c.Apply(ctx, func(n int) int { return n }, func(ctx context.Context, _ int) error {
		assert.Equal(t, "v", ctx.Value(key{}))
		return nil
	})
	require.NoError(t, err)
}
