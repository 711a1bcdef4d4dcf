package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestWindowFullList(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	got, err := Window(items, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestWindowOffsetAndSize(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, err := Window(items, 1, intPtr(2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)
}

func TestWindowSizeLargerThanRemainder(t *testing.T) {
	items := []int{1, 2, 3}

	got, err := Window(items, 2, intPtr(10))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)
}

func TestWindowOffsetEqualsLength(t *testing.T) {
	items := []int{1, 2, 3}

	got, err := Window(items, 3, intPtr(5))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWindowOffsetPastEnd(t *testing.T) {
	items := []int{1, 2, 3}

	_, err := Window(items, 4, nil)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
}

func TestWindowEmptyInput(t *testing.T) {
	got, err := Window([]int{}, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Window([]int{}, 1, nil)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
}
