package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionLifecycle(t *testing.T) {
	var c Collection[int]
	assert.Equal(t, StatusIdle, c.Status())
	assert.Nil(t, c.Items())

	gen := c.Begin()
	assert.Equal(t, StatusLoading, c.Status())

	assert.True(t, c.Complete(gen, []int{1, 2}))
	assert.Equal(t, StatusReady, c.Status())
	assert.Equal(t, []int{1, 2}, c.Items())
}

func TestCollectionDiscardsStaleGenerations(t *testing.T) {
	var c Collection[string]
	first := c.Begin()
	second := c.Begin()

	assert.True(t, c.Complete(second, []string{"new"}))
	assert.False(t, c.Complete(first, []string{"old"}))
	assert.False(t, c.Fail(first, errors.New("late failure")))

	assert.Equal(t, []string{"new"}, c.Items())
	assert.Equal(t, StatusReady, c.Status())
	assert.NoError(t, c.Err())
}

func TestCollectionFailureKeepsPreviousItems(t *testing.T) {
	var c Collection[int]
	c.Complete(c.Begin(), []int{7})

	boom := errors.New("boom")
	assert.True(t, c.Fail(c.Begin(), boom))
	assert.Equal(t, StatusFailed, c.Status())
	assert.Equal(t, boom, c.Err())
	assert.Equal(t, []int{7}, c.Items())
}

func TestCollectionNilResultIsEmpty(t *testing.T) {
	var c Collection[int]
	c.Complete(c.Begin(), nil)
	assert.NotNil(t, c.Items())
	assert.Empty(t, c.Items())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "unknown", Status(42).String())

	b, err := StatusFailed.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "failed", string(b))
}
