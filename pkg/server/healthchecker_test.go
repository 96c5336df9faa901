package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOkHealthChecker(t *testing.T) {
	assert.True(t, NewOkHealthChecker().Healthy(context.Background()))
}

func TestProbeHealthChecker(t *testing.T) {
	var reported error
	failing := NewProbeHealthChecker(
		func(context.Context) error { return errors.New("boom") },
		func(err error) { reported = err },
	)
	assert.False(t, failing.Healthy(context.Background()))
	assert.EqualError(t, reported, "boom")

	passing := NewProbeHealthChecker(func(context.Context) error { return nil }, nil)
	assert.True(t, passing.Healthy(context.Background()))
}
