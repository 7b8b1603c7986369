package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertZeroSize(t *testing.T) {
	type stateless struct{}
	type stateful struct{ _ int }

	assert.NotPanics(t, AssertZeroSize[stateless])
	assert.Panics(t, AssertZeroSize[stateful])
}
