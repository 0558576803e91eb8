package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestDelta_BothPresent(t *testing.T) {
	assert.Equal(t, 2, Delta(intp(5), intp(3)))
	assert.Equal(t, -2, Delta(intp(3), intp(5)))
	assert.Equal(t, 0, Delta(intp(7), intp(7)))
}

func TestDelta_MissingCapture(t *testing.T) {
	assert.Equal(t, 0, Delta(nil, intp(3)))
	assert.Equal(t, 0, Delta(intp(5), nil))
	assert.Equal(t, 0, Delta(nil, nil))
}
