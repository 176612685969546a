package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Blink_Lifecycle(t *testing.T) {
	b := NewBlink()

	assert.False(t, b.IsActive())
	assert.Equal(t, empty, b.Frame())

	b.Start()

	frames := make(map[string]bool)
	for i := 0; i < 20; i++ {
		b.Update()
		frames[b.Frame()] = true
	}

	assert.True(t, b.IsActive())
	assert.True(t, frames[full])
	assert.True(t, frames[empty])

	b.Stop()

	assert.False(t, b.IsActive())
	assert.Equal(t, empty, b.Frame())
}

func Test_Blink_UpdateWhenIdle(t *testing.T) {
	b := NewBlink()
	b.Update()

	assert.Equal(t, empty, b.Frame())
}
