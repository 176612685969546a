package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"beagle/internal/app/errors"
	"beagle/internal/config"
)

func Test_RenderTitle(t *testing.T) {
	result := RenderTitle()

	assert.NotEmpty(t, result)
	assert.Contains(t, result, config.AppName)
	assert.Contains(t, result, config.Version)
	assert.Contains(t, result, config.AppDescription)
}

func Test_RenderHelp(t *testing.T) {
	result := RenderHelp()

	assert.Contains(t, result, "Usage:")
	assert.Contains(t, result, "Examples:")

	for _, e := range usageEntries {
		assert.Contains(t, result, e.name)
	}
}

func Test_RenderError(t *testing.T) {
	result := RenderError(errors.ErrNoInput)

	assert.Contains(t, result, "Error:")
	assert.Contains(t, result, errors.ErrNoInput.Error())
}
