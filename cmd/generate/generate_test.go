package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCommandMetadata(t *testing.T) {
	assert.Equal(t, "generate", Cmd.Use)
	assert.Contains(t, Cmd.Short, "transaction report")
	assert.Contains(t, Cmd.Long, "auth.016.001.01")
	assert.NotNil(t, Cmd.RunE)
}

func TestGenerateCommandFlags(t *testing.T) {
	assert.NotNil(t, Cmd.Flags().Lookup("custom-only"))
	assert.NotNil(t, Cmd.Flags().Lookup("biz-msg-id"))
}
