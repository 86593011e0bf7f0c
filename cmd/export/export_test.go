package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportCommandMetadata(t *testing.T) {
	assert.Equal(t, "export", Cmd.Use)
	assert.NotNil(t, Cmd.Run)
}

func TestExportCommandFlags(t *testing.T) {
	format := Cmd.Flags().Lookup("format")
	assert.NotNil(t, format)
	assert.Equal(t, "json", format.DefValue)

	assert.NotNil(t, Cmd.Flags().Lookup("output"))
}
