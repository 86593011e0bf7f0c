package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "finledger", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.Run)
	assert.NotNil(t, Cmd.PersistentPreRun)
}

func TestSetupBuildsContainer(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FINLEDGER_DATA_LEDGER_FILE", dir+"/ledger.json")
	t.Setenv("FINLEDGER_DATA_GOALS_FILE", dir+"/goals.json")
	t.Setenv("FINLEDGER_DATA_CATEGORIES_FILE", dir+"/categories.yaml")

	c, err := Setup()
	require.NoError(t, err)
	assert.NotNil(t, c.Ledger())
}
