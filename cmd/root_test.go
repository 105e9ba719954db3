package main

import (
	"testing"

	"github.com/tj/assert"
)

func TestRootCommand(t *testing.T) {
	root := rootCommand()

	serve, _, err := root.Find([]string{"serve"})
	assert.Nil(t, err)
	assert.Equal(t, "serve", serve.Name())
	assert.NotNil(t, serve.Flags().Lookup("port"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestServeRejectsBadConfig(t *testing.T) {
	t.Setenv("API_BASE_URL", "not a url")

	root := rootCommand()
	root.SetArgs([]string{"serve", "--port", "0"})

	assert.NotNil(t, root.Execute())
}
