package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentsListCmd(t *testing.T) {
	mock := &mockQueryService{docIDs: []string{"alpha", "beta"}}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"documents", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "alpha")
	assert.Contains(t, buf.String(), "beta")
	assert.Contains(t, buf.String(), "Total: 2 documents")
}

func TestDocumentsListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices(&mockQueryService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"documents", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No documents processed yet")
}

func TestDocumentsShowCmd(t *testing.T) {
	mock := &mockQueryService{docIDs: []string{"paper"}}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"documents", "show", "paper"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "**Document: paper.pdf**")
}

func TestDocumentsShowCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices(&mockQueryService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"documents", "show", "missing"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "document not found")
}
