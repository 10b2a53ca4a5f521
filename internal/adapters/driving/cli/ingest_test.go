package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCmd_ProcessesDirectory(t *testing.T) {
	mock := &mockQueryService{ingested: 3}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "papers"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "papers", mock.lastDir)
	assert.Contains(t, buf.String(), "Processed 3 documents")
}

func TestIngestCmd_DefaultsToConfiguredInbox(t *testing.T) {
	mock := &mockQueryService{ingested: 1}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "pdfs", mock.lastDir)
}

func TestIngestCmd_NoDocuments(t *testing.T) {
	mock := &mockQueryService{ingested: 0}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "empty"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No PDF documents found")
}
