package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_PrintsAnswer(t *testing.T) {
	mock := &mockQueryService{answer: "The accuracy is 92%."}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "What is the accuracy?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "The accuracy is 92%.")
	assert.Equal(t, "What is the accuracy?", mock.lastAsked)
}

func TestAskCmd_DocFlag(t *testing.T) {
	mock := &mockQueryService{answer: "scoped"}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--doc", "paper", "What does it say?"})
	defer func() {
		rootCmd.SetArgs(nil)
		askDocID = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "paper", mock.lastDocID)
}

func TestAskCmd_ServiceNotConfigured(t *testing.T) {
	oldService := queryService
	queryService = nil
	defer func() {
		queryService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "query service not configured")
}
