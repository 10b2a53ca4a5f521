package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPorts_Validate(t *testing.T) {
	ports := &Ports{Query: &mockQueryService{}}

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingQuery(t *testing.T) {
	ports := &Ports{}

	assert.ErrorIs(t, ports.Validate(), ErrMissingQueryService)
}

func TestNewServer(t *testing.T) {
	server, err := NewServer(&Ports{Query: &mockQueryService{}})

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewServer_MissingQuery(t *testing.T) {
	server, err := NewServer(&Ports{})

	assert.ErrorIs(t, err, ErrMissingQueryService)
	assert.Nil(t, server)
}
