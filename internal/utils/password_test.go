package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, VerificarSenha(hash, "segredo123"))
	assert.False(t, VerificarSenha(hash, "outra-senha"))
}

func TestGerarSenhaTemporaria(t *testing.T) {
	a, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.Len(t, a, 12)

	b, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
