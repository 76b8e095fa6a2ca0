package auth

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// o segredo só é lido no primeiro uso, então definir a variável aqui
// (como o main faz via godotenv antes de subir o servidor) basta.
func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "segredo-de-teste")
	os.Exit(m.Run())
}

func TestGerarEValidarToken(t *testing.T) {
	token, err := GerarToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestValidarToken_Invalido(t *testing.T) {
	_, err := ValidarToken("nem-de-longe-um-jwt")
	assert.Error(t, err)

	token, err := GerarToken(7, false)
	require.NoError(t, err)

	// token adulterado não valida
	_, err = ValidarToken(token + "x")
	assert.Error(t, err)
}
