package usuario

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ConstrutoraVallim/api-gestao/internal/utils"
)

type repositorioFake struct {
	porEmail map[string]*Usuario
	salvos   []*Usuario
}

func (r *repositorioFake) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	if u, ok := r.porEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *repositorioFake) Salvar(db *gorm.DB, u *Usuario) error {
	r.salvos = append(r.salvos, u)
	return nil
}

func (r *repositorioFake) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *repositorioFake) ListarTodos(db *gorm.DB) ([]Usuario, error) { return nil, nil }

func (r *repositorioFake) Atualizar(db *gorm.DB, id uint, novosDados *Usuario) error { return nil }

func (r *repositorioFake) Deletar(db *gorm.DB, id uint) error { return nil }

func TestRedefinirSenha_EntregaPorEmailENuncaNaResposta(t *testing.T) {
	senhaAntiga, err := utils.HashSenha("senha-antiga")
	require.NoError(t, err)

	usuario := &Usuario{Email: "ana@construtora.com", Senha: senhaAntiga}
	repo := &repositorioFake{porEmail: map[string]*Usuario{usuario.Email: usuario}}

	var destinatario, senhaEnviada string
	h := &Handler{
		Repository: repo,
		EnviarSenha: func(dest, senha string) error {
			destinatario = dest
			senhaEnviada = senha
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/redefinir-senha",
		strings.NewReader(`{"email":"ana@construtora.com"}`))
	rec := httptest.NewRecorder()
	h.RedefinirSenha(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// a senha vai para o e-mail do usuário e já funciona no login
	assert.Equal(t, "ana@construtora.com", destinatario)
	require.NotEmpty(t, senhaEnviada)
	assert.True(t, utils.VerificarSenha(usuario.Senha, senhaEnviada))
	assert.True(t, usuario.PrecisaRedefinirSenha)
	require.Len(t, repo.salvos, 1)

	// e nunca aparece no corpo da resposta
	assert.NotContains(t, rec.Body.String(), senhaEnviada)
	var corpo map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &corpo))
	_, temSenha := corpo["senhaTemporaria"]
	assert.False(t, temSenha)
}

func TestRedefinirSenha_EmailDesconhecidoNaoVazaCadastro(t *testing.T) {
	repo := &repositorioFake{porEmail: map[string]*Usuario{}}

	enviado := false
	h := &Handler{
		Repository: repo,
		EnviarSenha: func(dest, senha string) error {
			enviado = true
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/redefinir-senha",
		strings.NewReader(`{"email":"ninguem@construtora.com"}`))
	rec := httptest.NewRecorder()
	h.RedefinirSenha(rec, req)

	// mesma resposta de sucesso, nada salvo, nada enviado
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, enviado)
	assert.Empty(t, repo.salvos)
}

func TestRedefinirSenha_FalhaNoEnvioRetornaErro(t *testing.T) {
	senha, err := utils.HashSenha("qualquer")
	require.NoError(t, err)

	usuario := &Usuario{Email: "ana@construtora.com", Senha: senha}
	repo := &repositorioFake{porEmail: map[string]*Usuario{usuario.Email: usuario}}

	h := &Handler{
		Repository: repo,
		EnviarSenha: func(dest, senha string) error {
			return errors.New("ses fora do ar")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/redefinir-senha",
		strings.NewReader(`{"email":"ana@construtora.com"}`))
	rec := httptest.NewRecorder()
	h.RedefinirSenha(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
