package locacao

import (
	"testing"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/alerta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMontarSituacoes(t *testing.T) {
	hoje := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	locacoes := []Locacao{
		{Equipamento: "Betoneira", DataVencimento: time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)},
		{Equipamento: "Andaime", DataVencimento: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
		{Equipamento: "Gerador", DataVencimento: time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), Pago: true},
	}

	linhas := MontarSituacoes(locacoes, hoje)
	require.Len(t, linhas, 3)

	require.NotNil(t, linhas[0].Situacao)
	assert.Equal(t, alerta.SeveridadeUrgente, linhas[0].Situacao.Severidade)
	assert.Equal(t, 2, linhas[0].Situacao.DiasRestantes)

	require.NotNil(t, linhas[1].Situacao)
	assert.Equal(t, alerta.SeveridadeVencido, linhas[1].Situacao.Severidade)

	// locação paga não carrega situação
	assert.Nil(t, linhas[2].Situacao)
}

// a tela de locações usa o mesmo classificador do painel: para a mesma
// data os dois lugares têm que concordar
func TestMontarSituacoes_CoerenteComClassificador(t *testing.T) {
	hoje := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	vencimento := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	linhas := MontarSituacoes([]Locacao{{Equipamento: "Serra", DataVencimento: vencimento}}, hoje)
	require.Len(t, linhas, 1)
	require.NotNil(t, linhas[0].Situacao)

	esperada, err := alerta.Classificar(vencimento, hoje)
	require.NoError(t, err)
	assert.Equal(t, esperada, *linhas[0].Situacao)
}

func TestMontarSituacoes_DataZeradaFicaSemSituacao(t *testing.T) {
	hoje := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	linhas := MontarSituacoes([]Locacao{{Equipamento: "Compressor"}}, hoje)
	require.Len(t, linhas, 1)
	assert.Nil(t, linhas[0].Situacao)
}
