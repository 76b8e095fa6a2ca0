package alojamento

import (
	"testing"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMontarContasDaCompetencia(t *testing.T) {
	obraID := uint(4)
	a := Alojamento{
		ID:     2,
		Nome:   "Casa Vila Nova",
		ObraID: &obraID,
		ContasRecorrentes: []ContaRecorrente{
			{Descricao: "Luz", Valor: 320.50, DiaVencimento: 10},
			{Descricao: "Água", Valor: 180, DiaVencimento: 15},
		},
	}

	competencia := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	contas := MontarContasDaCompetencia(a, competencia)

	require.Len(t, contas, 2)

	assert.Equal(t, "Luz - Casa Vila Nova (06/2024)", contas[0].Descricao)
	assert.Equal(t, 320.50, contas[0].Valor)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), contas[0].DataVencimento)
	assert.Equal(t, conta.StatusPendente, contas[0].Status)
	require.NotNil(t, contas[0].AlojamentoID)
	assert.Equal(t, uint(2), *contas[0].AlojamentoID)
	require.NotNil(t, contas[0].ObraID)
	assert.Equal(t, uint(4), *contas[0].ObraID)

	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), contas[1].DataVencimento)
}

func TestMontarContasDaCompetencia_NormalizaDiaInvalido(t *testing.T) {
	a := Alojamento{
		ID:   1,
		Nome: "Kitnet Centro",
		ContasRecorrentes: []ContaRecorrente{
			{Descricao: "Internet", Valor: 99.90, DiaVencimento: 31},
			{Descricao: "Gás", Valor: 120, DiaVencimento: 0},
		},
	}

	competencia := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	contas := MontarContasDaCompetencia(a, competencia)

	require.Len(t, contas, 2)
	for _, c := range contas {
		assert.Equal(t, time.February, c.DataVencimento.Month())
		assert.Equal(t, 28, c.DataVencimento.Day())
	}
}

func TestMontarContasDaCompetencia_SemMoldes(t *testing.T) {
	contas := MontarContasDaCompetencia(Alojamento{Nome: "Vazio"}, time.Now())
	assert.Empty(t, contas)
}
