package alerta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestClassificar_Faixas(t *testing.T) {
	hoje := dia(2024, time.June, 1)

	casos := []struct {
		nome       string
		alvo       time.Time
		severidade Severidade
		dias       int
	}{
		{"vencido ontem", dia(2024, time.May, 31), SeveridadeVencido, -1},
		{"vencido há dias", dia(2024, time.May, 20), SeveridadeVencido, -12},
		{"vence hoje é urgente", dia(2024, time.June, 1), SeveridadeUrgente, 0},
		{"limite superior urgente", dia(2024, time.June, 8), SeveridadeUrgente, 7},
		{"início atenção", dia(2024, time.June, 9), SeveridadeAtencao, 8},
		{"limite superior atenção", dia(2024, time.June, 16), SeveridadeAtencao, 15},
		{"início aviso", dia(2024, time.June, 17), SeveridadeAviso, 16},
		{"limite superior aviso", dia(2024, time.July, 1), SeveridadeAviso, 30},
		{"início em dia", dia(2024, time.July, 2), SeveridadeEmDia, 31},
		{"folga confortável", dia(2024, time.July, 15), SeveridadeEmDia, 44},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			cls, err := Classificar(c.alvo, hoje)
			require.NoError(t, err)
			assert.Equal(t, c.severidade, cls.Severidade)
			assert.Equal(t, c.dias, cls.DiasRestantes)
		})
	}
}

func TestClassificar_IgnoraHoraDoDia(t *testing.T) {
	hoje := dia(2024, time.June, 1)
	meiaNoite := dia(2024, time.June, 8)
	meioDia := time.Date(2024, time.June, 8, 13, 0, 0, 0, time.UTC)

	a, err := Classificar(meiaNoite, hoje)
	require.NoError(t, err)
	b, err := Classificar(meioDia, hoje)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	// a hora de "hoje" também não pode mudar o resultado
	fimDoDia := time.Date(2024, time.June, 1, 23, 59, 59, 0, time.UTC)
	c, err := Classificar(meiaNoite, fimDoDia)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestClassificar_FusosDiferentesContamDiasCivis(t *testing.T) {
	// datas gravadas em UTC classificadas contra um "hoje" no fuso do
	// servidor: a contagem é de dias civis, nunca de blocos de 24h
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	hoje := time.Date(2024, time.June, 1, 9, 0, 0, 0, saoPaulo)

	cls, err := Classificar(dia(2024, time.June, 9), hoje)
	require.NoError(t, err)
	assert.Equal(t, 8, cls.DiasRestantes)
	assert.Equal(t, SeveridadeAtencao, cls.Severidade)

	// todas as bordas das faixas continuam no lugar com "hoje" deslocado
	casos := []struct {
		alvo       time.Time
		severidade Severidade
		dias       int
	}{
		{dia(2024, time.May, 31), SeveridadeVencido, -1},
		{dia(2024, time.June, 1), SeveridadeUrgente, 0},
		{dia(2024, time.June, 8), SeveridadeUrgente, 7},
		{dia(2024, time.June, 16), SeveridadeAtencao, 15},
		{dia(2024, time.June, 17), SeveridadeAviso, 16},
		{dia(2024, time.July, 1), SeveridadeAviso, 30},
		{dia(2024, time.July, 2), SeveridadeEmDia, 31},
	}
	for _, c := range casos {
		cls, err := Classificar(c.alvo, hoje)
		require.NoError(t, err)
		assert.Equal(t, c.dias, cls.DiasRestantes)
		assert.Equal(t, c.severidade, cls.Severidade)
	}

	// e com os papéis invertidos: alvo no fuso local, hoje em UTC
	alvoLocal := time.Date(2024, time.June, 9, 22, 0, 0, 0, saoPaulo)
	cls, err = Classificar(alvoLocal, dia(2024, time.June, 1))
	require.NoError(t, err)
	assert.Equal(t, 8, cls.DiasRestantes)
}

func TestClassificar_DataZeradaRetornaErro(t *testing.T) {
	hoje := dia(2024, time.June, 1)

	_, err := Classificar(time.Time{}, hoje)
	assert.ErrorIs(t, err, ErrDataInvalida)

	_, err = Classificar(hoje, time.Time{})
	assert.ErrorIs(t, err, ErrDataInvalida)
}

func TestClassificar_TokensDeEstilo(t *testing.T) {
	hoje := dia(2024, time.June, 1)

	casos := []struct {
		alvo  time.Time
		label string
		cor   string
		fundo string
		borda string
	}{
		{dia(2024, time.May, 20), "Vencido", "text-red-600", "bg-red-50", "border-red-200"},
		{dia(2024, time.June, 3), "Urgente", "text-orange-600", "bg-orange-50", "border-orange-200"},
		{dia(2024, time.June, 10), "Atenção", "text-yellow-600", "bg-yellow-50", "border-yellow-200"},
		{dia(2024, time.June, 20), "Aviso", "text-blue-600", "bg-blue-50", "border-blue-200"},
		{dia(2024, time.August, 1), "Em dia", "text-green-600", "bg-green-50", "border-green-200"},
	}

	for _, c := range casos {
		cls, err := Classificar(c.alvo, hoje)
		require.NoError(t, err)
		assert.Equal(t, c.label, cls.Label)
		assert.Equal(t, c.cor, cls.Cor)
		assert.Equal(t, c.fundo, cls.Fundo)
		assert.Equal(t, c.borda, cls.Borda)
	}
}

func TestNormalizarData(t *testing.T) {
	comHora := time.Date(2024, time.June, 3, 17, 45, 12, 0, time.UTC)
	normalizada, err := NormalizarData(comHora)
	require.NoError(t, err)
	assert.Equal(t, dia(2024, time.June, 3), normalizada)

	// o dia civil preservado é o da própria data, e o resultado sai em UTC
	comFuso := time.Date(2024, time.June, 3, 1, 30, 0, 0, time.FixedZone("-03", -3*60*60))
	normalizada, err = NormalizarData(comFuso)
	require.NoError(t, err)
	assert.Equal(t, dia(2024, time.June, 3), normalizada)

	_, err = NormalizarData(time.Time{})
	assert.ErrorIs(t, err, ErrDataInvalida)
}
