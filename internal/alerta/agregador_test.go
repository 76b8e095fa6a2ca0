package alerta

import (
	"testing"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/colaborador"
	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
	"github.com/ConstrutoraVallim/api-gestao/internal/documento"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrData(t time.Time) *time.Time { return &t }

func ptrUint(v uint) *uint { return &v }

func TestAgregar_CenarioCompleto(t *testing.T) {
	hoje := dia(2024, time.June, 1)

	fontes := []FonteDocumentos{
		{
			Categoria: "Obra",
			Nome:      "Residencial Aurora",
			Rota:      "/obras/1",
			Documentos: []documento.Documento{
				{Tipo: "Alvará", DataValidade: ptrData(dia(2024, time.June, 3))},
				{Tipo: "ART", DataValidade: ptrData(dia(2024, time.May, 20))},
				{Tipo: "Contrato Social"}, // sem validade, não alerta
			},
		},
	}
	contas := []conta.Conta{
		{Descricao: "Boleto cimento", Valor: 1200, DataVencimento: dia(2024, time.June, 10), Status: conta.StatusPendente},
		{Descricao: "Boleto areia", Valor: 300, DataVencimento: dia(2024, time.June, 10), Status: conta.StatusPaga},
	}
	colaboradores := []colaborador.Colaborador{
		{Nome: "João Batista", Status: colaborador.StatusAtivo, DataFeriasVencimento: ptrData(dia(2024, time.July, 15))},
		{Nome: "Carlos Mendes", Status: colaborador.StatusInativo, DataFeriasVencimento: ptrData(dia(2024, time.June, 2))},
	}

	alertas := Agregar(fontes, contas, colaboradores, hoje)

	// conta paga e colaborador inativo ficam de fora
	require.Len(t, alertas, 4)

	assert.Equal(t, "ART", alertas[0].Tipo)
	assert.Equal(t, SeveridadeVencido, alertas[0].Classificacao.Severidade)

	assert.Equal(t, "Alvará", alertas[1].Tipo)
	assert.Equal(t, SeveridadeUrgente, alertas[1].Classificacao.Severidade)
	assert.Equal(t, 2, alertas[1].Classificacao.DiasRestantes)
	assert.Equal(t, "Residencial Aurora", alertas[1].Mensagem)
	assert.Equal(t, "/obras/1", alertas[1].Rota)

	assert.Equal(t, "Boleto cimento", alertas[2].Mensagem)
	assert.Equal(t, "Financeiro", alertas[2].Categoria)
	assert.Equal(t, SeveridadeAtencao, alertas[2].Classificacao.Severidade)
	assert.Equal(t, 9, alertas[2].Classificacao.DiasRestantes)

	assert.Equal(t, "Férias", alertas[3].Tipo)
	assert.Equal(t, "Colaborador", alertas[3].Categoria)
	assert.Equal(t, SeveridadeEmDia, alertas[3].Classificacao.Severidade)
	assert.Equal(t, 44, alertas[3].Classificacao.DiasRestantes)
}

func TestAgregar_Idempotente(t *testing.T) {
	hoje := dia(2024, time.June, 1)

	fontes := []FonteDocumentos{
		{Categoria: "Veículo", Nome: "ABC-1234", Rota: "/veiculos/3", Documentos: []documento.Documento{
			{Tipo: "CRLV", DataValidade: ptrData(dia(2024, time.June, 20))},
			{Tipo: "Seguro", DataValidade: ptrData(dia(2024, time.May, 28))},
		}},
	}
	contas := []conta.Conta{
		{Descricao: "Aluguel betoneira", DataVencimento: dia(2024, time.June, 5), Status: conta.StatusPendente, LocacaoID: ptrUint(7)},
	}

	primeira := Agregar(fontes, contas, nil, hoje)
	segunda := Agregar(fontes, contas, nil, hoje)

	assert.Equal(t, primeira, segunda)
}

func TestAgregar_OrdenacaoPorSeveridadeEData(t *testing.T) {
	hoje := dia(2024, time.June, 1)

	contas := []conta.Conta{
		{Descricao: "em dia", DataVencimento: dia(2024, time.August, 1), Status: conta.StatusPendente},
		{Descricao: "urgente tarde", DataVencimento: dia(2024, time.June, 7), Status: conta.StatusPendente},
		{Descricao: "vencida", DataVencimento: dia(2024, time.May, 10), Status: conta.StatusVencida},
		{Descricao: "urgente cedo", DataVencimento: dia(2024, time.June, 2), Status: conta.StatusPendente},
	}

	alertas := Agregar(nil, contas, nil, hoje)
	require.Len(t, alertas, 4)

	for i := 1; i < len(alertas); i++ {
		anterior, atual := alertas[i-1], alertas[i]
		assert.LessOrEqual(t, int(anterior.Classificacao.Severidade), int(atual.Classificacao.Severidade))
		if anterior.Classificacao.Severidade == atual.Classificacao.Severidade {
			assert.False(t, atual.Data.Before(anterior.Data))
		}
	}

	assert.Equal(t, "vencida", alertas[0].Mensagem)
	assert.Equal(t, "urgente cedo", alertas[1].Mensagem)
	assert.Equal(t, "urgente tarde", alertas[2].Mensagem)
	assert.Equal(t, "em dia", alertas[3].Mensagem)
}

func TestAgregar_EmpateManteOrdemDeInsercao(t *testing.T) {
	hoje := dia(2024, time.June, 1)
	mesmaData := dia(2024, time.June, 1)

	// documento entra antes da conta na concatenação dos adaptadores;
	// com severidade e data iguais, essa ordem tem que sobreviver ao sort
	fontes := []FonteDocumentos{
		{Categoria: "Obra", Nome: "Galpão Industrial", Rota: "/obras/2", Documentos: []documento.Documento{
			{Tipo: "Alvará", DataValidade: ptrData(mesmaData)},
		}},
	}
	contas := []conta.Conta{
		{Descricao: "Boleto ferragem", DataVencimento: mesmaData, Status: conta.StatusPendente},
	}

	alertas := Agregar(fontes, contas, nil, hoje)
	require.Len(t, alertas, 2)

	assert.Equal(t, "documento", alertas[0].Origem)
	assert.Equal(t, "conta", alertas[1].Origem)
	assert.Equal(t, alertas[0].Classificacao.Severidade, alertas[1].Classificacao.Severidade)
}

func TestAgregar_LocacaoNaoDuplicaAlerta(t *testing.T) {
	hoje := dia(2024, time.June, 1)

	// a locação 7 já tem conta gerada: a obrigação aparece uma única vez,
	// vinda do adaptador de contas, na categoria Aluguel
	contas := []conta.Conta{
		{Descricao: "Aluguel betoneira 06/2024", DataVencimento: dia(2024, time.June, 12), Status: conta.StatusPendente, LocacaoID: ptrUint(7)},
	}

	assert.Empty(t, AlertasDeLocacoes())

	alertas := Agregar(nil, contas, nil, hoje)
	require.Len(t, alertas, 1)
	assert.Equal(t, "Aluguel", alertas[0].Categoria)
	assert.Equal(t, "conta", alertas[0].Origem)
}

func TestAgregar_RegistroComDataZeradaNaoDerrubaPainel(t *testing.T) {
	hoje := dia(2024, time.June, 1)

	colaboradores := []colaborador.Colaborador{
		{Nome: "Sem data", Status: colaborador.StatusAtivo, DataFeriasVencimento: &time.Time{}},
		{Nome: "Com data", Status: colaborador.StatusAtivo, DataFeriasVencimento: ptrData(dia(2024, time.June, 3))},
	}

	alertas := Agregar(nil, nil, colaboradores, hoje)

	require.Len(t, alertas, 1)
	assert.Equal(t, "Com data", alertas[0].Mensagem)
}

func TestAdaptadores_NaoMutamEntradas(t *testing.T) {
	hoje := dia(2024, time.June, 1)

	contas := []conta.Conta{
		{Descricao: "original", DataVencimento: dia(2024, time.June, 5), Status: conta.StatusPendente},
	}
	copia := make([]conta.Conta, len(contas))
	copy(copia, contas)

	_ = Agregar(nil, contas, nil, hoje)

	assert.Equal(t, copia, contas)
}
