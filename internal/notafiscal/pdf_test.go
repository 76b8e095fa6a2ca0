package notafiscal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarPDF(t *testing.T) {
	n := NotaFiscal{
		Numero:      "2024-0042",
		Cliente:     "Incorporadora Lagoa Azul",
		CNPJ:        "12.345.678/0001-90",
		DataEmissao: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Itens: []ItemNota{
			{Descricao: "Serviço de fundação", Quantidade: 1, ValorUnitario: 52000},
			{Descricao: "Concreto usinado (m³)", Quantidade: 18, ValorUnitario: 620},
		},
		Observacao: "Pagamento em 30 dias.",
	}
	n.ValorTotal = CalcularValorTotal(n.Itens)

	conteudo, err := GerarPDF(n)
	require.NoError(t, err)
	require.NotEmpty(t, conteudo)
	assert.Equal(t, "%PDF", string(conteudo[:4]))
}

func TestGerarPDF_SemItens(t *testing.T) {
	conteudo, err := GerarPDF(NotaFiscal{Numero: "2024-0001", Cliente: "Cliente Avulso"})
	require.NoError(t, err)
	assert.NotEmpty(t, conteudo)
}

func TestCalcularValorTotal(t *testing.T) {
	itens := []ItemNota{
		{Descricao: "Mão de obra", Quantidade: 2, ValorUnitario: 1500},
		{Descricao: "Material", Quantidade: 1, ValorUnitario: 800},
	}
	assert.Equal(t, 3800.0, CalcularValorTotal(itens))
}
