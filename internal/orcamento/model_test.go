package orcamento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcularValorTotal(t *testing.T) {
	itens := []ItemOrcamento{
		{Descricao: "Alvenaria", Quantidade: 120, Unidade: "m²", ValorUnitario: 85},
		{Descricao: "Instalação elétrica", Quantidade: 1, Unidade: "vb", ValorUnitario: 7400},
	}

	assert.Equal(t, 120*85.0+7400, CalcularValorTotal(itens))
}

func TestCalcularValorTotal_SemItens(t *testing.T) {
	assert.Zero(t, CalcularValorTotal(nil))
}
