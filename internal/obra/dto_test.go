package obra

import (
	"testing"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/colaborador"
	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
	"github.com/stretchr/testify/assert"
)

func TestMontarResumoObraDTO(t *testing.T) {
	o := Obra{ID: 1, Nome: "Residencial Aurora", Cliente: "Incorporadora Lagoa Azul", Status: "Em Andamento"}

	vencimento := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	contas := []conta.Conta{
		{Descricao: "Cimento", Valor: 1200, DataVencimento: vencimento, Status: conta.StatusPendente},
		{Descricao: "Areia", Valor: 300, DataVencimento: vencimento, Status: conta.StatusVencida},
		{Descricao: "Ferragem", Valor: 2500, DataVencimento: vencimento, Status: conta.StatusPaga},
	}
	colaboradores := []colaborador.Colaborador{
		{Nome: "João", Status: colaborador.StatusAtivo},
		{Nome: "Pedro", Status: colaborador.StatusAtivo},
		{Nome: "Desligado", Status: colaborador.StatusInativo},
	}

	dto := MontarResumoObraDTO(o, contas, colaboradores)

	assert.Equal(t, uint(1), dto.ID)
	assert.Equal(t, "Residencial Aurora", dto.Nome)
	assert.Equal(t, 2, dto.ColaboradoresAlocados)
	assert.Equal(t, 2, dto.ContasEmAberto)
	assert.Equal(t, 1500.0, dto.ValorEmAberto)
	assert.Equal(t, 2500.0, dto.ValorPago)
}
