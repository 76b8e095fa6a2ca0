package obra

import (
	"github.com/ConstrutoraVallim/api-gestao/internal/colaborador"
	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
)

type ResumoObraDTO struct {
	ID                    uint    `json:"id"`
	Nome                  string  `json:"nome"`
	Cliente               string  `json:"cliente"`
	Status                string  `json:"status"`
	ColaboradoresAlocados int     `json:"colaboradoresAlocados"`
	ContasEmAberto        int     `json:"contasEmAberto"`
	ValorEmAberto         float64 `json:"valorEmAberto"`
	ValorPago             float64 `json:"valorPago"`
}

// MontarResumoObraDTO consolida os principais números de uma obra.
func MontarResumoObraDTO(o Obra, contas []conta.Conta, colaboradores []colaborador.Colaborador) ResumoObraDTO {
	var emAberto int
	var valorAberto, valorPago float64

	for _, c := range contas {
		if c.Status == conta.StatusPaga {
			valorPago += c.Valor
		} else {
			emAberto++
			valorAberto += c.Valor
		}
	}

	alocados := 0
	for _, col := range colaboradores {
		if col.Status == colaborador.StatusAtivo {
			alocados++
		}
	}

	return ResumoObraDTO{
		ID:                    o.ID,
		Nome:                  o.Nome,
		Cliente:               o.Cliente,
		Status:                o.Status,
		ColaboradoresAlocados: alocados,
		ContasEmAberto:        emAberto,
		ValorEmAberto:         valorAberto,
		ValorPago:             valorPago,
	}
}
