package alojamento

import (
	"fmt"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
)

// MontarContasDaCompetencia transforma os moldes recorrentes do alojamento
// nas contas do mês indicado. Moldes com dia fora de 1-28 são normalizados
// para o dia 28, mantendo a conta dentro da competência.
func MontarContasDaCompetencia(a Alojamento, competencia time.Time) []conta.Conta {
	contas := make([]conta.Conta, 0, len(a.ContasRecorrentes))
	alojamentoID := a.ID

	for _, molde := range a.ContasRecorrentes {
		dia := molde.DiaVencimento
		if dia < 1 || dia > 28 {
			dia = 28
		}
		vencimento := time.Date(competencia.Year(), competencia.Month(), dia, 0, 0, 0, 0, competencia.Location())

		contas = append(contas, conta.Conta{
			Descricao:      fmt.Sprintf("%s - %s (%02d/%d)", molde.Descricao, a.Nome, int(competencia.Month()), competencia.Year()),
			Valor:          molde.Valor,
			DataVencimento: vencimento,
			Status:         conta.StatusPendente,
			ObraID:         a.ObraID,
			AlojamentoID:   &alojamentoID,
		})
	}

	return contas
}
