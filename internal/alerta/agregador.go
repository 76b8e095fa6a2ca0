package alerta

import (
	"log"
	"sort"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/colaborador"
	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
)

// Agregar reúne os alertas de todas as fontes, classifica cada um pela
// régua de vencimento e devolve a lista única do painel, ordenada da mais
// crítica para a menos crítica e, dentro da mesma severidade, da data mais
// próxima para a mais distante. A ordenação é estável: alertas empatados
// preservam a ordem de inserção dos adaptadores.
//
// A função é pura em relação às entradas: não toca nas coleções e, para a
// mesma tripla (fontes, contas, colaboradores) e o mesmo hoje, devolve
// sempre a mesma lista. Um registro com data zerada é pulado com aviso no
// log em vez de derrubar a agregação inteira.
func Agregar(fontes []FonteDocumentos, contas []conta.Conta, colaboradores []colaborador.Colaborador, hoje time.Time) []Alerta {
	brutos := AlertasDeDocumentos(fontes)
	brutos = append(brutos, AlertasDeContas(contas)...)
	brutos = append(brutos, AlertasDeFerias(colaboradores)...)
	brutos = append(brutos, AlertasDeLocacoes()...)

	alertas := make([]Alerta, 0, len(brutos))
	for _, a := range brutos {
		cls, err := Classificar(a.Data, hoje)
		if err != nil {
			log.Printf("alerta ignorado (%s: %s): %v", a.Origem, a.Mensagem, err)
			continue
		}
		a.Classificacao = cls
		alertas = append(alertas, a)
	}

	sort.SliceStable(alertas, func(i, j int) bool {
		if alertas[i].Classificacao.Severidade != alertas[j].Classificacao.Severidade {
			return alertas[i].Classificacao.Severidade < alertas[j].Classificacao.Severidade
		}
		return alertas[i].Data.Before(alertas[j].Data)
	})

	return alertas
}
