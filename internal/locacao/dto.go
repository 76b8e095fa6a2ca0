package locacao

import (
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/alerta"
)

// LocacaoComSituacao é a linha da tela de locações: a locação mais a
// classificação de vencimento calculada na hora. Locações pagas não
// carregam classificação.
type LocacaoComSituacao struct {
	Locacao
	Situacao *alerta.Classificacao `json:"situacao,omitempty"`
}

// MontarSituacoes aplica a régua de vencimento sobre cada locação em
// aberto. Usa o mesmo classificador do painel de alertas para as duas
// telas nunca divergirem.
func MontarSituacoes(locacoes []Locacao, hoje time.Time) []LocacaoComSituacao {
	linhas := make([]LocacaoComSituacao, 0, len(locacoes))
	for _, l := range locacoes {
		linha := LocacaoComSituacao{Locacao: l}
		if !l.Pago {
			if cls, err := alerta.Classificar(l.DataVencimento, hoje); err == nil {
				linha.Situacao = &cls
			}
		}
		linhas = append(linhas, linha)
	}
	return linhas
}
