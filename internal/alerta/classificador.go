package alerta

import (
	"errors"
	"time"
)

// ErrDataInvalida indica que uma data obrigatória veio zerada ou
// inutilizável. O chamador decide se ignora o registro ou devolve erro.
var ErrDataInvalida = errors.New("data inválida")

// Classificacao é o resultado da régua de vencimento: a severidade, os
// dias de folga (negativo quando já venceu) e os tokens de estilo que o
// painel usa sem precisar duplicar o mapeamento.
type Classificacao struct {
	Severidade    Severidade `json:"severidade"`
	DiasRestantes int        `json:"diasRestantes"`
	Label         string     `json:"label"`
	Cor           string     `json:"cor"`
	Fundo         string     `json:"fundo"`
	Borda         string     `json:"borda"`
}

// NormalizarData descarta a hora e o fuso, preservando apenas o dia
// civil que a própria data carrega. O resultado fica sempre em UTC para
// que a subtração entre duas datas normalizadas seja um múltiplo exato
// de 24h, mesmo quando elas vêm de fusos diferentes. Datas zeradas
// retornam ErrDataInvalida.
func NormalizarData(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, ErrDataInvalida
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Classificar aplica a régua única de vencimento do sistema sobre a data
// alvo, contando dias civis a partir de hoje:
//
//	< 0 dias   -> vencido
//	0 a 7     -> urgente (o próprio dia do vencimento é urgente)
//	8 a 15    -> atenção
//	16 a 30   -> aviso
//	> 30      -> em dia
//
// A função é pura: mesma dupla (alvo, hoje) produz sempre o mesmo
// resultado, independente da hora do dia em que for chamada.
func Classificar(alvo, hoje time.Time) (Classificacao, error) {
	alvoDia, err := NormalizarData(alvo)
	if err != nil {
		return Classificacao{}, err
	}
	hojeDia, err := NormalizarData(hoje)
	if err != nil {
		return Classificacao{}, err
	}

	dias := int(alvoDia.Sub(hojeDia).Hours() / 24)

	switch {
	case dias < 0:
		return Classificacao{
			Severidade:    SeveridadeVencido,
			DiasRestantes: dias,
			Label:         "Vencido",
			Cor:           "text-red-600",
			Fundo:         "bg-red-50",
			Borda:         "border-red-200",
		}, nil
	case dias <= 7:
		return Classificacao{
			Severidade:    SeveridadeUrgente,
			DiasRestantes: dias,
			Label:         "Urgente",
			Cor:           "text-orange-600",
			Fundo:         "bg-orange-50",
			Borda:         "border-orange-200",
		}, nil
	case dias <= 15:
		return Classificacao{
			Severidade:    SeveridadeAtencao,
			DiasRestantes: dias,
			Label:         "Atenção",
			Cor:           "text-yellow-600",
			Fundo:         "bg-yellow-50",
			Borda:         "border-yellow-200",
		}, nil
	case dias <= 30:
		return Classificacao{
			Severidade:    SeveridadeAviso,
			DiasRestantes: dias,
			Label:         "Aviso",
			Cor:           "text-blue-600",
			Fundo:         "bg-blue-50",
			Borda:         "border-blue-200",
		}, nil
	}

	return Classificacao{
		Severidade:    SeveridadeEmDia,
		DiasRestantes: dias,
		Label:         "Em dia",
		Cor:           "text-green-600",
		Fundo:         "bg-green-50",
		Borda:         "border-green-200",
	}, nil
}
