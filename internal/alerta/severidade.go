package alerta

import "encoding/json"

// Severidade ordena os alertas do painel: quanto menor o valor, mais
// crítico. A ordem é fechada e total; o agregador ordena por ela.
type Severidade int

const (
	SeveridadeVencido Severidade = iota
	SeveridadeUrgente
	SeveridadeAtencao
	SeveridadeAviso
	SeveridadeEmDia
)

func (s Severidade) String() string {
	switch s {
	case SeveridadeVencido:
		return "vencido"
	case SeveridadeUrgente:
		return "urgente"
	case SeveridadeAtencao:
		return "atencao"
	case SeveridadeAviso:
		return "aviso"
	case SeveridadeEmDia:
		return "em-dia"
	}
	return "desconhecida"
}

func (s Severidade) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
