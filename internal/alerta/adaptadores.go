package alerta

import (
	"fmt"
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/colaborador"
	"github.com/ConstrutoraVallim/api-gestao/internal/conta"
	"github.com/ConstrutoraVallim/api-gestao/internal/documento"
)

// Alerta é um registro derivado e descartável: cada chamada do agregador
// produz a lista inteira de novo a partir das coleções atuais. Um alerta
// sempre aponta para exatamente uma data de exatamente uma entidade.
type Alerta struct {
	Categoria     string        `json:"categoria"` // "Obra", "Colaborador", "Veículo", "Alojamento", "Financeiro", "Aluguel"
	Tipo          string        `json:"tipo"`      // tipo do documento, "Conta" ou "Férias"
	Mensagem      string        `json:"mensagem"`
	Data          time.Time     `json:"data"`
	Rota          string        `json:"rota"`
	Origem        string        `json:"origem"` // "documento", "conta", "ferias"
	Classificacao Classificacao `json:"classificacao"`
}

// FonteDocumentos agrupa os documentos de uma entidade dona (obra,
// colaborador, veículo ou alojamento) com o nome e a rota de navegação
// que os alertas derivados devem exibir.
type FonteDocumentos struct {
	Categoria  string
	Nome       string
	Rota       string
	Documentos []documento.Documento
}

// AlertasDeDocumentos emite um alerta por documento datado de cada fonte.
// Documentos sem validade não alertam.
func AlertasDeDocumentos(fontes []FonteDocumentos) []Alerta {
	var alertas []Alerta
	for _, fonte := range fontes {
		for _, doc := range fonte.Documentos {
			if doc.DataValidade == nil {
				continue
			}
			alertas = append(alertas, Alerta{
				Categoria: fonte.Categoria,
				Tipo:      doc.Tipo,
				Mensagem:  fonte.Nome,
				Data:      *doc.DataValidade,
				Rota:      fonte.Rota,
				Origem:    "documento",
			})
		}
	}
	return alertas
}

// AlertasDeContas emite um alerta por conta em aberto. Contas nascidas de
// locação entram na categoria "Aluguel"; as demais em "Financeiro".
// Contas pagas nunca alertam.
func AlertasDeContas(contas []conta.Conta) []Alerta {
	var alertas []Alerta
	for _, c := range contas {
		if !c.EmAberto() {
			continue
		}
		categoria := "Financeiro"
		if c.LocacaoID != nil {
			categoria = "Aluguel"
		}
		alertas = append(alertas, Alerta{
			Categoria: categoria,
			Tipo:      "Conta",
			Mensagem:  c.Descricao,
			Data:      c.DataVencimento,
			Rota:      "/contas",
			Origem:    "conta",
		})
	}
	return alertas
}

// AlertasDeFerias emite um alerta por colaborador ativo com período
// concessivo de férias marcado.
func AlertasDeFerias(colaboradores []colaborador.Colaborador) []Alerta {
	var alertas []Alerta
	for _, c := range colaboradores {
		if c.Status != colaborador.StatusAtivo || c.DataFeriasVencimento == nil {
			continue
		}
		alertas = append(alertas, Alerta{
			Categoria: "Colaborador",
			Tipo:      "Férias",
			Mensagem:  c.Nome,
			Data:      *c.DataFeriasVencimento,
			Rota:      fmt.Sprintf("/colaboradores/%d", c.ID),
			Origem:    "ferias",
		})
	}
	return alertas
}

// AlertasDeLocacoes existe por simetria com os demais adaptadores, mas não
// emite nada: o vencimento de uma locação entra no painel pela conta
// gerada a partir dela, evitando dois alertas para a mesma obrigação. A
// tela de locações calcula a severidade de cada linha direto com
// Classificar, sem passar por aqui.
func AlertasDeLocacoes() []Alerta {
	return nil
}
