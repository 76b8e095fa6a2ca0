package notafiscal

import (
	"time"

	"gorm.io/gorm"
)

// ItemNota é uma linha de serviço ou material faturado.
type ItemNota struct {
	Descricao     string  `json:"descricao"`
	Quantidade    float64 `json:"quantidade"`
	ValorUnitario float64 `json:"valorUnitario"`
}

// NotaFiscal é o faturamento emitido para o cliente de uma obra.
type NotaFiscal struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Numero      string    `gorm:"size:50;unique;not null" json:"numero"`
	Cliente     string    `gorm:"not null" json:"cliente"`
	CNPJ        string    `json:"cnpj"`
	DataEmissao time.Time `json:"dataEmissao"`

	// Linhas faturadas em JSONB
	Itens []ItemNota `gorm:"type:jsonb;serializer:json" json:"itens"`

	ValorTotal float64 `json:"valorTotal"`
	Observacao string  `json:"observacao"`

	ObraID *uint `gorm:"index" json:"obraId,omitempty"`
}

// CalcularValorTotal soma as linhas faturadas.
func CalcularValorTotal(itens []ItemNota) float64 {
	var total float64
	for _, item := range itens {
		total += item.Quantidade * item.ValorUnitario
	}
	return total
}
