package orcamento

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPendente = "Pendente"
	StatusAprovado = "Aprovado"
	StatusRecusado = "Recusado"
)

// ItemOrcamento é uma linha do orçamento enviado ao cliente.
type ItemOrcamento struct {
	Descricao     string  `json:"descricao"`
	Quantidade    float64 `json:"quantidade"`
	Unidade       string  `json:"unidade"` // "m²", "un", "vb"
	ValorUnitario float64 `json:"valorUnitario"`
}

// Orcamento é a proposta comercial para um serviço ou obra futura.
type Orcamento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Cliente   string `gorm:"not null" json:"cliente"`
	CNPJ      string `json:"cnpj"`
	Descricao string `json:"descricao"`

	// Linhas da proposta em JSONB
	Itens []ItemOrcamento `gorm:"type:jsonb;serializer:json" json:"itens"`

	ValorTotal float64    `json:"valorTotal"`
	Status     string     `gorm:"size:50;default:'Pendente';index" json:"status"`
	Validade   *time.Time `json:"validade,omitempty"`
}

// CalcularValorTotal soma as linhas do orçamento.
func CalcularValorTotal(itens []ItemOrcamento) float64 {
	var total float64
	for _, item := range itens {
		total += item.Quantidade * item.ValorUnitario
	}
	return total
}
