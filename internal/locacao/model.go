package locacao

import (
	"time"

	"gorm.io/gorm"
)

// Locacao é o aluguel de um equipamento de terceiro (betoneira, andaime,
// gerador). O vencimento aqui alimenta a tela de locações; no painel geral
// a obrigação só aparece via conta gerada, para não duplicar o alerta.
type Locacao struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Equipamento    string    `gorm:"not null" json:"equipamento"`
	Fornecedor     string    `json:"fornecedor"`
	ValorMensal    float64   `gorm:"not null;default:0" json:"valorMensal"`
	DataInicio     time.Time `json:"dataInicio"`
	DataVencimento time.Time `gorm:"not null;index" json:"dataVencimento"`
	Pago           bool      `gorm:"default:false" json:"pago"`

	ObraID *uint `gorm:"index" json:"obraId,omitempty"`
}
