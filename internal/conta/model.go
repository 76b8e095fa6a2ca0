package conta

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPendente = "Pendente"
	StatusPaga     = "Paga"
	StatusVencida  = "Vencida"
)

// Conta é uma obrigação a pagar: boleto de fornecedor, conta de consumo de
// um alojamento ou fatura de uma locação de equipamento. Quando nasce de
// uma locação, LocacaoID fica preenchido e o painel de alertas passa a
// tratar a obrigação apenas por aqui.
type Conta struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Descricao      string     `gorm:"not null" json:"descricao"`
	Valor          float64    `gorm:"not null;default:0" json:"valor"`
	DataVencimento time.Time  `gorm:"not null;index" json:"dataVencimento"`
	Status         string     `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	DataPagamento  *time.Time `json:"dataPagamento,omitempty"`
	Anexo          string     `gorm:"size:255" json:"anexo"`

	ObraID       *uint `gorm:"index" json:"obraId,omitempty"`
	AlojamentoID *uint `gorm:"index" json:"alojamentoId,omitempty"`
	LocacaoID    *uint `gorm:"index" json:"locacaoId,omitempty"`
}

// EmAberto indica se a conta ainda gera alerta no painel.
func (c Conta) EmAberto() bool {
	return c.Status == StatusPendente || c.Status == StatusVencida
}
