package alojamento

import (
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/documento"
	"gorm.io/gorm"
)

// ContaRecorrente é o molde de uma despesa mensal do alojamento (luz,
// água, internet). A cada competência o molde vira uma Conta real.
type ContaRecorrente struct {
	Descricao     string  `json:"descricao"`
	Valor         float64 `json:"valor"`
	DiaVencimento int     `json:"diaVencimento"` // 1-28 para não estourar fevereiro
}

// Alojamento é uma moradia alugada para colaboradores deslocados.
type Alojamento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome        string  `gorm:"not null" json:"nome"`
	Endereco    string  `json:"endereco"`
	UF          string  `gorm:"size:2" json:"uf"`
	Capacidade  int     `json:"capacidade"`
	ValorMensal float64 `json:"valorMensal"`
	ObraID      *uint   `gorm:"index" json:"obraId,omitempty"`

	// Moldes de despesas mensais em JSONB
	ContasRecorrentes []ContaRecorrente `gorm:"type:jsonb;serializer:json" json:"contasRecorrentes"`

	Documentos []documento.Documento `gorm:"polymorphic:Dono" json:"documentos"`
}
