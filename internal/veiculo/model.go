package veiculo

import (
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/documento"
	"gorm.io/gorm"
)

// Veiculo é um carro, caminhão ou máquina da frota própria. Os documentos
// anexados (CRLV, seguro, licenciamento) carregam a data de validade.
type Veiculo struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Placa     string `gorm:"size:10;unique;not null" json:"placa"`
	Modelo    string `json:"modelo"`
	Marca     string `json:"marca"`
	Ano       int    `json:"ano"`
	Categoria string `gorm:"size:50" json:"categoria"` // "Leve", "Caminhão", "Máquina"
	Status    string `gorm:"size:50;default:'Disponível'" json:"status"`

	ObraID *uint `gorm:"index" json:"obraId,omitempty"`

	Documentos []documento.Documento `gorm:"polymorphic:Dono" json:"documentos"`
}
