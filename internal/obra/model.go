package obra

import (
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/documento"
	"gorm.io/gorm"
)

// Obra representa um canteiro/projeto em execução ou já concluído.
type Obra struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `gorm:"not null" json:"nome"`
	Cliente  string `json:"cliente"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco"`
	UF       string `gorm:"size:2" json:"uf"`

	Status          string     `gorm:"size:50;default:'Em Andamento'" json:"status"` // "Em Andamento", "Paralisada", "Concluída"
	DataInicio      time.Time  `json:"dataInicio"`
	PrevisaoTermino *time.Time `json:"previsaoTermino,omitempty"`

	// Suporta múltiplas fotos do canteiro em JSONB
	Fotos []string `gorm:"type:jsonb;serializer:json" json:"fotos"`

	Documentos []documento.Documento `gorm:"polymorphic:Dono" json:"documentos"`
}
