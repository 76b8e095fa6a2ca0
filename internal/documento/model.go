package documento

import (
	"time"

	"gorm.io/gorm"
)

// Documento é um arquivo anexado a uma entidade da obra (a própria obra,
// um colaborador, um veículo ou um alojamento). DataValidade é opcional:
// só documentos com vencimento entram no painel de alertas.
type Documento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	DonoType string `gorm:"size:50;not null;index:idx_documento_dono" json:"donoTipo"`
	DonoID   uint   `gorm:"not null;index:idx_documento_dono" json:"donoId"`

	Tipo         string     `gorm:"size:100" json:"tipo"` // ex: "ART", "Alvará", "CNH", "Seguro"
	Nome         string     `json:"nome"`
	URL          string     `json:"url"`
	DataValidade *time.Time `json:"dataValidade,omitempty"`
}
