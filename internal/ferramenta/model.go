package ferramenta

import (
	"time"

	"gorm.io/gorm"
)

// Ferramenta é um item do almoxarifado, alocável a uma obra.
type Ferramenta struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome       string `gorm:"not null" json:"nome"`
	Codigo     string `gorm:"size:50;unique;not null" json:"codigo"`
	Quantidade int    `gorm:"not null;default:1" json:"quantidade"`
	Estado     string `gorm:"size:50;default:'Boa'" json:"estado"` // "Boa", "Manutenção", "Descartada"

	ObraID *uint `gorm:"index" json:"obraId,omitempty"`
}
