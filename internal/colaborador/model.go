package colaborador

import (
	"time"

	"github.com/ConstrutoraVallim/api-gestao/internal/documento"
	"gorm.io/gorm"
)

const (
	StatusAtivo   = "Ativo"
	StatusInativo = "Inativo"
)

// Colaborador é um funcionário da construtora, alocado ou não em uma obra.
// DataFeriasVencimento marca o limite do período concessivo de férias e
// alimenta o painel de alertas enquanto o colaborador estiver ativo.
type Colaborador struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `gorm:"not null" json:"nome"`
	CPF      string `gorm:"size:14;unique" json:"cpf"`
	Funcao   string `gorm:"size:100" json:"funcao"` // ex: "Pedreiro", "Mestre de Obras"
	Telefone string `json:"telefone"`
	Foto     string `json:"foto"`

	Status        string    `gorm:"size:20;default:'Ativo';index" json:"status"`
	DataAdmissao  time.Time `json:"dataAdmissao"`
	SalarioMensal float64   `json:"salarioMensal"`

	DataFeriasVencimento *time.Time `json:"dataFeriasVencimento,omitempty"`

	ObraID *uint `gorm:"index" json:"obraId,omitempty"`

	Documentos []documento.Documento `gorm:"polymorphic:Dono" json:"documentos"`
}
