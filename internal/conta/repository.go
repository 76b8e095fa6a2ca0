package conta

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, c *Conta) error
	BuscarPorID(db *gorm.DB, id uint) (*Conta, error)
	ListarTodas(db *gorm.DB) ([]Conta, error)
	ListarEmAberto(db *gorm.DB) ([]Conta, error)
	ListarPorObra(db *gorm.DB, obraID uint) ([]Conta, error)
	ExistePorLocacao(db *gorm.DB, locacaoID uint) (bool, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Conta) error
	MarcarComoPaga(db *gorm.DB, id uint, dataPagamento time.Time) error
	AtualizarVencidas(db *gorm.DB, hoje time.Time) (int64, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Conta) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Conta, error) {
	var c Conta
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Conta, error) {
	var contas []Conta
	err := db.Order("data_vencimento asc").Find(&contas).Error
	return contas, err
}

func (r *repositoryImpl) ListarEmAberto(db *gorm.DB) ([]Conta, error) {
	var contas []Conta
	err := db.Where("status IN ?", []string{StatusPendente, StatusVencida}).
		Order("data_vencimento asc").
		Find(&contas).Error
	return contas, err
}

func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint) ([]Conta, error) {
	var contas []Conta
	err := db.Where("obra_id = ?", obraID).Order("data_vencimento asc").Find(&contas).Error
	return contas, err
}

func (r *repositoryImpl) ExistePorLocacao(db *gorm.DB, locacaoID uint) (bool, error) {
	var total int64
	err := db.Model(&Conta{}).Where("locacao_id = ?", locacaoID).Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Conta) error {
	var existente Conta
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Descricao = novosDados.Descricao
	existente.Valor = novosDados.Valor
	existente.DataVencimento = novosDados.DataVencimento
	existente.Anexo = novosDados.Anexo
	existente.ObraID = novosDados.ObraID
	existente.AlojamentoID = novosDados.AlojamentoID

	return db.Save(&existente).Error
}

func (r *repositoryImpl) MarcarComoPaga(db *gorm.DB, id uint, dataPagamento time.Time) error {
	var existente Conta
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Status = StatusPaga
	existente.DataPagamento = &dataPagamento

	return db.Save(&existente).Error
}

// AtualizarVencidas promove Pendente -> Vencida para contas com vencimento
// anterior a hoje. Retorna quantas linhas mudaram.
func (r *repositoryImpl) AtualizarVencidas(db *gorm.DB, hoje time.Time) (int64, error) {
	res := db.Model(&Conta{}).
		Where("status = ? AND data_vencimento < ?", StatusPendente, hoje).
		Update("status", StatusVencida)
	return res.RowsAffected, res.Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Conta{}, id).Error
}
