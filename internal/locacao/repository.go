package locacao

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, l *Locacao) error
	BuscarPorID(db *gorm.DB, id uint) (*Locacao, error)
	ListarTodas(db *gorm.DB) ([]Locacao, error)
	ListarPorObra(db *gorm.DB, obraID uint) ([]Locacao, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Locacao) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, l *Locacao) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Locacao, error) {
	var l Locacao
	err := db.First(&l, id).Error
	return &l, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Locacao, error) {
	var locacoes []Locacao
	err := db.Order("data_vencimento asc").Find(&locacoes).Error
	return locacoes, err
}

func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint) ([]Locacao, error) {
	var locacoes []Locacao
	err := db.Where("obra_id = ?", obraID).Order("data_vencimento asc").Find(&locacoes).Error
	return locacoes, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Locacao) error {
	var existente Locacao
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Equipamento = novosDados.Equipamento
	existente.Fornecedor = novosDados.Fornecedor
	existente.ValorMensal = novosDados.ValorMensal
	existente.DataInicio = novosDados.DataInicio
	existente.DataVencimento = novosDados.DataVencimento
	existente.Pago = novosDados.Pago
	existente.ObraID = novosDados.ObraID

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Locacao{}, id).Error
}
