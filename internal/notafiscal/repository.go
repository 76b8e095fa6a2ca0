package notafiscal

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, n *NotaFiscal) error
	BuscarPorID(db *gorm.DB, id uint) (*NotaFiscal, error)
	ListarTodas(db *gorm.DB) ([]NotaFiscal, error)
	ListarPorObra(db *gorm.DB, obraID uint) ([]NotaFiscal, error)
	Atualizar(db *gorm.DB, id uint, novosDados *NotaFiscal) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, n *NotaFiscal) error {
	return db.Create(n).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*NotaFiscal, error) {
	var n NotaFiscal
	err := db.First(&n, id).Error
	return &n, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]NotaFiscal, error) {
	var notas []NotaFiscal
	err := db.Order("data_emissao desc").Find(&notas).Error
	return notas, err
}

func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint) ([]NotaFiscal, error) {
	var notas []NotaFiscal
	err := db.Where("obra_id = ?", obraID).Order("data_emissao desc").Find(&notas).Error
	return notas, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *NotaFiscal) error {
	var existente NotaFiscal
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Numero = novosDados.Numero
	existente.Cliente = novosDados.Cliente
	existente.CNPJ = novosDados.CNPJ
	existente.DataEmissao = novosDados.DataEmissao
	existente.Itens = novosDados.Itens
	existente.ValorTotal = CalcularValorTotal(novosDados.Itens)
	existente.Observacao = novosDados.Observacao
	existente.ObraID = novosDados.ObraID

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&NotaFiscal{}, id).Error
}
