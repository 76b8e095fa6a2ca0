package orcamento

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, o *Orcamento) error
	BuscarPorID(db *gorm.DB, id uint) (*Orcamento, error)
	ListarTodos(db *gorm.DB) ([]Orcamento, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Orcamento) error
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, o *Orcamento) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Orcamento, error) {
	var o Orcamento
	err := db.First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Orcamento, error) {
	var orcamentos []Orcamento
	err := db.Order("created_at desc").Find(&orcamentos).Error
	return orcamentos, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Orcamento) error {
	var existente Orcamento
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Cliente = novosDados.Cliente
	existente.CNPJ = novosDados.CNPJ
	existente.Descricao = novosDados.Descricao
	existente.Itens = novosDados.Itens
	existente.ValorTotal = CalcularValorTotal(novosDados.Itens)
	existente.Validade = novosDados.Validade

	return db.Save(&existente).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	var existente Orcamento
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	existente.Status = status
	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Orcamento{}, id).Error
}
