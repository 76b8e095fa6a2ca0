package alojamento

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, a *Alojamento) error
	BuscarPorID(db *gorm.DB, id uint) (*Alojamento, error)
	ListarTodos(db *gorm.DB) ([]Alojamento, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Alojamento) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Alojamento) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Alojamento, error) {
	var a Alojamento
	err := db.Preload("Documentos").First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Alojamento, error) {
	var alojamentos []Alojamento
	err := db.Preload("Documentos").Find(&alojamentos).Error
	return alojamentos, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Alojamento) error {
	var existente Alojamento
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Endereco = novosDados.Endereco
	existente.UF = novosDados.UF
	existente.Capacidade = novosDados.Capacidade
	existente.ValorMensal = novosDados.ValorMensal
	existente.ObraID = novosDados.ObraID
	existente.ContasRecorrentes = novosDados.ContasRecorrentes

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Alojamento{}, id).Error
}
