package veiculo

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, v *Veiculo) error
	BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error)
	ListarTodos(db *gorm.DB) ([]Veiculo, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Veiculo) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, v *Veiculo) error {
	return db.Create(v).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error) {
	var v Veiculo
	err := db.Preload("Documentos").First(&v, id).Error
	return &v, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Veiculo, error) {
	var veiculos []Veiculo
	err := db.Preload("Documentos").Find(&veiculos).Error
	return veiculos, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Veiculo) error {
	var existente Veiculo
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Placa = novosDados.Placa
	existente.Modelo = novosDados.Modelo
	existente.Marca = novosDados.Marca
	existente.Ano = novosDados.Ano
	existente.Categoria = novosDados.Categoria
	existente.Status = novosDados.Status
	existente.ObraID = novosDados.ObraID

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Veiculo{}, id).Error
}
