package obra

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, o *Obra) error
	BuscarPorID(db *gorm.DB, id uint) (*Obra, error)
	ListarTodas(db *gorm.DB) ([]Obra, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Obra) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, o *Obra) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Obra, error) {
	var o Obra
	err := db.Preload("Documentos").First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Obra, error) {
	var obras []Obra
	err := db.Preload("Documentos").Find(&obras).Error
	return obras, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Obra) error {
	var existente Obra
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Cliente = novosDados.Cliente
	existente.CNPJ = novosDados.CNPJ
	existente.Endereco = novosDados.Endereco
	existente.UF = novosDados.UF
	existente.Status = novosDados.Status
	existente.DataInicio = novosDados.DataInicio
	existente.PrevisaoTermino = novosDados.PrevisaoTermino
	existente.Fotos = novosDados.Fotos

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Obra{}, id).Error
}
