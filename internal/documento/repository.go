package documento

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, d *Documento) error
	BuscarPorID(db *gorm.DB, id uint) (*Documento, error)
	ListarPorDono(db *gorm.DB, donoTipo string, donoID uint) ([]Documento, error)
	ListarComValidade(db *gorm.DB) ([]Documento, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Documento) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, d *Documento) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Documento, error) {
	var d Documento
	err := db.First(&d, id).Error
	return &d, err
}

func (r *repositoryImpl) ListarPorDono(db *gorm.DB, donoTipo string, donoID uint) ([]Documento, error) {
	var docs []Documento
	err := db.Where("dono_type = ? AND dono_id = ?", donoTipo, donoID).Find(&docs).Error
	return docs, err
}

func (r *repositoryImpl) ListarComValidade(db *gorm.DB) ([]Documento, error) {
	var docs []Documento
	err := db.Where("data_validade IS NOT NULL").Order("data_validade asc").Find(&docs).Error
	return docs, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Documento) error {
	var existente Documento
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Tipo = novosDados.Tipo
	existente.Nome = novosDados.Nome
	if novosDados.URL != "" {
		existente.URL = novosDados.URL
	}
	existente.DataValidade = novosDados.DataValidade

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Documento{}, id).Error
}
