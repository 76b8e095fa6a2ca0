package ferramenta

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, f *Ferramenta) error
	BuscarPorID(db *gorm.DB, id uint) (*Ferramenta, error)
	ListarTodas(db *gorm.DB) ([]Ferramenta, error)
	ListarPorObra(db *gorm.DB, obraID uint) ([]Ferramenta, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Ferramenta) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *Ferramenta) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Ferramenta, error) {
	var f Ferramenta
	err := db.First(&f, id).Error
	return &f, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Ferramenta, error) {
	var ferramentas []Ferramenta
	err := db.Order("nome asc").Find(&ferramentas).Error
	return ferramentas, err
}

func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint) ([]Ferramenta, error) {
	var ferramentas []Ferramenta
	err := db.Where("obra_id = ?", obraID).Order("nome asc").Find(&ferramentas).Error
	return ferramentas, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Ferramenta) error {
	var existente Ferramenta
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Codigo = novosDados.Codigo
	existente.Quantidade = novosDados.Quantidade
	existente.Estado = novosDados.Estado
	existente.ObraID = novosDados.ObraID

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Ferramenta{}, id).Error
}
