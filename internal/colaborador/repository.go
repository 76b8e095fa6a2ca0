package colaborador

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Colaborador) error
	BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error)
	ListarTodos(db *gorm.DB) ([]Colaborador, error)
	ListarAtivos(db *gorm.DB) ([]Colaborador, error)
	ListarPorObra(db *gorm.DB, obraID uint) ([]Colaborador, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Colaborador) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Colaborador) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error) {
	var c Colaborador
	err := db.Preload("Documentos").First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Colaborador, error) {
	var colaboradores []Colaborador
	err := db.Preload("Documentos").Find(&colaboradores).Error
	return colaboradores, err
}

func (r *repositoryImpl) ListarAtivos(db *gorm.DB) ([]Colaborador, error) {
	var colaboradores []Colaborador
	err := db.Preload("Documentos").Where("status = ?", StatusAtivo).Find(&colaboradores).Error
	return colaboradores, err
}

func (r *repositoryImpl) ListarPorObra(db *gorm.DB, obraID uint) ([]Colaborador, error) {
	var colaboradores []Colaborador
	err := db.Where("obra_id = ?", obraID).Find(&colaboradores).Error
	return colaboradores, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Colaborador) error {
	var existente Colaborador
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.CPF = novosDados.CPF
	existente.Funcao = novosDados.Funcao
	existente.Telefone = novosDados.Telefone
	existente.Foto = novosDados.Foto
	existente.Status = novosDados.Status
	existente.DataAdmissao = novosDados.DataAdmissao
	existente.SalarioMensal = novosDados.SalarioMensal
	existente.DataFeriasVencimento = novosDados.DataFeriasVencimento
	existente.ObraID = novosDados.ObraID

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Colaborador{}, id).Error
}
