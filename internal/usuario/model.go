package usuario

import "gorm.io/gorm"

// Usuario é quem acessa o painel de gestão (escritório e engenheiros).
type Usuario struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Sobrenome             string `json:"sobrenome"`
	Email                 string `json:"email" gorm:"unique"`
	Telefone              string `json:"telefone"`
	Foto                  string `json:"foto"`
	Senha                 string `json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
	IsAdmin               bool   `json:"isAdmin"`
}
