package model

// User é a entidade que o backend possui; o cliente só lê e grava por
// inteiro, sem invariantes locais além da validação de formulário.
type User struct {
	IDUsuario      int64  `json:"idUsuario"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento"`
	Senha          string `json:"senha,omitempty"`
	Email          string `json:"email"`
	Telefone       int64  `json:"telefone"`
	IDCargo        int64  `json:"idCargo"`
	IDJornada      int64  `json:"idJornada"`
	IndAtivo       int    `json:"indAtivo"`
}

// Active informa se o usuário está ativo (indAtivo é 0/1 no backend).
func (u User) Active() bool {
	return u.IndAtivo != 0
}

// Profile é a projeção reduzida mantida em cache para exibição (saudação,
// navbar); invalidada no logout e atualizada quando o perfil muda.
type Profile struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
	Telefone       int64  `json:"telefone"`
}

// ProfileOf extrai a projeção reduzida de um usuário completo.
func ProfileOf(u User) Profile {
	return Profile{
		Nome:           u.Nome,
		Email:          u.Email,
		DataNascimento: u.DataNascimento,
		Telefone:       u.Telefone,
	}
}
