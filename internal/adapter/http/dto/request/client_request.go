package request

import "github.com/henriquewc/sistema-atividades/internal/usecase"

// CreateClientRequest carries the payload of POST /api/clients. Documento
// accepts a formatted or digits-only CPF/CNPJ.
type CreateClientRequest struct {
	NomeCompleto        string `json:"nome_completo" binding:"required"`
	Documento           string `json:"documento" binding:"required"`
	Endereco            string `json:"endereco" binding:"required"`
	Celular             string `json:"celular" binding:"required"`
	NumeroContrato      string `json:"numero_contrato" binding:"required"`
	LoginConcessionaria string `json:"login_concessionaria" binding:"required"`
	SenhaConcessionaria string `json:"senha_concessionaria" binding:"required"`
	Ativo               *bool  `json:"ativo"`
}

func (r CreateClientRequest) ToInput() usecase.CreateClientInput {
	return usecase.CreateClientInput{
		NomeCompleto:        r.NomeCompleto,
		Documento:           r.Documento,
		Endereco:            r.Endereco,
		Celular:             r.Celular,
		NumeroContrato:      r.NumeroContrato,
		LoginConcessionaria: r.LoginConcessionaria,
		SenhaConcessionaria: r.SenhaConcessionaria,
		Ativo:               r.Ativo,
	}
}

// UpdateClientRequest carries the payload of PATCH /api/clients/:id. Absent
// fields keep their stored value.
type UpdateClientRequest struct {
	NomeCompleto        *string `json:"nome_completo"`
	Documento           *string `json:"documento"`
	Endereco            *string `json:"endereco"`
	Celular             *string `json:"celular"`
	NumeroContrato      *string `json:"numero_contrato"`
	LoginConcessionaria *string `json:"login_concessionaria"`
	SenhaConcessionaria *string `json:"senha_concessionaria"`
	Ativo               *bool   `json:"ativo"`
}

func (r UpdateClientRequest) ToInput() usecase.UpdateClientInput {
	return usecase.UpdateClientInput{
		NomeCompleto:        r.NomeCompleto,
		Documento:           r.Documento,
		Endereco:            r.Endereco,
		Celular:             r.Celular,
		NumeroContrato:      r.NumeroContrato,
		LoginConcessionaria: r.LoginConcessionaria,
		SenhaConcessionaria: r.SenhaConcessionaria,
		Ativo:               r.Ativo,
	}
}
