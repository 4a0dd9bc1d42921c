package entities

import "time"

// Client is the customer record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - Documento holds digits only (CPF or CNPJ) and is unique across clients.
//   - SenhaConcessionaria never crosses the HTTP boundary; responses are built
//     from PublicClient only.
type Client struct {
	ID                  string    `json:"id"`
	NomeCompleto        string    `json:"nome_completo"`
	Documento           string    `json:"documento"`
	Endereco            string    `json:"endereco"`
	Celular             string    `json:"celular"`
	NumeroContrato      string    `json:"numero_contrato"`
	LoginConcessionaria string    `json:"login_concessionaria"`
	SenhaConcessionaria string    `json:"-"`
	Ativo               bool      `json:"ativo"`
	CreatedAt           time.Time `json:"created_at"`
}

// PublicClient is the external-safe view of a Client: the concession password
// is dropped entirely and the document is masked.
type PublicClient struct {
	ID                  string    `json:"id"`
	NomeCompleto        string    `json:"nome_completo"`
	Documento           string    `json:"documento"`
	Endereco            string    `json:"endereco"`
	Celular             string    `json:"celular"`
	NumeroContrato      string    `json:"numero_contrato"`
	LoginConcessionaria string    `json:"login_concessionaria"`
	Ativo               bool      `json:"ativo"`
	CreatedAt           time.Time `json:"created_at"`
}

// Sanitize strips sensitive data for public API responses.
func (c Client) Sanitize() PublicClient {
	return PublicClient{
		ID:                  c.ID,
		NomeCompleto:        c.NomeCompleto,
		Documento:           MaskDocumentDigits(c.Documento),
		Endereco:            c.Endereco,
		Celular:             c.Celular,
		NumeroContrato:      c.NumeroContrato,
		LoginConcessionaria: c.LoginConcessionaria,
		Ativo:               c.Ativo,
		CreatedAt:           c.CreatedAt,
	}
}
