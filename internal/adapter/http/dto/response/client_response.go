package response

import (
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
)

// ClientResponse is the external view of a Client: document masked, concession
// password never present.
type ClientResponse struct {
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

func FromClient(c entities.Client) ClientResponse {
	p := c.Sanitize()
	return ClientResponse{
		ID:                  p.ID,
		NomeCompleto:        p.NomeCompleto,
		Documento:           p.Documento,
		Endereco:            p.Endereco,
		Celular:             p.Celular,
		NumeroContrato:      p.NumeroContrato,
		LoginConcessionaria: p.LoginConcessionaria,
		Ativo:               p.Ativo,
		CreatedAt:           p.CreatedAt,
	}
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}
