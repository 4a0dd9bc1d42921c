package response

import (
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
)

type ActivityResponse struct {
	ID                   string     `json:"id"`
	Nome                 string     `json:"nome"`
	TipoServico          string     `json:"tipo_servico"`
	ClienteID            string     `json:"cliente_id"`
	DataVencimento       time.Time  `json:"data_vencimento"`
	Observacoes          string     `json:"observacoes,omitempty"`
	Responsavel          string     `json:"responsavel,omitempty"`
	TipoRecorrencia      string     `json:"tipo_recorrencia"`
	IntervaloRecorrencia int        `json:"intervalo_recorrencia"`
	Status               string     `json:"status"`
	Concluida            bool       `json:"concluida"`
	DataConclusao        *time.Time `json:"data_conclusao,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

func FromActivity(a entities.Activity) ActivityResponse {
	return ActivityResponse{
		ID:                   a.ID,
		Nome:                 a.Nome,
		TipoServico:          string(a.TipoServico),
		ClienteID:            a.ClienteID,
		DataVencimento:       a.DataVencimento,
		Observacoes:          a.Observacoes,
		Responsavel:          a.Responsavel,
		TipoRecorrencia:      string(a.TipoRecorrencia),
		IntervaloRecorrencia: a.IntervaloRecorrencia,
		Status:               string(a.Status),
		Concluida:            a.Concluida,
		DataConclusao:        a.DataConclusao,
		CreatedAt:            a.CreatedAt,
	}
}

func FromActivities(as []entities.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromActivity(a))
	}
	return out
}
