package response

import (
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
)

type PagamentoResponse struct {
	ID         string    `json:"id"`
	PropostaID string    `json:"proposta_id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPagamento(p entities.PropostaPagamento) PagamentoResponse {
	return PagamentoResponse{
		ID:                 p.ID,
		PropostaID:         p.PropostaID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPagamentos(ps []entities.PropostaPagamento) []PagamentoResponse {
	out := make([]PagamentoResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPagamento(p))
	}
	return out
}
