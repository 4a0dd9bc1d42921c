package request

import (
	"time"

	"github.com/henriquewc/sistema-atividades/internal/usecase"
)

// CreateActivityRequest carries the payload of POST /api/activities.
// DataVencimento is RFC 3339.
type CreateActivityRequest struct {
	Nome                 string    `json:"nome" binding:"required"`
	TipoServico          string    `json:"tipo_servico" binding:"required"`
	ClienteID            string    `json:"cliente_id" binding:"required"`
	DataVencimento       time.Time `json:"data_vencimento" binding:"required"`
	Observacoes          string    `json:"observacoes"`
	Responsavel          string    `json:"responsavel"`
	TipoRecorrencia      string    `json:"tipo_recorrencia" binding:"required"`
	IntervaloRecorrencia int       `json:"intervalo_recorrencia" binding:"required"`
}

func (r CreateActivityRequest) ToInput() usecase.CreateActivityInput {
	return usecase.CreateActivityInput{
		Nome:                 r.Nome,
		TipoServico:          r.TipoServico,
		ClienteID:            r.ClienteID,
		DataVencimento:       r.DataVencimento,
		Observacoes:          r.Observacoes,
		Responsavel:          r.Responsavel,
		TipoRecorrencia:      r.TipoRecorrencia,
		IntervaloRecorrencia: r.IntervaloRecorrencia,
	}
}
