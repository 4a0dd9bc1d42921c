package interfaces

import (
	"context"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
)

// IPropostaRepository abstracts DynamoDB persistence for Proposta.

type IPropostaRepository interface {
	Create(ctx context.Context, p entities.Proposta) (entities.Proposta, error)
	GetByID(ctx context.Context, id string) (entities.Proposta, error)
	List(ctx context.Context) ([]entities.Proposta, error)
	UpdateStatus(ctx context.Context, id string, status entities.PropostaStatus) (entities.Proposta, error)
}

// IPropostaPagamentoRepository abstracts DynamoDB persistence for proposal
// down payments.

type IPropostaPagamentoRepository interface {
	Create(ctx context.Context, p entities.PropostaPagamento) (entities.PropostaPagamento, error)
	GetByID(ctx context.Context, id string) (entities.PropostaPagamento, error)
	ListByPropostaID(ctx context.Context, propostaID string) ([]entities.PropostaPagamento, error)
}
