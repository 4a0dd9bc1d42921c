package interfaces

import (
	"context"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
)

// Reference-table repositories backing the proposal calculator. Small tables,
// same zero-value-on-missing convention as the other repositories.

type IPotenciaRepository interface {
	Create(ctx context.Context, p entities.Potencia) (entities.Potencia, error)
	GetByID(ctx context.Context, id string) (entities.Potencia, error)
	List(ctx context.Context) ([]entities.Potencia, error)
}

type ICidadeRepository interface {
	Create(ctx context.Context, c entities.Cidade) (entities.Cidade, error)
	GetByID(ctx context.Context, id string) (entities.Cidade, error)
	GetByNome(ctx context.Context, nome string) (entities.Cidade, error)
	List(ctx context.Context) ([]entities.Cidade, error)
}

type IMargemRepository interface {
	Create(ctx context.Context, m entities.Margem) (entities.Margem, error)
	GetByID(ctx context.Context, id string) (entities.Margem, error)
	List(ctx context.Context) ([]entities.Margem, error)
}

type ICondicaoPagamentoRepository interface {
	Create(ctx context.Context, c entities.CondicaoPagamento) (entities.CondicaoPagamento, error)
	GetByID(ctx context.Context, id string) (entities.CondicaoPagamento, error)
	List(ctx context.Context) ([]entities.CondicaoPagamento, error)
}
