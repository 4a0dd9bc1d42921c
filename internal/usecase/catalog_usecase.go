package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPotenciaNaoEncontrada          = errors.New("potencia nao encontrada")
	ErrCidadeNaoEncontrada            = errors.New("cidade nao encontrada")
	ErrMargemNaoEncontrada            = errors.New("margem nao encontrada")
	ErrCondicaoPagamentoNaoEncontrada = errors.New("condicao de pagamento nao encontrada")
	ErrDadosCatalogoInvalidos         = errors.New("dados de catalogo invalidos")
	ErrCidadeJaCadastrada             = errors.New("cidade ja cadastrada")
)

// Catalog commands. Monetary fields in cents, percentual in basis points.

type CreatePotenciaInput struct {
	Potencia              string
	MaterialAC            int64
	DescricaoEquipamentos string
	PrecoCeramica         int64
	PrecoFibrocimento     int64
	PrecoLaje             int64
	PrecoSolo             int64
	PrecoMetalico         int64
	EstimativaGeracao     int64
	ValorEconomia         int64
}

type CreateCidadeInput struct {
	Nome          string
	CustoExtraDia int64
}

type CreateMargemInput struct {
	Descricao  string
	Percentual int64
}

type CreateCondicaoPagamentoInput struct {
	Condicao string
}

// ICatalogoUseCase manages the reference tables the proposal calculator
// reads from.

type ICatalogoUseCase interface {
	CreatePotencia(ctx context.Context, in CreatePotenciaInput) (entities.Potencia, error)
	ListPotencias(ctx context.Context) ([]entities.Potencia, error)
	CreateCidade(ctx context.Context, in CreateCidadeInput) (entities.Cidade, error)
	ListCidades(ctx context.Context) ([]entities.Cidade, error)
	CreateMargem(ctx context.Context, in CreateMargemInput) (entities.Margem, error)
	ListMargens(ctx context.Context) ([]entities.Margem, error)
	CreateCondicaoPagamento(ctx context.Context, in CreateCondicaoPagamentoInput) (entities.CondicaoPagamento, error)
	ListCondicoesPagamento(ctx context.Context) ([]entities.CondicaoPagamento, error)
}

type CatalogoUseCase struct {
	potencias interfaces.IPotenciaRepository
	cidades   interfaces.ICidadeRepository
	margens   interfaces.IMargemRepository
	condicoes interfaces.ICondicaoPagamentoRepository
}

var _ ICatalogoUseCase = (*CatalogoUseCase)(nil)

func NewCatalogoUseCase(
	potencias interfaces.IPotenciaRepository,
	cidades interfaces.ICidadeRepository,
	margens interfaces.IMargemRepository,
	condicoes interfaces.ICondicaoPagamentoRepository,
) *CatalogoUseCase {
	return &CatalogoUseCase{potencias: potencias, cidades: cidades, margens: margens, condicoes: condicoes}
}

func (u *CatalogoUseCase) CreatePotencia(ctx context.Context, in CreatePotenciaInput) (entities.Potencia, error) {
	in.Potencia = strings.TrimSpace(in.Potencia)
	in.DescricaoEquipamentos = strings.TrimSpace(in.DescricaoEquipamentos)
	if in.Potencia == "" || in.DescricaoEquipamentos == "" {
		return entities.Potencia{}, ErrDadosCatalogoInvalidos
	}
	for _, v := range []int64{in.MaterialAC, in.PrecoCeramica, in.PrecoFibrocimento, in.PrecoLaje, in.PrecoSolo, in.PrecoMetalico, in.EstimativaGeracao, in.ValorEconomia} {
		if v < 0 {
			return entities.Potencia{}, ErrDadosCatalogoInvalidos
		}
	}

	p := entities.Potencia{
		ID:                    uuid.NewString(),
		Potencia:              in.Potencia,
		MaterialAC:            in.MaterialAC,
		DescricaoEquipamentos: in.DescricaoEquipamentos,
		PrecoCeramica:         in.PrecoCeramica,
		PrecoFibrocimento:     in.PrecoFibrocimento,
		PrecoLaje:             in.PrecoLaje,
		PrecoSolo:             in.PrecoSolo,
		PrecoMetalico:         in.PrecoMetalico,
		EstimativaGeracao:     in.EstimativaGeracao,
		ValorEconomia:         in.ValorEconomia,
		Ativo:                 true,
		CreatedAt:             time.Now().UTC(),
	}
	if _, ok := p.Kwp(); !ok {
		return entities.Potencia{}, ErrDadosCatalogoInvalidos
	}
	return u.potencias.Create(ctx, p)
}

func (u *CatalogoUseCase) ListPotencias(ctx context.Context) ([]entities.Potencia, error) {
	return u.potencias.List(ctx)
}

func (u *CatalogoUseCase) CreateCidade(ctx context.Context, in CreateCidadeInput) (entities.Cidade, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	if in.Nome == "" || in.CustoExtraDia < 0 {
		return entities.Cidade{}, ErrDadosCatalogoInvalidos
	}

	// Enforce: nome is unique.
	if existing, err := u.cidades.GetByNome(ctx, in.Nome); err != nil {
		return entities.Cidade{}, err
	} else if existing.ID != "" {
		return entities.Cidade{}, ErrCidadeJaCadastrada
	}

	c := entities.Cidade{
		ID:            uuid.NewString(),
		Nome:          in.Nome,
		CustoExtraDia: in.CustoExtraDia,
		Ativo:         true,
		CreatedAt:     time.Now().UTC(),
	}
	return u.cidades.Create(ctx, c)
}

func (u *CatalogoUseCase) ListCidades(ctx context.Context) ([]entities.Cidade, error) {
	return u.cidades.List(ctx)
}

func (u *CatalogoUseCase) CreateMargem(ctx context.Context, in CreateMargemInput) (entities.Margem, error) {
	in.Descricao = strings.TrimSpace(in.Descricao)
	if in.Descricao == "" || in.Percentual < 0 {
		return entities.Margem{}, ErrDadosCatalogoInvalidos
	}

	m := entities.Margem{
		ID:         uuid.NewString(),
		Descricao:  in.Descricao,
		Percentual: in.Percentual,
		Ativo:      true,
		CreatedAt:  time.Now().UTC(),
	}
	return u.margens.Create(ctx, m)
}

func (u *CatalogoUseCase) ListMargens(ctx context.Context) ([]entities.Margem, error) {
	return u.margens.List(ctx)
}

func (u *CatalogoUseCase) CreateCondicaoPagamento(ctx context.Context, in CreateCondicaoPagamentoInput) (entities.CondicaoPagamento, error) {
	in.Condicao = strings.TrimSpace(in.Condicao)
	if in.Condicao == "" {
		return entities.CondicaoPagamento{}, ErrDadosCatalogoInvalidos
	}

	c := entities.CondicaoPagamento{
		ID:        uuid.NewString(),
		Condicao:  in.Condicao,
		Ativo:     true,
		CreatedAt: time.Now().UTC(),
	}
	return u.condicoes.Create(ctx, c)
}

func (u *CatalogoUseCase) ListCondicoesPagamento(ctx context.Context) ([]entities.CondicaoPagamento, error) {
	return u.condicoes.List(ctx)
}
