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
	ErrAtividadeNaoEncontrada       = errors.New("atividade nao encontrada")
	ErrAtividadeIDInvalido          = errors.New("id de atividade invalido")
	ErrDadosAtividadeInvalidos      = errors.New("dados da atividade invalidos")
	ErrTipoServicoInvalido          = errors.New("tipo de servico invalido")
	ErrTipoRecorrenciaInvalida      = errors.New("tipo de recorrencia invalido")
	ErrIntervaloRecorrenciaInvalido = errors.New("intervalo de recorrencia deve estar entre 1 e 12")
	ErrDataVencimentoObrigatoria    = errors.New("data de vencimento obrigatoria")
)

// CreateActivityInput is the domain command for activity creation.
type CreateActivityInput struct {
	Nome                 string
	TipoServico          string
	ClienteID            string
	DataVencimento       time.Time
	Observacoes          string
	Responsavel          string
	TipoRecorrencia      string
	IntervaloRecorrencia int
}

// IActivityUseCase exposes activity operations.
//
// Every read path reconciles the persisted status against the derived one:
// the activity is recomputed with the injected clock and written back only
// when the value moved, so repeated reads with the same inputs trigger no
// further writes.

type IActivityUseCase interface {
	Create(ctx context.Context, in CreateActivityInput) (entities.Activity, error)
	GetByID(ctx context.Context, id string) (entities.Activity, error)
	List(ctx context.Context) ([]entities.Activity, error)
	ListByCliente(ctx context.Context, clienteID string) ([]entities.Activity, error)
	Complete(ctx context.Context, id string) (entities.Activity, error)
}

type ActivityUseCase struct {
	repo       interfaces.IActivityRepository
	clientRepo interfaces.IClientRepository
	clock      Clock
}

var _ IActivityUseCase = (*ActivityUseCase)(nil)

func NewActivityUseCase(repo interfaces.IActivityRepository, clientRepo interfaces.IClientRepository, clock Clock) *ActivityUseCase {
	if clock == nil {
		clock = SystemClock()
	}
	return &ActivityUseCase{repo: repo, clientRepo: clientRepo, clock: clock}
}

func (u *ActivityUseCase) Create(ctx context.Context, in CreateActivityInput) (entities.Activity, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	in.ClienteID = strings.TrimSpace(in.ClienteID)
	if in.Nome == "" || in.ClienteID == "" {
		return entities.Activity{}, ErrDadosAtividadeInvalidos
	}
	if in.DataVencimento.IsZero() {
		return entities.Activity{}, ErrDataVencimentoObrigatoria
	}

	tipoServico := entities.TipoServico(strings.TrimSpace(in.TipoServico))
	if !tipoServico.Valid() {
		return entities.Activity{}, ErrTipoServicoInvalido
	}
	tipoRecorrencia := entities.TipoRecorrencia(strings.TrimSpace(in.TipoRecorrencia))
	if !tipoRecorrencia.Valid() {
		return entities.Activity{}, ErrTipoRecorrenciaInvalida
	}
	if in.IntervaloRecorrencia < 1 || in.IntervaloRecorrencia > 12 {
		return entities.Activity{}, ErrIntervaloRecorrenciaInvalido
	}

	cliente, err := u.clientRepo.GetByID(ctx, in.ClienteID)
	if err != nil {
		return entities.Activity{}, err
	}
	if cliente.ID == "" {
		return entities.Activity{}, ErrClienteNaoEncontrado
	}

	a := entities.Activity{
		ID:                   uuid.NewString(),
		Nome:                 in.Nome,
		TipoServico:          tipoServico,
		ClienteID:            in.ClienteID,
		DataVencimento:       in.DataVencimento,
		Observacoes:          strings.TrimSpace(in.Observacoes),
		Responsavel:          strings.TrimSpace(in.Responsavel),
		TipoRecorrencia:      tipoRecorrencia,
		IntervaloRecorrencia: in.IntervaloRecorrencia,
		Status:               entities.ActivityStatusPendente,
		Concluida:            false,
		CreatedAt:            u.clock.Now(),
	}
	return u.repo.Create(ctx, a)
}

func (u *ActivityUseCase) GetByID(ctx context.Context, id string) (entities.Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Activity{}, ErrAtividadeIDInvalido
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Activity{}, err
	}
	if a.ID == "" {
		return entities.Activity{}, ErrAtividadeNaoEncontrada
	}
	return u.reconcile(ctx, a)
}

func (u *ActivityUseCase) List(ctx context.Context) ([]entities.Activity, error) {
	activities, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return u.reconcileAll(ctx, activities)
}

func (u *ActivityUseCase) ListByCliente(ctx context.Context, clienteID string) ([]entities.Activity, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID == "" {
		return nil, ErrClienteIDInvalido
	}

	cliente, err := u.clientRepo.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if cliente.ID == "" {
		return nil, ErrClienteNaoEncontrado
	}

	activities, err := u.repo.ListByClienteID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return u.reconcileAll(ctx, activities)
}

// Complete marks the activity done. Completion is one-way; completing an
// already-completed activity returns it unchanged without another write.
func (u *ActivityUseCase) Complete(ctx context.Context, id string) (entities.Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Activity{}, ErrAtividadeIDInvalido
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Activity{}, err
	}
	if a.ID == "" {
		return entities.Activity{}, ErrAtividadeNaoEncontrada
	}
	if a.Concluida {
		return a, nil
	}
	return u.repo.Complete(ctx, id, u.clock.Now())
}

// reconcile writes the derived status back only when it differs from the
// stored value. Recomputation is idempotent, so concurrent redundant writes
// of the same status are harmless.
func (u *ActivityUseCase) reconcile(ctx context.Context, a entities.Activity) (entities.Activity, error) {
	calculated := a.CalculateStatus(u.clock.Now())
	if a.Status == calculated {
		return a, nil
	}
	updated, err := u.repo.UpdateStatus(ctx, a.ID, calculated)
	if err != nil {
		return entities.Activity{}, err
	}
	if updated.ID == "" {
		// Record vanished between read and write-back; serve the derived view.
		a.Status = calculated
		return a, nil
	}
	return updated, nil
}

func (u *ActivityUseCase) reconcileAll(ctx context.Context, activities []entities.Activity) ([]entities.Activity, error) {
	out := make([]entities.Activity, 0, len(activities))
	for _, a := range activities {
		reconciled, err := u.reconcile(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, reconciled)
	}
	return out, nil
}
