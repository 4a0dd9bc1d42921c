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
	ErrClienteNaoEncontrado  = errors.New("cliente nao encontrado")
	ErrClienteIDInvalido     = errors.New("id de cliente invalido")
	ErrDadosClienteInvalidos = errors.New("dados do cliente invalidos")
	ErrDocumentoInvalido     = errors.New("documento invalido")
	ErrDocumentoJaCadastrado = errors.New("documento ja cadastrado")
)

// CreateClientInput is the domain command for client creation. Documento may
// arrive formatted; it is normalized to digits before validation.
type CreateClientInput struct {
	NomeCompleto        string
	Documento           string
	Endereco            string
	Celular             string
	NumeroContrato      string
	LoginConcessionaria string
	SenhaConcessionaria string
	Ativo               *bool
}

// UpdateClientInput is a partial merge: nil fields keep their stored value.
type UpdateClientInput struct {
	NomeCompleto        *string
	Documento           *string
	Endereco            *string
	Celular             *string
	NumeroContrato      *string
	LoginConcessionaria *string
	SenhaConcessionaria *string
	Ativo               *bool
}

// IClientUseCase exposes client operations. Handlers must sanitize every
// returned Client before serialization.

type IClientUseCase interface {
	Create(ctx context.Context, in CreateClientInput) (entities.Client, error)
	Update(ctx context.Context, id string, in UpdateClientInput) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, in CreateClientInput) (entities.Client, error) {
	in.NomeCompleto = strings.TrimSpace(in.NomeCompleto)
	in.Endereco = strings.TrimSpace(in.Endereco)
	in.Celular = strings.TrimSpace(in.Celular)
	in.NumeroContrato = strings.TrimSpace(in.NumeroContrato)
	in.LoginConcessionaria = strings.TrimSpace(in.LoginConcessionaria)
	if in.NomeCompleto == "" || in.Endereco == "" || in.Celular == "" ||
		in.NumeroContrato == "" || in.LoginConcessionaria == "" || in.SenhaConcessionaria == "" {
		return entities.Client{}, ErrDadosClienteInvalidos
	}

	documento := entities.ExtractDigits(in.Documento)
	if !entities.ValidateDocument(documento) {
		return entities.Client{}, ErrDocumentoInvalido
	}

	// Enforce: documento is unique.
	if existing, err := u.repo.GetByDocumento(ctx, documento); err != nil {
		return entities.Client{}, err
	} else if existing.ID != "" {
		return entities.Client{}, ErrDocumentoJaCadastrado
	}

	ativo := true
	if in.Ativo != nil {
		ativo = *in.Ativo
	}

	c := entities.Client{
		ID:                  uuid.NewString(),
		NomeCompleto:        in.NomeCompleto,
		Documento:           documento,
		Endereco:            in.Endereco,
		Celular:             in.Celular,
		NumeroContrato:      in.NumeroContrato,
		LoginConcessionaria: in.LoginConcessionaria,
		SenhaConcessionaria: in.SenhaConcessionaria,
		Ativo:               ativo,
		CreatedAt:           time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, in UpdateClientInput) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrClienteIDInvalido
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClienteNaoEncontrado
	}

	if in.Documento != nil {
		documento := entities.ExtractDigits(*in.Documento)
		if !entities.ValidateDocument(documento) {
			return entities.Client{}, ErrDocumentoInvalido
		}
		if documento != c.Documento {
			existing, err := u.repo.GetByDocumento(ctx, documento)
			if err != nil {
				return entities.Client{}, err
			}
			if existing.ID != "" && existing.ID != id {
				return entities.Client{}, ErrDocumentoJaCadastrado
			}
			c.Documento = documento
		}
	}
	if in.NomeCompleto != nil {
		c.NomeCompleto = strings.TrimSpace(*in.NomeCompleto)
	}
	if in.Endereco != nil {
		c.Endereco = strings.TrimSpace(*in.Endereco)
	}
	if in.Celular != nil {
		c.Celular = strings.TrimSpace(*in.Celular)
	}
	if in.NumeroContrato != nil {
		c.NumeroContrato = strings.TrimSpace(*in.NumeroContrato)
	}
	if in.LoginConcessionaria != nil {
		c.LoginConcessionaria = strings.TrimSpace(*in.LoginConcessionaria)
	}
	if in.SenhaConcessionaria != nil {
		c.SenhaConcessionaria = *in.SenhaConcessionaria
	}
	if in.Ativo != nil {
		c.Ativo = *in.Ativo
	}
	if c.NomeCompleto == "" || c.Endereco == "" || c.Celular == "" ||
		c.NumeroContrato == "" || c.LoginConcessionaria == "" || c.SenhaConcessionaria == "" {
		return entities.Client{}, ErrDadosClienteInvalidos
	}

	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrClienteIDInvalido
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClienteNaoEncontrado
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}
