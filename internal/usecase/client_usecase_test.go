package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	mock_interfaces "github.com/henriquewc/sistema-atividades/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCreateClientInput() CreateClientInput {
	return CreateClientInput{
		NomeCompleto:        "Maria Souza",
		Documento:           "111.444.777-35",
		Endereco:            "Rua das Flores, 10",
		Celular:             "11988887777",
		NumeroContrato:      "CT-2025-001",
		LoginConcessionaria: "maria.souza",
		SenhaConcessionaria: "segredo",
	}
}

func TestClientUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		in := validCreateClientInput()
		in.NomeCompleto = "   "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrDadosClienteInvalidos) {
			t.Fatalf("expected ErrDadosClienteInvalidos, got %v", err)
		}
	})

	t.Run("invalid documento", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		in := validCreateClientInput()
		in.Documento = "111.444.777-36"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrDocumentoInvalido) {
			t.Fatalf("expected ErrDocumentoInvalido, got %v", err)
		}
	})

	t.Run("documento already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByDocumento(gomock.Any(), "11144477735").Return(entities.Client{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), validCreateClientInput())
		if !errors.Is(err, ErrDocumentoJaCadastrado) {
			t.Fatalf("expected ErrDocumentoJaCadastrado, got %v", err)
		}
	})

	t.Run("repo lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByDocumento(gomock.Any(), "11144477735").Return(entities.Client{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validCreateClientInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success normalizes documento and defaults ativo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByDocumento(gomock.Any(), "11144477735").Return(entities.Client{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.Documento != "11144477735" || !c.Ativo {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), validCreateClientInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("create honors explicit ativo false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		in := validCreateClientInput()
		ativo := false
		in.Ativo = &ativo

		repo.EXPECT().GetByDocumento(gomock.Any(), "11144477735").Return(entities.Client{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Ativo {
					t.Fatalf("expected ativo=false, got %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	stored := entities.Client{
		ID:                  "cl-1",
		NomeCompleto:        "Maria Souza",
		Documento:           "11144477735",
		Endereco:            "Rua das Flores, 10",
		Celular:             "11988887777",
		NumeroContrato:      "CT-2025-001",
		LoginConcessionaria: "maria.souza",
		SenhaConcessionaria: "segredo",
		Ativo:               true,
	}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Update(context.Background(), "  ", UpdateClientInput{})
		if !errors.Is(err, ErrClienteIDInvalido) {
			t.Fatalf("expected ErrClienteIDInvalido, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cl-missing").Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), "cl-missing", UpdateClientInput{})
		if !errors.Is(err, ErrClienteNaoEncontrado) {
			t.Fatalf("expected ErrClienteNaoEncontrado, got %v", err)
		}
	})

	t.Run("partial merge keeps unset fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		endereco := "Av. Paulista, 1000"
		repo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Endereco != endereco {
					t.Fatalf("expected endereco updated, got %+v", c)
				}
				if c.NomeCompleto != stored.NomeCompleto || c.Documento != stored.Documento {
					t.Fatalf("expected untouched fields preserved, got %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.Update(context.Background(), "cl-1", UpdateClientInput{Endereco: &endereco})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Endereco != endereco {
			t.Fatalf("expected merged client, got %+v", res)
		}
	})

	t.Run("documento change checks uniqueness", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		novo := "123.456.789-09"
		repo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(stored, nil)
		repo.EXPECT().GetByDocumento(gomock.Any(), "12345678909").Return(entities.Client{ID: "cl-2"}, nil)

		_, err := uc.Update(context.Background(), "cl-1", UpdateClientInput{Documento: &novo})
		if !errors.Is(err, ErrDocumentoJaCadastrado) {
			t.Fatalf("expected ErrDocumentoJaCadastrado, got %v", err)
		}
	})

	t.Run("clearing a required field is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		vazio := "   "
		repo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(stored, nil)

		_, err := uc.Update(context.Background(), "cl-1", UpdateClientInput{Celular: &vazio})
		if !errors.Is(err, ErrDadosClienteInvalidos) {
			t.Fatalf("expected ErrDadosClienteInvalidos, got %v", err)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrClienteIDInvalido) {
			t.Fatalf("expected ErrClienteIDInvalido, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cl-missing").Return(entities.Client{}, nil)

		_, err := uc.GetByID(context.Background(), "cl-missing")
		if !errors.Is(err, ErrClienteNaoEncontrado) {
			t.Fatalf("expected ErrClienteNaoEncontrado, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cl-1").Return(entities.Client{ID: "cl-1"}, nil)

		res, err := uc.GetByID(context.Background(), "cl-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "cl-1" {
			t.Fatalf("unexpected client: %+v", res)
		}
	})
}
