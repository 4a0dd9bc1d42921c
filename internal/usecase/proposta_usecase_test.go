package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/internal/domain/pricing"
	mock_interfaces "github.com/henriquewc/sistema-atividades/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testPricingConfig = PricingConfig{
	MaoObraDia:      15000,
	ValorProjeto:    150000,
	AliquotaImposto: 600,
}

type propostaMocks struct {
	repo       *mock_interfaces.MockIPropostaRepository
	pagamentos *mock_interfaces.MockIPropostaPagamentoRepository
	potencias  *mock_interfaces.MockIPotenciaRepository
	cidades    *mock_interfaces.MockICidadeRepository
	margens    *mock_interfaces.MockIMargemRepository
	condicoes  *mock_interfaces.MockICondicaoPagamentoRepository
	gateway    *mock_interfaces.MockIPaymentGateway
}

func newPropostaUseCaseForTest(ctrl *gomock.Controller) (*PropostaUseCase, propostaMocks) {
	m := propostaMocks{
		repo:       mock_interfaces.NewMockIPropostaRepository(ctrl),
		pagamentos: mock_interfaces.NewMockIPropostaPagamentoRepository(ctrl),
		potencias:  mock_interfaces.NewMockIPotenciaRepository(ctrl),
		cidades:    mock_interfaces.NewMockICidadeRepository(ctrl),
		margens:    mock_interfaces.NewMockIMargemRepository(ctrl),
		condicoes:  mock_interfaces.NewMockICondicaoPagamentoRepository(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewPropostaUseCase(m.repo, m.pagamentos, m.potencias, m.cidades, m.margens, m.condicoes, m.gateway, testPricingConfig)
	return uc, m
}

func validCreatePropostaInput() CreatePropostaInput {
	return CreatePropostaInput{
		NomeCliente:         "Joao Pereira",
		EmailCliente:        "joao@example.com",
		TelefoneCliente:     "41999990000",
		TitularCliente:      "Joao Pereira",
		NumeroContrato:      "CT-2025-010",
		EnderecoCliente:     "Rua XV, 200",
		PotenciaID:          "pot-1",
		TipoTelhado:         string(entities.TipoTelhadoCeramica),
		DiasInstalacao:      2,
		CidadeID:            "cid-1",
		MargemID:            "mar-1",
		CondicaoPagamentoID: "cond-1",
	}
}

func testPotencia() entities.Potencia {
	return entities.Potencia{
		ID:            "pot-1",
		Potencia:      "6 kWp",
		MaterialAC:    50000,
		PrecoCeramica: 1000000,
	}
}

func expectCatalogLookups(m propostaMocks) {
	m.potencias.EXPECT().GetByID(gomock.Any(), "pot-1").Return(testPotencia(), nil)
	m.cidades.EXPECT().GetByID(gomock.Any(), "cid-1").Return(entities.Cidade{ID: "cid-1", CustoExtraDia: 10000}, nil)
	m.margens.EXPECT().GetByID(gomock.Any(), "mar-1").Return(entities.Margem{ID: "mar-1", Percentual: 1000}, nil)
	m.condicoes.EXPECT().GetByID(gomock.Any(), "cond-1").Return(entities.CondicaoPagamento{ID: "cond-1"}, nil)
}

func TestPropostaUseCase_Create(t *testing.T) {
	t.Run("missing contact fields", func(t *testing.T) {
		uc := NewPropostaUseCase(nil, nil, nil, nil, nil, nil, nil, testPricingConfig)
		in := validCreatePropostaInput()
		in.EmailCliente = " "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrDadosPropostaInvalidos) {
			t.Fatalf("expected ErrDadosPropostaInvalidos, got %v", err)
		}
	})

	t.Run("invalid tipo telhado", func(t *testing.T) {
		uc := NewPropostaUseCase(nil, nil, nil, nil, nil, nil, nil, testPricingConfig)
		in := validCreatePropostaInput()
		in.TipoTelhado = "palha"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrTipoTelhadoInvalido) {
			t.Fatalf("expected ErrTipoTelhadoInvalido, got %v", err)
		}
	})

	t.Run("invalid dias instalacao", func(t *testing.T) {
		uc := NewPropostaUseCase(nil, nil, nil, nil, nil, nil, nil, testPricingConfig)
		in := validCreatePropostaInput()
		in.DiasInstalacao = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrDiasInstalacaoInvalido) {
			t.Fatalf("expected ErrDiasInstalacaoInvalido, got %v", err)
		}
	})

	t.Run("potencia not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.potencias.EXPECT().GetByID(gomock.Any(), "pot-1").Return(entities.Potencia{}, nil)

		_, err := uc.Create(context.Background(), validCreatePropostaInput())
		if !errors.Is(err, ErrPotenciaNaoEncontrada) {
			t.Fatalf("expected ErrPotenciaNaoEncontrada, got %v", err)
		}
	})

	t.Run("potencia label without kwp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		broken := testPotencia()
		broken.Potencia = "Kit residencial"
		m.potencias.EXPECT().GetByID(gomock.Any(), "pot-1").Return(broken, nil)
		m.cidades.EXPECT().GetByID(gomock.Any(), "cid-1").Return(entities.Cidade{ID: "cid-1"}, nil)
		m.margens.EXPECT().GetByID(gomock.Any(), "mar-1").Return(entities.Margem{ID: "mar-1"}, nil)
		m.condicoes.EXPECT().GetByID(gomock.Any(), "cond-1").Return(entities.CondicaoPagamento{ID: "cond-1"}, nil)

		_, err := uc.Create(context.Background(), validCreatePropostaInput())
		if !errors.Is(err, pricing.ErrPotenciaInvalida) {
			t.Fatalf("expected ErrPotenciaInvalida, got %v", err)
		}
	})

	t.Run("create success computes breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		expectCatalogLookups(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposta{})).DoAndReturn(
			func(_ context.Context, p entities.Proposta) (entities.Proposta, error) {
				if p.ID == "" || p.Status != entities.PropostaStatusRascunho {
					t.Fatalf("unexpected proposta: %+v", p)
				}
				if p.MaoObra != 30000 || p.Deslocamento != 20000 {
					t.Fatalf("unexpected per-day components: mao_obra=%d deslocamento=%d", p.MaoObra, p.Deslocamento)
				}
				// 1000000 + 50000 + 30000 + 20000 + 150000
				if p.Subtotal != 1250000 {
					t.Fatalf("unexpected subtotal: %d", p.Subtotal)
				}
				if p.ValorMargem != 125000 || p.TotalSemImposto != 1375000 {
					t.Fatalf("unexpected margin chain: %+v", p)
				}
				if p.ValorImposto != 82500 || p.TotalFinal != 1457500 {
					t.Fatalf("unexpected totals: imposto=%d total=%d", p.ValorImposto, p.TotalFinal)
				}
				if p.MargemRealObtida != 1000 {
					t.Fatalf("unexpected margem real: %d", p.MargemRealObtida)
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), validCreatePropostaInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("create with manual override keeps chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		override := int64(1500000)
		in := validCreatePropostaInput()
		in.ValorFinalPersonalizado = &override

		expectCatalogLookups(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposta) (entities.Proposta, error) {
				if p.TotalFinal != 1500000 {
					t.Fatalf("expected override total, got %d", p.TotalFinal)
				}
				if p.Subtotal != 1250000 || p.ValorImposto != 82500 {
					t.Fatalf("expected chain retained, got %+v", p)
				}
				if p.ValorFinalPersonalizado == nil || *p.ValorFinalPersonalizado != override {
					t.Fatalf("expected personalizado persisted, got %+v", p.ValorFinalPersonalizado)
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPropostaUseCase_StatusTransitions(t *testing.T) {
	t.Run("enviar from rascunho", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(entities.Proposta{ID: "pr-1", Status: entities.PropostaStatusRascunho}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "pr-1", entities.PropostaStatusEnviada).
			Return(entities.Proposta{ID: "pr-1", Status: entities.PropostaStatusEnviada}, nil)

		res, err := uc.Enviar(context.Background(), "pr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PropostaStatusEnviada {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("aprovar requires enviada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(entities.Proposta{ID: "pr-1", Status: entities.PropostaStatusRascunho}, nil)

		_, err := uc.Aprovar(context.Background(), "pr-1")
		if !errors.Is(err, ErrTransicaoStatusInvalida) {
			t.Fatalf("expected ErrTransicaoStatusInvalida, got %v", err)
		}
	})

	t.Run("rejeitar from enviada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(entities.Proposta{ID: "pr-1", Status: entities.PropostaStatusEnviada}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "pr-1", entities.PropostaStatusRejeitada).
			Return(entities.Proposta{ID: "pr-1", Status: entities.PropostaStatusRejeitada}, nil)

		if _, err := uc.Rejeitar(context.Background(), "pr-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "pr-missing").Return(entities.Proposta{}, nil)

		_, err := uc.Enviar(context.Background(), "pr-missing")
		if !errors.Is(err, ErrPropostaNaoEncontrada) {
			t.Fatalf("expected ErrPropostaNaoEncontrada, got %v", err)
		}
	})
}

func TestPropostaUseCase_CriarPagamento(t *testing.T) {
	approved := entities.Proposta{ID: "pr-1", Status: entities.PropostaStatusAprovada, TotalFinal: 1457500}
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"joao@example.com"}}`)

	t.Run("invalid payload without mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newPropostaUseCaseForTest(ctrl)

		_, err := uc.CriarPagamento(context.Background(), "pr-1", json.RawMessage("not-json"))
		if !errors.Is(err, ErrPagamentoPayloadInvalido) {
			t.Fatalf("expected ErrPagamentoPayloadInvalido, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPropostaUseCase(nil, nil, nil, nil, nil, nil, nil, testPricingConfig)
		_, err := uc.CriarPagamento(context.Background(), "pr-1", payload)
		if !errors.Is(err, ErrGatewayNaoConfigurado) {
			t.Fatalf("expected ErrGatewayNaoConfigurado, got %v", err)
		}
	})

	t.Run("proposta not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(entities.Proposta{ID: "pr-1", Status: entities.PropostaStatusEnviada}, nil)

		_, err := uc.CriarPagamento(context.Background(), "pr-1", payload)
		if !errors.Is(err, ErrPropostaNaoAprovada) {
			t.Fatalf("expected ErrPropostaNaoAprovada, got %v", err)
		}
	})

	t.Run("success charges effective total and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(approved, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sent json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(sent, &req); err != nil {
					t.Fatalf("invalid payload sent to gateway: %v", err)
				}
				if req["transaction_amount"] != 14575.0 {
					t.Fatalf("unexpected transaction_amount: %v", req["transaction_amount"])
				}
				if req["external_reference"] != "pr-1" {
					t.Fatalf("unexpected external_reference: %v", req["external_reference"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			},
		)
		m.pagamentos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pg entities.PropostaPagamento) (entities.PropostaPagamento, error) {
				if pg.ID != "mp-123" || pg.PropostaID != "pr-1" || pg.Status != entities.PagamentoStatusAprovado {
					t.Fatalf("unexpected pagamento: %+v", pg)
				}
				if pg.ProviderPayload["status"] != "approved" {
					t.Fatalf("expected parsed provider payload, got %+v", pg.ProviderPayload)
				}
				return pg, nil
			},
		)

		res, err := uc.CriarPagamento(context.Background(), "pr-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PagamentoStatusAprovado {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(approved, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"message":"invalid payment_method_id","status":400}`))

		_, err := uc.CriarPagamento(context.Background(), "pr-1", payload)
		if !errors.Is(err, ErrGatewayRequisicaoInvalida) {
			t.Fatalf("expected ErrGatewayRequisicaoInvalida, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(approved, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CriarPagamento(context.Background(), "pr-1", payload)
		if !errors.Is(err, ErrGatewayNaoAutorizado) {
			t.Fatalf("expected ErrGatewayNaoAutorizado, got %v", err)
		}
	})

	t.Run("rejected provider status maps to negado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "pr-1").Return(approved, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-9", "rejected", json.RawMessage(`{"id":"mp-9","status":"rejected"}`), nil)
		m.pagamentos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pg entities.PropostaPagamento) (entities.PropostaPagamento, error) {
				if pg.Status != entities.PagamentoStatusNegado {
					t.Fatalf("expected negado, got %s", pg.Status)
				}
				return pg, nil
			},
		)

		if _, err := uc.CriarPagamento(context.Background(), "pr-1", payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPropostaUseCase_ListarPagamentos(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPropostaUseCase(nil, nil, nil, nil, nil, nil, nil, testPricingConfig)
		_, err := uc.ListarPagamentos(context.Background(), " ")
		if !errors.Is(err, ErrPropostaIDInvalido) {
			t.Fatalf("expected ErrPropostaIDInvalido, got %v", err)
		}
	})

	t.Run("lists by proposta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPropostaUseCaseForTest(ctrl)

		m.pagamentos.EXPECT().ListByPropostaID(gomock.Any(), "pr-1").
			Return([]entities.PropostaPagamento{{ID: "mp-1", PropostaID: "pr-1"}}, nil)

		res, err := uc.ListarPagamentos(context.Background(), "pr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "mp-1" {
			t.Fatalf("unexpected pagamentos: %+v", res)
		}
	})
}
