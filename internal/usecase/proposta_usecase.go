package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/internal/domain/pricing"
	"github.com/henriquewc/sistema-atividades/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPropostaNaoEncontrada     = errors.New("proposta nao encontrada")
	ErrPropostaIDInvalido        = errors.New("id de proposta invalido")
	ErrDadosPropostaInvalidos    = errors.New("dados da proposta invalidos")
	ErrTipoTelhadoInvalido       = errors.New("tipo de telhado invalido")
	ErrDiasInstalacaoInvalido    = errors.New("dias de instalacao deve ser positivo")
	ErrTransicaoStatusInvalida   = errors.New("transicao de status invalida")
	ErrPropostaNaoAprovada       = errors.New("proposta nao aprovada")
	ErrPagamentoPayloadInvalido  = errors.New("payload de pagamento invalido")
	ErrGatewayNaoConfigurado     = errors.New("gateway de pagamento nao configurado")
	ErrGatewayRequisicaoInvalida = errors.New("gateway de pagamento recusou a requisicao")
	ErrGatewayNaoAutorizado      = errors.New("gateway de pagamento nao autorizado")
)

// PricingConfig carries the external business inputs of the calculator: the
// per-day labor rate, the fixed project fee and the tax rate. The travel
// component always comes from the city's per-day surcharge.
type PricingConfig struct {
	MaoObraDia      int64 // cents per installation day
	ValorProjeto    int64 // cents
	AliquotaImposto int64 // basis points
}

// CreatePropostaInput is the domain command for proposal creation.
type CreatePropostaInput struct {
	NomeCliente     string
	EmailCliente    string
	TelefoneCliente string
	TitularCliente  string
	NumeroContrato  string
	EnderecoCliente string

	PotenciaID          string
	TipoTelhado         string
	DiasInstalacao      int
	CidadeID            string
	MargemID            string
	CondicaoPagamentoID string

	ValorFinalPersonalizado *int64
	DataVistoria            *time.Time
	ObservacoesTecnicas     string
}

// IPropostaUseCase exposes proposal operations.
//
// Status flow: rascunho -> enviada -> aprovada | rejeitada. Down payments are
// only collected for approved proposals.

type IPropostaUseCase interface {
	Create(ctx context.Context, in CreatePropostaInput) (entities.Proposta, error)
	GetByID(ctx context.Context, id string) (entities.Proposta, error)
	List(ctx context.Context) ([]entities.Proposta, error)
	Enviar(ctx context.Context, id string) (entities.Proposta, error)
	Aprovar(ctx context.Context, id string) (entities.Proposta, error)
	Rejeitar(ctx context.Context, id string) (entities.Proposta, error)
	CriarPagamento(ctx context.Context, propostaID string, payload json.RawMessage) (entities.PropostaPagamento, error)
	ListarPagamentos(ctx context.Context, propostaID string) ([]entities.PropostaPagamento, error)
}

type PropostaUseCase struct {
	repo       interfaces.IPropostaRepository
	pagamentos interfaces.IPropostaPagamentoRepository
	potencias  interfaces.IPotenciaRepository
	cidades    interfaces.ICidadeRepository
	margens    interfaces.IMargemRepository
	condicoes  interfaces.ICondicaoPagamentoRepository
	gateway    interfaces.IPaymentGateway
	config     PricingConfig
}

var _ IPropostaUseCase = (*PropostaUseCase)(nil)

func NewPropostaUseCase(
	repo interfaces.IPropostaRepository,
	pagamentos interfaces.IPropostaPagamentoRepository,
	potencias interfaces.IPotenciaRepository,
	cidades interfaces.ICidadeRepository,
	margens interfaces.IMargemRepository,
	condicoes interfaces.ICondicaoPagamentoRepository,
	gateway interfaces.IPaymentGateway,
	config PricingConfig,
) *PropostaUseCase {
	return &PropostaUseCase{
		repo:       repo,
		pagamentos: pagamentos,
		potencias:  potencias,
		cidades:    cidades,
		margens:    margens,
		condicoes:  condicoes,
		gateway:    gateway,
		config:     config,
	}
}

func (u *PropostaUseCase) Create(ctx context.Context, in CreatePropostaInput) (entities.Proposta, error) {
	in.NomeCliente = strings.TrimSpace(in.NomeCliente)
	in.EmailCliente = strings.TrimSpace(in.EmailCliente)
	in.TelefoneCliente = strings.TrimSpace(in.TelefoneCliente)
	in.TitularCliente = strings.TrimSpace(in.TitularCliente)
	in.NumeroContrato = strings.TrimSpace(in.NumeroContrato)
	if in.NomeCliente == "" || in.EmailCliente == "" || in.TelefoneCliente == "" ||
		in.TitularCliente == "" || in.NumeroContrato == "" {
		return entities.Proposta{}, ErrDadosPropostaInvalidos
	}

	tipoTelhado := entities.TipoTelhado(strings.TrimSpace(in.TipoTelhado))
	if !tipoTelhado.Valid() {
		return entities.Proposta{}, ErrTipoTelhadoInvalido
	}
	if in.DiasInstalacao < 1 {
		return entities.Proposta{}, ErrDiasInstalacaoInvalido
	}

	potencia, err := u.potencias.GetByID(ctx, strings.TrimSpace(in.PotenciaID))
	if err != nil {
		return entities.Proposta{}, err
	}
	if potencia.ID == "" {
		return entities.Proposta{}, ErrPotenciaNaoEncontrada
	}
	cidade, err := u.cidades.GetByID(ctx, strings.TrimSpace(in.CidadeID))
	if err != nil {
		return entities.Proposta{}, err
	}
	if cidade.ID == "" {
		return entities.Proposta{}, ErrCidadeNaoEncontrada
	}
	margem, err := u.margens.GetByID(ctx, strings.TrimSpace(in.MargemID))
	if err != nil {
		return entities.Proposta{}, err
	}
	if margem.ID == "" {
		return entities.Proposta{}, ErrMargemNaoEncontrada
	}
	condicao, err := u.condicoes.GetByID(ctx, strings.TrimSpace(in.CondicaoPagamentoID))
	if err != nil {
		return entities.Proposta{}, err
	}
	if condicao.ID == "" {
		return entities.Proposta{}, ErrCondicaoPagamentoNaoEncontrada
	}

	valorSistema, ok := potencia.PrecoTelhado(tipoTelhado)
	if !ok {
		return entities.Proposta{}, ErrTipoTelhadoInvalido
	}
	kwp, ok := potencia.Kwp()
	if !ok {
		return entities.Proposta{}, pricing.ErrPotenciaInvalida
	}

	dias := int64(in.DiasInstalacao)
	breakdown, err := pricing.Calculate(pricing.Input{
		ValorSistema:            valorSistema,
		MaterialAC:              potencia.MaterialAC,
		MaoObra:                 dias * u.config.MaoObraDia,
		Deslocamento:            dias * cidade.CustoExtraDia,
		ValorProjeto:            u.config.ValorProjeto,
		MargemPercentual:        margem.Percentual,
		AliquotaImposto:         u.config.AliquotaImposto,
		ValorFinalPersonalizado: in.ValorFinalPersonalizado,
		PotenciaKwp:             kwp,
	})
	if err != nil {
		return entities.Proposta{}, err
	}

	p := entities.Proposta{
		ID:                      uuid.NewString(),
		NomeCliente:             in.NomeCliente,
		EmailCliente:            in.EmailCliente,
		TelefoneCliente:         in.TelefoneCliente,
		TitularCliente:          in.TitularCliente,
		NumeroContrato:          in.NumeroContrato,
		EnderecoCliente:         strings.TrimSpace(in.EnderecoCliente),
		PotenciaID:              potencia.ID,
		TipoTelhado:             tipoTelhado,
		DiasInstalacao:          in.DiasInstalacao,
		CidadeID:                cidade.ID,
		MargemID:                margem.ID,
		CondicaoPagamentoID:     condicao.ID,
		ValorSistema:            breakdown.ValorSistema,
		MaterialAC:              breakdown.MaterialAC,
		MaoObra:                 breakdown.MaoObra,
		Deslocamento:            breakdown.Deslocamento,
		ValorProjeto:            breakdown.ValorProjeto,
		Subtotal:                breakdown.Subtotal,
		ValorMargem:             breakdown.ValorMargem,
		TotalSemImposto:         breakdown.TotalSemImposto,
		ValorImposto:            breakdown.ValorImposto,
		TotalFinal:              breakdown.TotalFinal,
		ValorFinalPersonalizado: in.ValorFinalPersonalizado,
		MargemRealObtida:        breakdown.MargemRealObtida,
		ValorPorWp:              breakdown.ValorPorWp,
		DataVistoria:            in.DataVistoria,
		ObservacoesTecnicas:     strings.TrimSpace(in.ObservacoesTecnicas),
		Status:                  entities.PropostaStatusRascunho,
		CreatedAt:               time.Now().UTC(),
	}
	return u.repo.Create(ctx, p)
}

func (u *PropostaUseCase) GetByID(ctx context.Context, id string) (entities.Proposta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposta{}, ErrPropostaIDInvalido
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposta{}, err
	}
	if p.ID == "" {
		return entities.Proposta{}, ErrPropostaNaoEncontrada
	}
	return p, nil
}

func (u *PropostaUseCase) List(ctx context.Context) ([]entities.Proposta, error) {
	return u.repo.List(ctx)
}

func (u *PropostaUseCase) Enviar(ctx context.Context, id string) (entities.Proposta, error) {
	return u.transition(ctx, id, entities.PropostaStatusRascunho, entities.PropostaStatusEnviada)
}

func (u *PropostaUseCase) Aprovar(ctx context.Context, id string) (entities.Proposta, error) {
	return u.transition(ctx, id, entities.PropostaStatusEnviada, entities.PropostaStatusAprovada)
}

func (u *PropostaUseCase) Rejeitar(ctx context.Context, id string) (entities.Proposta, error) {
	return u.transition(ctx, id, entities.PropostaStatusEnviada, entities.PropostaStatusRejeitada)
}

func (u *PropostaUseCase) transition(ctx context.Context, id string, from, to entities.PropostaStatus) (entities.Proposta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposta{}, ErrPropostaIDInvalido
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposta{}, err
	}
	if p.ID == "" {
		return entities.Proposta{}, ErrPropostaNaoEncontrada
	}
	if p.Status != from {
		return entities.Proposta{}, ErrTransicaoStatusInvalida
	}

	updated, err := u.repo.UpdateStatus(ctx, id, to)
	if err != nil {
		return entities.Proposta{}, err
	}
	if updated.ID == "" {
		return entities.Proposta{}, ErrPropostaNaoEncontrada
	}
	return updated, nil
}

// CriarPagamento collects the down payment of an approved proposal through
// the configured gateway. The effective proposal total is the source of truth
// for the charged amount.
func (u *PropostaUseCase) CriarPagamento(ctx context.Context, propostaID string, payload json.RawMessage) (entities.PropostaPagamento, error) {
	log.Printf("[pagamento][usecase] create start proposta_id=%q payload_len=%d", propostaID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	propostaID = strings.TrimSpace(propostaID)
	if propostaID == "" {
		return entities.PropostaPagamento{}, ErrPropostaIDInvalido
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[pagamento][usecase] invalid payload proposta_id=%s", propostaID)
			return entities.PropostaPagamento{}, ErrPagamentoPayloadInvalido
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[pagamento][usecase] gateway not configured proposta_id=%s", propostaID)
		return entities.PropostaPagamento{}, ErrGatewayNaoConfigurado
	}

	p, err := u.repo.GetByID(ctx, propostaID)
	if err != nil {
		return entities.PropostaPagamento{}, err
	}
	if p.ID == "" {
		return entities.PropostaPagamento{}, ErrPropostaNaoEncontrada
	}
	if p.Status != entities.PropostaStatusAprovada {
		log.Printf("[pagamento][usecase] proposta not approved proposta_id=%s status=%s", propostaID, p.Status)
		return entities.PropostaPagamento{}, ErrPropostaNaoAprovada
	}

	// Mercado Pago uses external_reference to help reconcile events; the
	// charged amount always comes from the stored proposal.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = propostaID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Proposta %s", propostaID)
		}
		reqMap["transaction_amount"] = float64(p.TotalFinal) / 100
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[pagamento][usecase] gateway failed proposta_id=%s err=%v", propostaID, err)
		if isGatewayUnauthorized(err) {
			return entities.PropostaPagamento{}, ErrGatewayNaoAutorizado
		}
		if isGatewayBadRequest(err) {
			return entities.PropostaPagamento{}, ErrGatewayRequisicaoInvalida
		}
		return entities.PropostaPagamento{}, err
	}
	log.Printf("[pagamento][usecase] gateway success proposta_id=%s provider_payment_id=%s provider_status=%s", propostaID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[pagamento][usecase] provider response unmarshal failed proposta_id=%s err=%v", propostaID, err)
	}

	pagamento := entities.PropostaPagamento{
		ID:                 providerPaymentID,
		PropostaID:         propostaID,
		Date:               time.Now().UTC(),
		Status:             mapProviderStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.pagamentos.Create(ctx, pagamento)
	if err != nil {
		log.Printf("[pagamento][usecase] repository create failed proposta_id=%s payment_id=%s err=%v", propostaID, pagamento.ID, err)
		return entities.PropostaPagamento{}, err
	}
	log.Printf("[pagamento][usecase] create success proposta_id=%s payment_id=%s status=%s", propostaID, created.ID, created.Status)
	return created, nil
}

func (u *PropostaUseCase) ListarPagamentos(ctx context.Context, propostaID string) ([]entities.PropostaPagamento, error) {
	propostaID = strings.TrimSpace(propostaID)
	if propostaID == "" {
		return nil, ErrPropostaIDInvalido
	}
	return u.pagamentos.ListByPropostaID(ctx, propostaID)
}

func mapProviderStatus(providerStatus string) entities.PagamentoStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PagamentoStatusAprovado
	case "rejected", "cancelled":
		return entities.PagamentoStatusNegado
	default:
		return entities.PagamentoStatusPendente
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
