package entities

import (
	"encoding/json"
	"time"
)

// PropostaStatus represents the lifecycle of a commercial proposal.
type PropostaStatus string

const (
	PropostaStatusRascunho  PropostaStatus = "rascunho"
	PropostaStatusEnviada   PropostaStatus = "enviada"
	PropostaStatusAprovada  PropostaStatus = "aprovada"
	PropostaStatusRejeitada PropostaStatus = "rejeitada"
)

// Proposta is a priced solar-installation quote.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation: every derived field is integer cents and the whole
// derivation chain is persisted for audit. TotalFinal is the effective total
// (the manual override when one was supplied); ValorFinalPersonalizado keeps
// the override itself so the computed chain remains reproducible.
type Proposta struct {
	ID string `json:"id"`

	// Client contact data (proposals may precede a Client record).
	NomeCliente     string `json:"nome_cliente"`
	EmailCliente    string `json:"email_cliente"`
	TelefoneCliente string `json:"telefone_cliente"`
	TitularCliente  string `json:"titular_cliente"`
	NumeroContrato  string `json:"numero_contrato"`
	EnderecoCliente string `json:"endereco_cliente,omitempty"`

	// Photovoltaic system selection.
	PotenciaID     string      `json:"potencia_id"`
	TipoTelhado    TipoTelhado `json:"tipo_telhado"`
	DiasInstalacao int         `json:"dias_instalacao"`

	// Location and commercial references.
	CidadeID            string `json:"cidade_id"`
	MargemID            string `json:"margem_id"`
	CondicaoPagamentoID string `json:"condicao_pagamento_id"`

	// Audited derivation chain, in cents.
	ValorSistema    int64 `json:"valor_sistema"`
	MaterialAC      int64 `json:"material_ac"`
	MaoObra         int64 `json:"mao_obra"`
	Deslocamento    int64 `json:"deslocamento"`
	ValorProjeto    int64 `json:"valor_projeto"`
	Subtotal        int64 `json:"subtotal"`
	ValorMargem     int64 `json:"valor_margem"`
	TotalSemImposto int64 `json:"total_sem_imposto"`
	ValorImposto    int64 `json:"valor_imposto"`
	TotalFinal      int64 `json:"total_final"`

	ValorFinalPersonalizado *int64 `json:"valor_final_personalizado,omitempty"`
	MargemRealObtida        int64  `json:"margem_real_obtida"` // basis points
	ValorPorWp              int64  `json:"valor_por_wp"`

	// Optional technical survey.
	DataVistoria        *time.Time `json:"data_vistoria,omitempty"`
	ObservacoesTecnicas string     `json:"observacoes_tecnicas,omitempty"`

	Status    PropostaStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// PagamentoStatus represents the down-payment processing outcome.
type PagamentoStatus string

const (
	PagamentoStatusPendente PagamentoStatus = "pendente"
	PagamentoStatusAprovado PagamentoStatus = "aprovado"
	PagamentoStatusNegado   PagamentoStatus = "negado"
)

// PropostaPagamento is the down payment (sinal) collected for an approved
// proposal through the payment provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposta_id-index): proposta_id
//
// The provider payload is kept both raw and parsed for traceability.
type PropostaPagamento struct {
	ID         string          `json:"id"`
	PropostaID string          `json:"proposta_id"`
	Date       time.Time       `json:"date"`
	Status     PagamentoStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
