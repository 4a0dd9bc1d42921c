package request

import (
	"time"

	"github.com/henriquewc/sistema-atividades/internal/usecase"
)

// CreatePropostaRequest carries the payload of POST /api/propostas. The
// pricing chain is derived server-side from the referenced catalog entries;
// valor_final_personalizado (cents) overrides the computed total when set.
type CreatePropostaRequest struct {
	NomeCliente     string `json:"nome_cliente" binding:"required"`
	EmailCliente    string `json:"email_cliente" binding:"required,email"`
	TelefoneCliente string `json:"telefone_cliente" binding:"required"`
	TitularCliente  string `json:"titular_cliente" binding:"required"`
	NumeroContrato  string `json:"numero_contrato" binding:"required"`
	EnderecoCliente string `json:"endereco_cliente"`

	PotenciaID          string `json:"potencia_id" binding:"required"`
	TipoTelhado         string `json:"tipo_telhado" binding:"required"`
	DiasInstalacao      int    `json:"dias_instalacao" binding:"required"`
	CidadeID            string `json:"cidade_id" binding:"required"`
	MargemID            string `json:"margem_id" binding:"required"`
	CondicaoPagamentoID string `json:"condicao_pagamento_id" binding:"required"`

	ValorFinalPersonalizado *int64     `json:"valor_final_personalizado"`
	DataVistoria            *time.Time `json:"data_vistoria"`
	ObservacoesTecnicas     string     `json:"observacoes_tecnicas"`
}

func (r CreatePropostaRequest) ToInput() usecase.CreatePropostaInput {
	return usecase.CreatePropostaInput{
		NomeCliente:             r.NomeCliente,
		EmailCliente:            r.EmailCliente,
		TelefoneCliente:         r.TelefoneCliente,
		TitularCliente:          r.TitularCliente,
		NumeroContrato:          r.NumeroContrato,
		EnderecoCliente:         r.EnderecoCliente,
		PotenciaID:              r.PotenciaID,
		TipoTelhado:             r.TipoTelhado,
		DiasInstalacao:          r.DiasInstalacao,
		CidadeID:                r.CidadeID,
		MargemID:                r.MargemID,
		CondicaoPagamentoID:     r.CondicaoPagamentoID,
		ValorFinalPersonalizado: r.ValorFinalPersonalizado,
		DataVistoria:            r.DataVistoria,
		ObservacoesTecnicas:     r.ObservacoesTecnicas,
	}
}
