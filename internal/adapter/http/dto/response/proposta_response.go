package response

import (
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/pkg"
)

// PropostaResponse exposes the full pricing chain in cents plus display
// strings in BRL, so frontends never reimplement currency formatting.
type PropostaResponse struct {
	ID string `json:"id"`

	NomeCliente     string `json:"nome_cliente"`
	EmailCliente    string `json:"email_cliente"`
	TelefoneCliente string `json:"telefone_cliente"`
	TitularCliente  string `json:"titular_cliente"`
	NumeroContrato  string `json:"numero_contrato"`
	EnderecoCliente string `json:"endereco_cliente,omitempty"`

	PotenciaID     string `json:"potencia_id"`
	TipoTelhado    string `json:"tipo_telhado"`
	DiasInstalacao int    `json:"dias_instalacao"`

	CidadeID            string `json:"cidade_id"`
	MargemID            string `json:"margem_id"`
	CondicaoPagamentoID string `json:"condicao_pagamento_id"`

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
	MargemRealObtida        int64  `json:"margem_real_obtida"`
	ValorPorWp              int64  `json:"valor_por_wp"`

	TotalFinalFormatado       string `json:"total_final_formatado"`
	MargemRealObtidaFormatada string `json:"margem_real_obtida_formatada"`

	DataVistoria        *time.Time `json:"data_vistoria,omitempty"`
	ObservacoesTecnicas string     `json:"observacoes_tecnicas,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProposta(p entities.Proposta) PropostaResponse {
	return PropostaResponse{
		ID:                        p.ID,
		NomeCliente:               p.NomeCliente,
		EmailCliente:              p.EmailCliente,
		TelefoneCliente:           p.TelefoneCliente,
		TitularCliente:            p.TitularCliente,
		NumeroContrato:            p.NumeroContrato,
		EnderecoCliente:           p.EnderecoCliente,
		PotenciaID:                p.PotenciaID,
		TipoTelhado:               string(p.TipoTelhado),
		DiasInstalacao:            p.DiasInstalacao,
		CidadeID:                  p.CidadeID,
		MargemID:                  p.MargemID,
		CondicaoPagamentoID:       p.CondicaoPagamentoID,
		ValorSistema:              p.ValorSistema,
		MaterialAC:                p.MaterialAC,
		MaoObra:                   p.MaoObra,
		Deslocamento:              p.Deslocamento,
		ValorProjeto:              p.ValorProjeto,
		Subtotal:                  p.Subtotal,
		ValorMargem:               p.ValorMargem,
		TotalSemImposto:           p.TotalSemImposto,
		ValorImposto:              p.ValorImposto,
		TotalFinal:                p.TotalFinal,
		ValorFinalPersonalizado:   p.ValorFinalPersonalizado,
		MargemRealObtida:          p.MargemRealObtida,
		ValorPorWp:                p.ValorPorWp,
		TotalFinalFormatado:       pkg.FormatCurrency(p.TotalFinal),
		MargemRealObtidaFormatada: pkg.FormatPercentual(p.MargemRealObtida),
		DataVistoria:              p.DataVistoria,
		ObservacoesTecnicas:       p.ObservacoesTecnicas,
		Status:                    string(p.Status),
		CreatedAt:                 p.CreatedAt,
	}
}

func FromPropostas(ps []entities.Proposta) []PropostaResponse {
	out := make([]PropostaResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposta(p))
	}
	return out
}
