package response

import (
	"time"

	"github.com/henriquewc/sistema-atividades/internal/domain/entities"
	"github.com/henriquewc/sistema-atividades/pkg"
)

type PotenciaResponse struct {
	ID                    string    `json:"id"`
	Potencia              string    `json:"potencia"`
	MaterialAC            int64     `json:"material_ac"`
	DescricaoEquipamentos string    `json:"descricao_equipamentos"`
	PrecoCeramica         int64     `json:"preco_ceramica"`
	PrecoFibrocimento     int64     `json:"preco_fibrocimento"`
	PrecoLaje             int64     `json:"preco_laje"`
	PrecoSolo             int64     `json:"preco_solo"`
	PrecoMetalico         int64     `json:"preco_metalico"`
	EstimativaGeracao     int64     `json:"estimativa_geracao"`
	ValorEconomia         int64     `json:"valor_economia"`
	Ativo                 bool      `json:"ativo"`
	CreatedAt             time.Time `json:"created_at"`
}

func FromPotencia(p entities.Potencia) PotenciaResponse {
	return PotenciaResponse{
		ID:                    p.ID,
		Potencia:              p.Potencia,
		MaterialAC:            p.MaterialAC,
		DescricaoEquipamentos: p.DescricaoEquipamentos,
		PrecoCeramica:         p.PrecoCeramica,
		PrecoFibrocimento:     p.PrecoFibrocimento,
		PrecoLaje:             p.PrecoLaje,
		PrecoSolo:             p.PrecoSolo,
		PrecoMetalico:         p.PrecoMetalico,
		EstimativaGeracao:     p.EstimativaGeracao,
		ValorEconomia:         p.ValorEconomia,
		Ativo:                 p.Ativo,
		CreatedAt:             p.CreatedAt,
	}
}

func FromPotencias(ps []entities.Potencia) []PotenciaResponse {
	out := make([]PotenciaResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPotencia(p))
	}
	return out
}

type CidadeResponse struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	CustoExtraDia int64     `json:"custo_extra_dia"`
	Ativo         bool      `json:"ativo"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromCidade(c entities.Cidade) CidadeResponse {
	return CidadeResponse{
		ID:            c.ID,
		Nome:          c.Nome,
		CustoExtraDia: c.CustoExtraDia,
		Ativo:         c.Ativo,
		CreatedAt:     c.CreatedAt,
	}
}

func FromCidades(cs []entities.Cidade) []CidadeResponse {
	out := make([]CidadeResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCidade(c))
	}
	return out
}

type MargemResponse struct {
	ID                  string    `json:"id"`
	Descricao           string    `json:"descricao"`
	Percentual          int64     `json:"percentual"`
	PercentualFormatado string    `json:"percentual_formatado"`
	Ativo               bool      `json:"ativo"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromMargem(m entities.Margem) MargemResponse {
	return MargemResponse{
		ID:                  m.ID,
		Descricao:           m.Descricao,
		Percentual:          m.Percentual,
		PercentualFormatado: pkg.FormatPercentual(m.Percentual),
		Ativo:               m.Ativo,
		CreatedAt:           m.CreatedAt,
	}
}

func FromMargens(ms []entities.Margem) []MargemResponse {
	out := make([]MargemResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMargem(m))
	}
	return out
}

type CondicaoPagamentoResponse struct {
	ID        string    `json:"id"`
	Condicao  string    `json:"condicao"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCondicaoPagamento(c entities.CondicaoPagamento) CondicaoPagamentoResponse {
	return CondicaoPagamentoResponse{
		ID:        c.ID,
		Condicao:  c.Condicao,
		Ativo:     c.Ativo,
		CreatedAt: c.CreatedAt,
	}
}

func FromCondicoesPagamento(cs []entities.CondicaoPagamento) []CondicaoPagamentoResponse {
	out := make([]CondicaoPagamentoResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCondicaoPagamento(c))
	}
	return out
}
