package request

import "github.com/henriquewc/sistema-atividades/internal/usecase"

// Reference-table payloads. All monetary fields are integer cents and margin
// percentages are basis points (1500 = 15%).

type CreatePotenciaRequest struct {
	Potencia              string `json:"potencia" binding:"required"`
	MaterialAC            int64  `json:"material_ac" binding:"required"`
	DescricaoEquipamentos string `json:"descricao_equipamentos" binding:"required"`
	PrecoCeramica         int64  `json:"preco_ceramica" binding:"required"`
	PrecoFibrocimento     int64  `json:"preco_fibrocimento" binding:"required"`
	PrecoLaje             int64  `json:"preco_laje" binding:"required"`
	PrecoSolo             int64  `json:"preco_solo" binding:"required"`
	PrecoMetalico         int64  `json:"preco_metalico" binding:"required"`
	EstimativaGeracao     int64  `json:"estimativa_geracao"`
	ValorEconomia         int64  `json:"valor_economia"`
}

func (r CreatePotenciaRequest) ToInput() usecase.CreatePotenciaInput {
	return usecase.CreatePotenciaInput{
		Potencia:              r.Potencia,
		MaterialAC:            r.MaterialAC,
		DescricaoEquipamentos: r.DescricaoEquipamentos,
		PrecoCeramica:         r.PrecoCeramica,
		PrecoFibrocimento:     r.PrecoFibrocimento,
		PrecoLaje:             r.PrecoLaje,
		PrecoSolo:             r.PrecoSolo,
		PrecoMetalico:         r.PrecoMetalico,
		EstimativaGeracao:     r.EstimativaGeracao,
		ValorEconomia:         r.ValorEconomia,
	}
}

type CreateCidadeRequest struct {
	Nome          string `json:"nome" binding:"required"`
	CustoExtraDia int64  `json:"custo_extra_dia"`
}

func (r CreateCidadeRequest) ToInput() usecase.CreateCidadeInput {
	return usecase.CreateCidadeInput{
		Nome:          r.Nome,
		CustoExtraDia: r.CustoExtraDia,
	}
}

type CreateMargemRequest struct {
	Descricao  string `json:"descricao" binding:"required"`
	Percentual int64  `json:"percentual" binding:"required"`
}

func (r CreateMargemRequest) ToInput() usecase.CreateMargemInput {
	return usecase.CreateMargemInput{
		Descricao:  r.Descricao,
		Percentual: r.Percentual,
	}
}

type CreateCondicaoPagamentoRequest struct {
	Condicao string `json:"condicao" binding:"required"`
}

func (r CreateCondicaoPagamentoRequest) ToInput() usecase.CreateCondicaoPagamentoInput {
	return usecase.CreateCondicaoPagamentoInput{Condicao: r.Condicao}
}
