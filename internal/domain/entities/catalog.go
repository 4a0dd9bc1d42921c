package entities

import (
	"strconv"
	"strings"
	"time"
)

// Reference tables consumed by the proposal calculator. All monetary values
// are integer cents.

// TipoTelhado enumerates the supported roof types, each with its own base
// price inside a Potencia tier.
type TipoTelhado string

const (
	TipoTelhadoCeramica     TipoTelhado = "ceramica"
	TipoTelhadoFibrocimento TipoTelhado = "fibrocimento"
	TipoTelhadoLaje         TipoTelhado = "laje"
	TipoTelhadoSolo         TipoTelhado = "solo"
	TipoTelhadoMetalico     TipoTelhado = "metalico"
)

func (t TipoTelhado) Valid() bool {
	switch t {
	case TipoTelhadoCeramica, TipoTelhadoFibrocimento, TipoTelhadoLaje, TipoTelhadoSolo, TipoTelhadoMetalico:
		return true
	}
	return false
}

// Potencia is a photovoltaic power tier with per-roof-type base pricing.
//
// Storage model (DynamoDB):
//   - PK: id
type Potencia struct {
	ID                    string    `json:"id"`
	Potencia              string    `json:"potencia"` // label, e.g. "5.94 kWp"
	MaterialAC            int64     `json:"material_ac"`
	DescricaoEquipamentos string    `json:"descricao_equipamentos"`
	PrecoCeramica         int64     `json:"preco_ceramica"`
	PrecoFibrocimento     int64     `json:"preco_fibrocimento"`
	PrecoLaje             int64     `json:"preco_laje"`
	PrecoSolo             int64     `json:"preco_solo"`
	PrecoMetalico         int64     `json:"preco_metalico"`
	EstimativaGeracao     int64     `json:"estimativa_geracao"` // kWh/month
	ValorEconomia         int64     `json:"valor_economia"`     // cents/month
	Ativo                 bool      `json:"ativo"`
	CreatedAt             time.Time `json:"created_at"`
}

// PrecoTelhado resolves the tier base price for a roof type.
func (p Potencia) PrecoTelhado(t TipoTelhado) (int64, bool) {
	switch t {
	case TipoTelhadoCeramica:
		return p.PrecoCeramica, true
	case TipoTelhadoFibrocimento:
		return p.PrecoFibrocimento, true
	case TipoTelhadoLaje:
		return p.PrecoLaje, true
	case TipoTelhadoSolo:
		return p.PrecoSolo, true
	case TipoTelhadoMetalico:
		return p.PrecoMetalico, true
	}
	return 0, false
}

// Kwp parses the numeric power out of the tier label ("5.94 kWp" -> 5.94).
// A decimal comma is accepted. Returns false for labels without a positive
// leading number.
func (p Potencia) Kwp() (float64, bool) {
	fields := strings.Fields(strings.TrimSpace(p.Potencia))
	if len(fields) == 0 {
		return 0, false
	}
	raw := strings.ReplaceAll(fields[0], ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// Cidade carries the per-day travel surcharge for installations.
type Cidade struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	CustoExtraDia int64     `json:"custo_extra_dia"`
	Ativo         bool      `json:"ativo"`
	CreatedAt     time.Time `json:"created_at"`
}

// Margem is a sales margin tier. Percentual is stored in basis points
// (percent x 100, e.g. 1500 = 15%).
type Margem struct {
	ID         string    `json:"id"`
	Descricao  string    `json:"descricao"`
	Percentual int64     `json:"percentual"`
	Ativo      bool      `json:"ativo"`
	CreatedAt  time.Time `json:"created_at"`
}

// CondicaoPagamento is a payment-terms option referenced by proposals.
type CondicaoPagamento struct {
	ID        string    `json:"id"`
	Condicao  string    `json:"condicao"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
}
