package entities

import (
	"math"
	"time"
)

// TipoServico enumerates the recurring service kinds handled by the team.
type TipoServico string

const (
	TipoServicoGeracao       TipoServico = "Geração"
	TipoServicoMonitoramento TipoServico = "Monitoramento"
	TipoServicoEnvioDados    TipoServico = "Envio de Dados"
)

func (t TipoServico) Valid() bool {
	switch t {
	case TipoServicoGeracao, TipoServicoMonitoramento, TipoServicoEnvioDados:
		return true
	}
	return false
}

// TipoRecorrencia is the recurrence unit of an activity.
type TipoRecorrencia string

const (
	TipoRecorrenciaMensal TipoRecorrencia = "Mensal"
	TipoRecorrenciaAnual  TipoRecorrencia = "Anual"
)

func (t TipoRecorrencia) Valid() bool {
	return t == TipoRecorrenciaMensal || t == TipoRecorrenciaAnual
}

// ActivityStatus is the display status derived from the due date.
type ActivityStatus string

const (
	ActivityStatusPendente          ActivityStatus = "pendente"
	ActivityStatusEmDia             ActivityStatus = "em_dia"
	ActivityStatusVencimentoProximo ActivityStatus = "vencimento_proximo"
	ActivityStatusAtrasada          ActivityStatus = "atrasada"
	ActivityStatusConcluida         ActivityStatus = "concluida"
)

// Activity is a recurring service task bound to exactly one client.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle: created "pendente"; the stored status is lazily reconciled with
// CalculateStatus on every read; completion is one-way.
type Activity struct {
	ID                   string          `json:"id"`
	Nome                 string          `json:"nome"`
	TipoServico          TipoServico     `json:"tipo_servico"`
	ClienteID            string          `json:"cliente_id"`
	DataVencimento       time.Time       `json:"data_vencimento"`
	Observacoes          string          `json:"observacoes,omitempty"`
	Responsavel          string          `json:"responsavel,omitempty"`
	TipoRecorrencia      TipoRecorrencia `json:"tipo_recorrencia"`
	IntervaloRecorrencia int             `json:"intervalo_recorrencia"`
	Status               ActivityStatus  `json:"status"`
	Concluida            bool            `json:"concluida"`
	DataConclusao        *time.Time      `json:"data_conclusao,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// CalculateStatus derives the display status from the due date at the given
// instant. Completed activities always read "concluida". The day difference
// uses millisecond arithmetic rounded up, so an activity due later today
// counts as zero days away and falls in the "due soon" window together with
// the next three days.
func (a Activity) CalculateStatus(now time.Time) ActivityStatus {
	if a.Concluida {
		return ActivityStatusConcluida
	}

	diffMs := a.DataVencimento.UnixMilli() - now.UnixMilli()
	daysDiff := int64(math.Ceil(float64(diffMs) / float64(24*time.Hour/time.Millisecond)))

	if daysDiff < 0 {
		return ActivityStatusAtrasada
	}
	if daysDiff <= 3 {
		return ActivityStatusVencimentoProximo
	}
	return ActivityStatusEmDia
}
