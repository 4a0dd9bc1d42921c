package entities

import (
	"testing"
	"time"
)

func TestCalculateStatus(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	due := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name     string
		activity Activity
		want     ActivityStatus
	}{
		{"overdue", Activity{DataVencimento: due(2025, 1, 9)}, ActivityStatusAtrasada},
		{"due tomorrow", Activity{DataVencimento: due(2025, 1, 11)}, ActivityStatusVencimentoProximo},
		{"due in three days", Activity{DataVencimento: due(2025, 1, 13)}, ActivityStatusVencimentoProximo},
		{"due far ahead", Activity{DataVencimento: due(2025, 1, 20)}, ActivityStatusEmDia},
		{"due same instant", Activity{DataVencimento: now}, ActivityStatusVencimentoProximo},
		{"completed overrides due date", Activity{DataVencimento: due(2025, 1, 1), Concluida: true}, ActivityStatusConcluida},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.activity.CalculateStatus(now); got != c.want {
				t.Fatalf("CalculateStatus = %s, want %s", got, c.want)
			}
		})
	}
}

func TestCalculateStatusPartialDayRoundsUp(t *testing.T) {
	now := time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC)

	// One hour before the deadline still counts as due today, not overdue.
	a := Activity{DataVencimento: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)}
	if got := a.CalculateStatus(now); got != ActivityStatusVencimentoProximo {
		t.Fatalf("CalculateStatus = %s, want %s", got, ActivityStatusVencimentoProximo)
	}
}

func TestTipoServicoValid(t *testing.T) {
	for _, tipo := range []TipoServico{TipoServicoGeracao, TipoServicoMonitoramento, TipoServicoEnvioDados} {
		if !tipo.Valid() {
			t.Fatalf("expected %s to be valid", tipo)
		}
	}
	if TipoServico("Outro").Valid() {
		t.Fatal("expected unknown service type to be invalid")
	}
}

func TestTipoRecorrenciaValid(t *testing.T) {
	if !TipoRecorrenciaMensal.Valid() || !TipoRecorrenciaAnual.Valid() {
		t.Fatal("expected known recurrence types to be valid")
	}
	if TipoRecorrencia("Semanal").Valid() {
		t.Fatal("expected unknown recurrence type to be invalid")
	}
}
