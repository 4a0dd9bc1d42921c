// Package pricing computes the full price breakdown of a solar-installation
// proposal. All arithmetic happens in integer cents; percentages arrive in
// basis points (percent x 100) so the chain is reproducible without
// floating-point drift.
package pricing

import (
	"errors"
	"math"
)

var (
	// ErrPotenciaInvalida rejects a non-positive system power, which would
	// otherwise turn valor-por-Wp into a division by zero.
	ErrPotenciaInvalida = errors.New("potencia em kWp deve ser maior que zero")
	// ErrValorNegativo rejects negative monetary inputs.
	ErrValorNegativo = errors.New("valores monetarios nao podem ser negativos")
)

// Input carries every external component of the derivation. MaoObra,
// Deslocamento and ValorProjeto are independent business inputs: the per-day
// split between labor and travel is configuration, not a formula.
type Input struct {
	ValorSistema int64 // tier price for the selected roof type
	MaterialAC   int64
	MaoObra      int64
	Deslocamento int64
	ValorProjeto int64

	MargemPercentual int64 // basis points
	AliquotaImposto  int64 // basis points, applied to the pre-tax total

	// ValorFinalPersonalizado, when set, replaces the computed total for
	// display/contract purposes; the computed chain is still returned.
	ValorFinalPersonalizado *int64

	PotenciaKwp float64
}

// Breakdown retains every intermediate value of the chain for audit.
type Breakdown struct {
	ValorSistema    int64
	MaterialAC      int64
	MaoObra         int64
	Deslocamento    int64
	ValorProjeto    int64
	Subtotal        int64
	ValorMargem     int64
	TotalSemImposto int64
	ValorImposto    int64
	TotalFinal      int64

	// MargemRealObtida is the margin in basis points implied by the effective
	// total; it equals MargemPercentual unless a manual override was applied.
	MargemRealObtida int64
	ValorPorWp       int64
}

// Calculate runs the fixed derivation order:
// system + AC material + labor + travel + project = subtotal; margin over the
// subtotal; tax over the pre-tax total; optional manual final value.
func Calculate(in Input) (Breakdown, error) {
	if in.PotenciaKwp <= 0 {
		return Breakdown{}, ErrPotenciaInvalida
	}
	for _, v := range []int64{in.ValorSistema, in.MaterialAC, in.MaoObra, in.Deslocamento, in.ValorProjeto, in.MargemPercentual, in.AliquotaImposto} {
		if v < 0 {
			return Breakdown{}, ErrValorNegativo
		}
	}

	subtotal := in.ValorSistema + in.MaterialAC + in.MaoObra + in.Deslocamento + in.ValorProjeto
	valorMargem := roundBasisPoints(subtotal, in.MargemPercentual)
	totalSemImposto := subtotal + valorMargem
	valorImposto := roundBasisPoints(totalSemImposto, in.AliquotaImposto)

	totalFinal := totalSemImposto + valorImposto
	margemReal := in.MargemPercentual
	if in.ValorFinalPersonalizado != nil {
		totalFinal = *in.ValorFinalPersonalizado
		if subtotal > 0 {
			margemReal = int64(math.Round(float64(totalFinal-valorImposto-subtotal) * 10000 / float64(subtotal)))
		}
	}

	valorPorWp := int64(math.Round(float64(totalFinal) / (in.PotenciaKwp * 1000)))

	return Breakdown{
		ValorSistema:     in.ValorSistema,
		MaterialAC:       in.MaterialAC,
		MaoObra:          in.MaoObra,
		Deslocamento:     in.Deslocamento,
		ValorProjeto:     in.ValorProjeto,
		Subtotal:         subtotal,
		ValorMargem:      valorMargem,
		TotalSemImposto:  totalSemImposto,
		ValorImposto:     valorImposto,
		TotalFinal:       totalFinal,
		MargemRealObtida: margemReal,
		ValorPorWp:       valorPorWp,
	}, nil
}

// roundBasisPoints applies a basis-point percentage to a cent value, rounding
// half up to the nearest cent. Inputs are validated non-negative.
func roundBasisPoints(value, bp int64) int64 {
	return (value*bp + 5000) / 10000
}
