package systems

import "github.com/Astreocclu/arc-citadel-sub002/internal/domain"

// --- КЛАССИФИКАТОР РАН ---

// PenetrationSeverity отображает исход режущей оси в тяжесть раны.
func PenetrationSeverity(p domain.PenetrationResult) domain.WoundSeverity {
	switch p {
	case domain.PenetrationGraze:
		return domain.SeverityMinor
	case domain.PenetrationCut:
		return domain.SeveritySerious
	case domain.PenetrationDeepCut:
		return domain.SeverityCritical
	default:
		// NoAttempt, Deflect и любые незнакомые значения ран не дают.
		return domain.SeverityNone
	}
}

// TraumaSeverity отображает исход дробящей оси в тяжесть раны.
func TraumaSeverity(t domain.TraumaResult) domain.WoundSeverity {
	switch t {
	case domain.TraumaStun:
		return domain.SeverityMinor
	case domain.TraumaInjury:
		return domain.SeveritySerious
	default:
		// Negligible, Fatigue и незнакомые значения - не раны.
		return domain.SeverityNone
	}
}

// CombineResults сводит обе оси и зону попадания в одну рану.
// Тяжесть - максимум по осям. Кровотечение дает только состоявшийся
// рез (Cut/DeepCut), дробящая ось на него не влияет. Летальность -
// сравнение тяжести с порогом зоны.
//
// Функция выносит суждение и ничего не мутирует: убивать или не
// убивать - решение боевого слоя поверх этого результата.
func CombineResults(pen domain.PenetrationResult, trauma domain.TraumaResult, zone domain.BodyZone) domain.WoundResult {
	severity := PenetrationSeverity(pen)
	if ts := TraumaSeverity(trauma); ts > severity {
		severity = ts
	}

	bleeding := pen == domain.PenetrationCut || pen == domain.PenetrationDeepCut

	return domain.WoundResult{
		Severity: severity,
		Bleeding: bleeding,
		Lethal:   severity >= zone.FatalityThreshold(),
	}
}
