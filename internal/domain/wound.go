package domain

import "strings"

// --- РЕЗУЛЬТАТЫ РАЗРЕШЕНИЯ УДАРА ---
//
// Удар раскладывается на две независимые оси: режущую (Edge против
// Rigidity) и дробящую (Mass против Padding). Итоги обеих осей
// сводятся классификатором в одну рану.

// WoundSeverity - тяжесть раны, полный порядок.
type WoundSeverity uint8

const (
	SeverityNone WoundSeverity = iota
	SeverityMinor
	SeveritySerious
	SeverityCritical
)

// PenetrationResult - исход режущей оси.
type PenetrationResult uint8

const (
	// PenetrationNoAttempt: оружие вообще не режет (Blunt).
	PenetrationNoAttempt PenetrationResult = iota
	// PenetrationDeflect: лезвие встретило броню, которую не берет.
	PenetrationDeflect
	PenetrationGraze
	PenetrationCut
	PenetrationDeepCut
)

// TraumaResult - исход дробящей оси.
type TraumaResult uint8

const (
	// TraumaNegligible: масса полностью поглощена подбоем.
	TraumaNegligible TraumaResult = iota
	// TraumaFatigue: удар вымотал, но не ранил. Латник под градом
	// ударов булавы проигрывает не кровью, а дыханием.
	TraumaFatigue
	TraumaStun
	TraumaInjury
)

// WoundResult - итоговое суждение об одном ударе. Сама по себе рана
// ничего не убивает и не мутирует: что с ней делать, решает боевой слой.
type WoundResult struct {
	Severity WoundSeverity `json:"severity"`
	Bleeding bool          `json:"bleeding"`
	Lethal   bool          `json:"lethal"`
}

var severityNames = map[string]WoundSeverity{
	"none":     SeverityNone,
	"minor":    SeverityMinor,
	"serious":  SeveritySerious,
	"critical": SeverityCritical,
}

func ParseSeverity(s string) (WoundSeverity, bool) {
	v, ok := severityNames[strings.ToLower(s)]
	return v, ok
}

func (s WoundSeverity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityMinor:
		return "minor"
	case SeveritySerious:
		return "serious"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

func (p PenetrationResult) String() string {
	switch p {
	case PenetrationNoAttempt:
		return "no_attempt"
	case PenetrationDeflect:
		return "deflect"
	case PenetrationGraze:
		return "graze"
	case PenetrationCut:
		return "cut"
	case PenetrationDeepCut:
		return "deep_cut"
	default:
		return "unknown"
	}
}

func (t TraumaResult) String() string {
	switch t {
	case TraumaNegligible:
		return "negligible"
	case TraumaFatigue:
		return "fatigue"
	case TraumaStun:
		return "stun"
	case TraumaInjury:
		return "injury"
	default:
		return "unknown"
	}
}
