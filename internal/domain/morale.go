package domain

// --- МОРАЛЬ ---
//
// Стресс копится строго аддитивно: фиксированная добавка за каждое
// событие, никаких множителей и неявных сбросов. Порог один: 1.0.

// StressSource - источник стресса с фиксированной величиной.
type StressSource uint8

const (
	StressCavalryCharge StressSource = iota
	StressOfficerKilled
	StressFlankAttack
	StressAmbushSprung
	StressAlliesBreaking
)

// Amount возвращает фиксированную добавку стресса для источника.
// Неизвестный источник дает 0: новый контент не валит движок.
func (s StressSource) Amount() float64 {
	switch s {
	case StressCavalryCharge:
		return 0.20
	case StressOfficerKilled:
		return 0.30
	case StressFlankAttack:
		return 0.20
	case StressAmbushSprung:
		return 0.25
	case StressAlliesBreaking:
		return 0.10
	default:
		return 0
	}
}

func (s StressSource) String() string {
	switch s {
	case StressCavalryCharge:
		return "cavalry_charge"
	case StressOfficerKilled:
		return "officer_killed"
	case StressFlankAttack:
		return "flank_attack"
	case StressAmbushSprung:
		return "ambush_sprung"
	case StressAlliesBreaking:
		return "allies_breaking"
	default:
		return "unknown"
	}
}

// BreakStatus - итог проверки морали.
type BreakStatus uint8

const (
	MoraleHolding BreakStatus = iota
	MoraleBreaking
)

func (b BreakStatus) String() string {
	if b == MoraleBreaking {
		return "breaking"
	}
	return "holding"
}

// BreakThreshold - порог надлома. Один на всех: трусость и героизм
// различаются источниками стресса, а не порогом.
const BreakThreshold = 1.0

// MoraleState - накопленный стресс одного бойца.
type MoraleState struct {
	AccumulatedStress float64 `json:"accumulatedStress"`
}

// ApplyStress добавляет фиксированную величину источника.
func (m *MoraleState) ApplyStress(source StressSource) {
	m.AccumulatedStress += source.Amount()
}

// CheckBreak сравнивает накопленный стресс с порогом. Сама проверка
// ничего не делает со стойкой: триггер MoraleBreak подает боевой слой,
// когда решит, в каком порядке ломать одновременно дрогнувших бойцов.
func (m *MoraleState) CheckBreak() BreakStatus {
	if m.AccumulatedStress >= BreakThreshold {
		return MoraleBreaking
	}
	return MoraleHolding
}
