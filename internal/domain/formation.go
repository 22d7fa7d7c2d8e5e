package domain

import "sort"

// --- ФОРМАЦИЯ ---
//
// Давление - агрегат тактического положения группы: скаляр в [-1, 1].
// Отрицательное давление - формацию теснят, положительное - она
// доминирует. Категорию читает внешний AI-слой, решая об отступлении.

// PressureCategory - дискретная оценка давления.
type PressureCategory uint8

const (
	PressureCollapsing PressureCategory = iota
	PressureStrained
	PressureNeutral
	PressureSteady
	PressureDominant
)

func (p PressureCategory) String() string {
	switch p {
	case PressureCollapsing:
		return "collapsing"
	case PressureStrained:
		return "strained"
	case PressureNeutral:
		return "neutral"
	case PressureSteady:
		return "steady"
	case PressureDominant:
		return "dominant"
	default:
		return "unknown"
	}
}

// FormationState - состояние одной формации.
type FormationState struct {
	ID       string              `json:"id"`
	Members  map[string]struct{} `json:"-"`
	Pressure float64             `json:"pressure"`
}

// NewFormationState создает формацию с нулевым давлением.
func NewFormationState(id string, memberIDs []string) *FormationState {
	members := make(map[string]struct{}, len(memberIDs))
	for _, m := range memberIDs {
		members[m] = struct{}{}
	}
	return &FormationState{
		ID:       id,
		Members:  members,
		Pressure: 0,
	}
}

// AddMember регистрирует бойца в формации.
func (f *FormationState) AddMember(id string) {
	f.Members[id] = struct{}{}
}

// RemoveMember исключает бойца (смерть, бегство).
func (f *FormationState) RemoveMember(id string) {
	delete(f.Members, id)
}

// MemberIDs возвращает участников в стабильном порядке.
// Сортировка обязательна: от нее зависит воспроизводимость тика.
func (f *FormationState) MemberIDs() []string {
	ids := make([]string, 0, len(f.Members))
	for id := range f.Members {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ApplyPressureDelta сдвигает давление с зажимом в [-1, 1].
func (f *FormationState) ApplyPressureDelta(delta float64) {
	f.Pressure += delta
	if f.Pressure > 1.0 {
		f.Pressure = 1.0
	}
	if f.Pressure < -1.0 {
		f.Pressure = -1.0
	}
}

// PressureCategory раскладывает давление по корзинам.
// Границы: <= -0.5 Collapsing, >= 0.5 Dominant, узкая полоса вокруг
// нуля - Neutral.
func (f *FormationState) PressureCategory() PressureCategory {
	p := f.Pressure
	switch {
	case p <= -0.5:
		return PressureCollapsing
	case p < -0.1:
		return PressureStrained
	case p <= 0.1:
		return PressureNeutral
	case p < 0.5:
		return PressureSteady
	default:
		return PressureDominant
	}
}
