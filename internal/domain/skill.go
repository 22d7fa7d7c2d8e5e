package domain

import "strings"

// SkillLevel - решетка умений бойца. Четыре ступени, полный порядок.
// Умение НЕ дает числовых бонусов - оно открывает доступ к приемам.
// Ветеран не бьет сильнее новичка, он умеет то, чего новичок не умеет.
type SkillLevel uint8

const (
	SkillNovice SkillLevel = iota
	SkillTrained
	SkillVeteran
	SkillMaster
)

// CanAttemptRiposte - контратака сразу после успешной защиты.
func (s SkillLevel) CanAttemptRiposte() bool {
	return s >= SkillVeteran
}

// CanTargetSpecificZone - прицельный удар в выбранную зону тела.
// Новичок бьет "куда-то в противника", то есть в корпус.
func (s SkillLevel) CanTargetSpecificZone() bool {
	return s >= SkillTrained
}

// CanFeint - финт, обманное движение, вскрывающее глухую защиту.
func (s SkillLevel) CanFeint() bool {
	return s == SkillMaster
}

// CanDisarm - обезоруживание.
func (s SkillLevel) CanDisarm() bool {
	return s >= SkillVeteran
}

var skillNames = map[string]SkillLevel{
	"novice":  SkillNovice,
	"trained": SkillTrained,
	"veteran": SkillVeteran,
	"master":  SkillMaster,
}

func ParseSkill(s string) (SkillLevel, bool) {
	v, ok := skillNames[strings.ToLower(s)]
	return v, ok
}

func (s SkillLevel) String() string {
	switch s {
	case SkillNovice:
		return "novice"
	case SkillTrained:
		return "trained"
	case SkillVeteran:
		return "veteran"
	case SkillMaster:
		return "master"
	default:
		return "unknown"
	}
}
