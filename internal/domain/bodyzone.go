package domain

import "strings"

// BodyZone - зона тела, в которую пришелся удар.
type BodyZone uint8

const (
	ZoneHead BodyZone = iota
	ZoneNeck
	ZoneTorso
	ZoneLimb
)

// AllZones перечисляет зоны в фиксированном порядке (для тестов и выбора цели).
var AllZones = []BodyZone{ZoneHead, ZoneNeck, ZoneTorso, ZoneLimb}

// FatalityThreshold возвращает минимальную тяжесть раны, которая
// смертельна для этой зоны. Шея - самая уязвимая: достаточно Serious.
// Для корпуса и конечностей нужен Critical (пробитое легкое,
// перерубленная артерия).
func (z BodyZone) FatalityThreshold() WoundSeverity {
	switch z {
	case ZoneNeck:
		return SeveritySerious
	case ZoneHead, ZoneTorso, ZoneLimb:
		return SeverityCritical
	default:
		// Неизвестная зона из нового контента: считаем максимально
		// живучей, движок не должен упасть.
		return SeverityCritical
	}
}

var zoneNames = map[string]BodyZone{
	"head":  ZoneHead,
	"neck":  ZoneNeck,
	"torso": ZoneTorso,
	"limb":  ZoneLimb,
}

func ParseZone(s string) (BodyZone, bool) {
	v, ok := zoneNames[strings.ToLower(s)]
	return v, ok
}

func (z BodyZone) String() string {
	switch z {
	case ZoneHead:
		return "head"
	case ZoneNeck:
		return "neck"
	case ZoneTorso:
		return "torso"
	case ZoneLimb:
		return "limb"
	default:
		return "unknown"
	}
}
