package domain

import "strings"

// --- СВОЙСТВА ОРУЖИЯ ---
//
// Вся боевая модель построена на категориальных свойствах.
// Никаких числовых бонусов: меч не режет латы не потому, что
// "урон 6 < броня 8", а потому что Sharp не пробивает Plate. Точка.

// Edge - режущая способность оружия, упорядочена по возрастанию.
type Edge uint8

const (
	EdgeBlunt Edge = iota // не режет вообще (булава, дубина)
	EdgeDull              // грубая заточка (топор после боя)
	EdgeSharp             // боевая заточка (меч, копье)
	EdgeRazor             // бритвенная (кинжал, бритва)
)

// Mass - потенциал дробящего удара.
type Mass uint8

const (
	MassLight Mass = iota
	MassMedium
	MassHeavy
)

// Reach - дистанция боя. Само ядро обмена её не потребляет,
// её читает внешняя логика позиционирования.
type Reach uint8

const (
	ReachGrapple Reach = iota
	ReachShort
	ReachMedium
	ReachLong
)

// WeaponTag - специальная пометка оружия ("armor_piercing" и т.п.)
type WeaponTag string

const (
	// TagArmorPiercing: клевцы и граненые острия. При расчете пробития
	// жесткость брони считается на класс ниже.
	TagArmorPiercing WeaponTag = "armor_piercing"
)

// WeaponProperties - неизменяемое описание типа оружия.
type WeaponProperties struct {
	Name    string
	Edge    Edge
	Mass    Mass
	Reach   Reach
	Special []WeaponTag
}

// HasTag проверяет наличие специальной пометки.
func (w WeaponProperties) HasTag(tag WeaponTag) bool {
	for _, t := range w.Special {
		if t == tag {
			return true
		}
	}
	return false
}

// --- ПРЕСЕТЫ ---
// Именованные конструкторы работают как глобальные константы:
// свойства после создания не меняются, поэтому синглтон не нужен.

func WeaponSword() WeaponProperties {
	return WeaponProperties{Name: "sword", Edge: EdgeSharp, Mass: MassMedium, Reach: ReachShort}
}

func WeaponMace() WeaponProperties {
	return WeaponProperties{Name: "mace", Edge: EdgeBlunt, Mass: MassHeavy, Reach: ReachShort}
}

func WeaponDagger() WeaponProperties {
	return WeaponProperties{Name: "dagger", Edge: EdgeRazor, Mass: MassLight, Reach: ReachGrapple}
}

func WeaponSpear() WeaponProperties {
	return WeaponProperties{Name: "spear", Edge: EdgeSharp, Mass: MassLight, Reach: ReachLong}
}

func WeaponPoleaxe() WeaponProperties {
	return WeaponProperties{
		Name: "poleaxe", Edge: EdgeDull, Mass: MassHeavy, Reach: ReachMedium,
		Special: []WeaponTag{TagArmorPiercing},
	}
}

func WeaponWarhammer() WeaponProperties {
	return WeaponProperties{
		Name: "warhammer", Edge: EdgeBlunt, Mass: MassHeavy, Reach: ReachShort,
		Special: []WeaponTag{TagArmorPiercing},
	}
}

// --- ПАРСИНГ (для загрузки контента) ---

var edgeNames = map[string]Edge{
	"blunt": EdgeBlunt,
	"dull":  EdgeDull,
	"sharp": EdgeSharp,
	"razor": EdgeRazor,
}

var massNames = map[string]Mass{
	"light":  MassLight,
	"medium": MassMedium,
	"heavy":  MassHeavy,
}

var reachNames = map[string]Reach{
	"grapple": ReachGrapple,
	"short":   ReachShort,
	"medium":  ReachMedium,
	"long":    ReachLong,
}

// ParseEdge конвертирует строку из контент-файла в Edge.
func ParseEdge(s string) (Edge, bool) {
	v, ok := edgeNames[strings.ToLower(s)]
	return v, ok
}

func ParseMass(s string) (Mass, bool) {
	v, ok := massNames[strings.ToLower(s)]
	return v, ok
}

func ParseReach(s string) (Reach, bool) {
	v, ok := reachNames[strings.ToLower(s)]
	return v, ok
}

func (e Edge) String() string {
	switch e {
	case EdgeBlunt:
		return "blunt"
	case EdgeDull:
		return "dull"
	case EdgeSharp:
		return "sharp"
	case EdgeRazor:
		return "razor"
	default:
		return "unknown"
	}
}

func (m Mass) String() string {
	switch m {
	case MassLight:
		return "light"
	case MassMedium:
		return "medium"
	case MassHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

func (r Reach) String() string {
	switch r {
	case ReachGrapple:
		return "grapple"
	case ReachShort:
		return "short"
	case ReachMedium:
		return "medium"
	case ReachLong:
		return "long"
	default:
		return "unknown"
	}
}
