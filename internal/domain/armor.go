package domain

import "strings"

// --- СВОЙСТВА БРОНИ ---

// Rigidity - сопротивление брони режущему удару.
type Rigidity uint8

const (
	RigidityNone  Rigidity = iota // голое тело, одежда
	RigiditySoft                  // стеганка, кожа
	RigidityRigid                 // кольчуга, бригантина
	RigidityPlate                 // цельные латы
)

// Padding - поглощение дробящего удара.
type Padding uint8

const (
	PaddingNone Padding = iota
	PaddingLight
	PaddingHeavy
)

// Coverage - какая часть тела защищена. Категория, а не вероятность:
// Partial означает "только корпус", Full - все зоны.
type Coverage uint8

const (
	CoveragePartial Coverage = iota
	CoverageFull
)

// ArmorProperties - неизменяемое описание комплекта брони.
type ArmorProperties struct {
	Name     string
	Rigidity Rigidity
	Padding  Padding
	Coverage Coverage
}

// EffectiveAgainst возвращает свойства брони для конкретной зоны тела.
// Partial-комплект прикрывает только корпус; удар в голову, шею или
// конечность идет как по незащищенному.
func (a ArmorProperties) EffectiveAgainst(zone BodyZone) ArmorProperties {
	if a.Coverage == CoverageFull || zone == ZoneTorso {
		return a
	}
	return ArmorProperties{Name: a.Name, Rigidity: RigidityNone, Padding: PaddingNone, Coverage: a.Coverage}
}

// --- ПРЕСЕТЫ ---

func ArmorNone() ArmorProperties {
	return ArmorProperties{Name: "unarmored", Rigidity: RigidityNone, Padding: PaddingNone, Coverage: CoverageFull}
}

func ArmorGambeson() ArmorProperties {
	return ArmorProperties{Name: "gambeson", Rigidity: RigiditySoft, Padding: PaddingHeavy, Coverage: CoverageFull}
}

func ArmorMail() ArmorProperties {
	return ArmorProperties{Name: "mail", Rigidity: RigidityRigid, Padding: PaddingLight, Coverage: CoverageFull}
}

func ArmorBrigandine() ArmorProperties {
	return ArmorProperties{Name: "brigandine", Rigidity: RigidityRigid, Padding: PaddingLight, Coverage: CoveragePartial}
}

func ArmorPlate() ArmorProperties {
	return ArmorProperties{Name: "plate", Rigidity: RigidityPlate, Padding: PaddingHeavy, Coverage: CoverageFull}
}

// --- ПАРСИНГ ---

var rigidityNames = map[string]Rigidity{
	"none":  RigidityNone,
	"soft":  RigiditySoft,
	"rigid": RigidityRigid,
	"plate": RigidityPlate,
}

var paddingNames = map[string]Padding{
	"none":  PaddingNone,
	"light": PaddingLight,
	"heavy": PaddingHeavy,
}

var coverageNames = map[string]Coverage{
	"partial": CoveragePartial,
	"full":    CoverageFull,
}

func ParseRigidity(s string) (Rigidity, bool) {
	v, ok := rigidityNames[strings.ToLower(s)]
	return v, ok
}

func ParsePadding(s string) (Padding, bool) {
	v, ok := paddingNames[strings.ToLower(s)]
	return v, ok
}

func ParseCoverage(s string) (Coverage, bool) {
	v, ok := coverageNames[strings.ToLower(s)]
	return v, ok
}

func (r Rigidity) String() string {
	switch r {
	case RigidityNone:
		return "none"
	case RigiditySoft:
		return "soft"
	case RigidityRigid:
		return "rigid"
	case RigidityPlate:
		return "plate"
	default:
		return "unknown"
	}
}

func (p Padding) String() string {
	switch p {
	case PaddingNone:
		return "none"
	case PaddingLight:
		return "light"
	case PaddingHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

func (c Coverage) String() string {
	switch c {
	case CoveragePartial:
		return "partial"
	case CoverageFull:
		return "full"
	default:
		return "unknown"
	}
}
