package systems

import (
	"github.com/Astreocclu/arc-citadel-sub002/internal/domain"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/logger"

	"github.com/sirupsen/logrus"
)

// --- РАЗРЕШЕНИЕ ОБМЕНА ---

// Maneuver - прием, которым выполняется атака. Легальность приема
// обязан проверить вызывающий слой через предикаты SkillLevel:
// само ядро доверяет запросу и ничего не отклоняет.
type Maneuver uint8

const (
	ManeuverStrike Maneuver = iota // обычный удар
	ManeuverFeint                  // финт: вскрывает глухую защиту (Master)
)

// ExchangeOutcome - как закончился обмен.
type ExchangeOutcome uint8

const (
	// OutcomeNoExchange: стойка атакующего не позволяет атаковать.
	OutcomeNoExchange ExchangeOutcome = iota
	// OutcomeBlocked: защитник в глухой защите погасил атаку.
	OutcomeBlocked
	// OutcomeHit: удар дошел до цели.
	OutcomeHit
)

func (o ExchangeOutcome) String() string {
	switch o {
	case OutcomeNoExchange:
		return "no_exchange"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeHit:
		return "hit"
	default:
		return "unknown"
	}
}

// ExchangeResult - итог одного обмена атакующий/защитник.
// AttackerTrigger и DefenderTrigger - подсказки для автомата стоек:
// сам резолвер стойки не трогает, их применяет тиковый цикл.
type ExchangeResult struct {
	DefenderHit   bool
	DefenderWound *domain.WoundResult
	Outcome       ExchangeOutcome

	AttackerTrigger domain.StanceTrigger
	DefenderTrigger domain.StanceTrigger
}

// ResolveExchange разрешает один обмен. Чистая функция: не мутирует
// ни стойку, ни мораль - возвращает суждение, которым распоряжается
// тиковый цикл. Исходы детерминированы, никакого броска на попадание:
// защита решается стойкой, рана - свойствами оружия и брони.
func ResolveExchange(attacker, defender *domain.Combatant, zone domain.BodyZone, maneuver Maneuver) ExchangeResult {
	log := logger.Log.WithFields(logrus.Fields{
		"component":   "exchange_resolver",
		"attacker_id": attacker.ID,
		"defender_id": defender.ID,
		"zone":        zone.String(),
	})

	// Стойка гейтит саму возможность атаки.
	if !attacker.Stance.CanAttack() {
		log.Debug("No exchange: attacker stance forbids attacking")
		return ExchangeResult{Outcome: OutcomeNoExchange}
	}

	// Глухая защита гасит обычный удар. Финт (легальность проверил
	// вызывающий) проходит сквозь нее.
	if defender.Stance == domain.StanceDefensive && maneuver != ManeuverFeint {
		log.Debug("Exchange blocked by defensive stance")
		return ExchangeResult{
			Outcome:         OutcomeBlocked,
			AttackerTrigger: domain.TriggerAttackBlocked,
			DefenderTrigger: domain.TriggerDefenseSucceeded,
		}
	}

	// Удар дошел: раскладываем по осям против брони на этой зоне.
	effArmor := defender.Armor.EffectiveAgainst(zone)
	pen := ResolvePenetration(attacker.Weapon.Edge, effArmor.Rigidity, attacker.Weapon.HasTag(domain.TagArmorPiercing))
	trauma := ResolveTrauma(attacker.Weapon.Mass, effArmor.Padding)
	wound := CombineResults(pen, trauma, zone)

	log.WithFields(logrus.Fields{
		"penetration": pen.String(),
		"trauma":      trauma.String(),
		"severity":    wound.Severity.String(),
		"lethal":      wound.Lethal,
	}).Debug("Exchange resolved")

	return ExchangeResult{
		DefenderHit:     true,
		DefenderWound:   &wound,
		Outcome:         OutcomeHit,
		AttackerTrigger: domain.TriggerAttackCompleted,
		DefenderTrigger: defenderTrigger(wound, zone),
	}
}

// defenderTrigger подбирает триггер стойки защитника по ране.
func defenderTrigger(w domain.WoundResult, zone domain.BodyZone) domain.StanceTrigger {
	if w.Severity == domain.SeverityCritical {
		switch zone {
		case domain.ZoneHead:
			return domain.TriggerCriticalWoundHead
		case domain.ZoneTorso:
			return domain.TriggerCriticalWoundTorso
		}
	}
	if w.Severity >= domain.SeverityMinor {
		return domain.TriggerTookHit
	}
	// Удар пришелся в броню: стойку не сбивает.
	return domain.TriggerNone
}
