package domain

// --- БОЕВАЯ СТОЙКА ---
//
// Конечный автомат на пять состояний. Стойка определяет, что боец
// может предпринять и уязвим ли он прямо сейчас. Broken - терминальное
// состояние: из него нет выхода ни по одному триггеру.

// CombatStance - текущая стойка бойца.
type CombatStance uint8

const (
	StanceNeutral    CombatStance = iota // базовая: может и атаковать, и защищаться
	StancePressing                       // атакует, владеет инициативой
	StanceDefensive                      // глухая защита
	StanceRecovering                     // переводит дыхание, уязвим
	StanceBroken                         // выбыл из боя
)

// AllStances перечисляет состояния в фиксированном порядке.
var AllStances = []CombatStance{StanceNeutral, StancePressing, StanceDefensive, StanceRecovering, StanceBroken}

// StanceTrigger - событие, переводящее стойку.
type StanceTrigger uint8

const (
	TriggerNone StanceTrigger = iota

	// Собственные решения бойца
	TriggerInitiateAttack
	TriggerRaiseGuard
	TriggerDropGuard
	TriggerCatchBreath

	// Исходы обмена
	TriggerAttackCompleted
	TriggerAttackBlocked
	TriggerAttackMissed
	TriggerDefenseSucceeded
	TriggerDefenseFailed

	// Усталость и полученные удары
	TriggerTookHit
	TriggerStaggered
	TriggerKnockdown
	TriggerExhausted
	TriggerRecovered

	// Выводящие из строя
	TriggerCriticalWoundHead
	TriggerCriticalWoundTorso
	TriggerMoraleBreak
	TriggerWoundThresholdExceeded
)

// AllTriggers перечисляет триггеры в фиксированном порядке.
var AllTriggers = []StanceTrigger{
	TriggerNone,
	TriggerInitiateAttack, TriggerRaiseGuard, TriggerDropGuard, TriggerCatchBreath,
	TriggerAttackCompleted, TriggerAttackBlocked, TriggerAttackMissed,
	TriggerDefenseSucceeded, TriggerDefenseFailed,
	TriggerTookHit, TriggerStaggered, TriggerKnockdown, TriggerExhausted, TriggerRecovered,
	TriggerCriticalWoundHead, TriggerCriticalWoundTorso, TriggerMoraleBreak, TriggerWoundThresholdExceeded,
}

// ApplyStanceTrigger - тотальная функция перехода. Любая пара
// (состояние, триггер), не описанная таблицей, возвращает состояние
// без изменений. Никогда не паникует: незнакомый триггер из нового
// контента - это no-op, а не падение боя.
func ApplyStanceTrigger(current CombatStance, trigger StanceTrigger) CombatStance {
	// Из Broken выхода нет.
	if current == StanceBroken {
		return StanceBroken
	}

	// Триггеры, действующие из любого состояния.
	switch trigger {
	case TriggerCriticalWoundHead, TriggerCriticalWoundTorso, TriggerMoraleBreak, TriggerWoundThresholdExceeded:
		return StanceBroken
	case TriggerTookHit, TriggerStaggered, TriggerKnockdown, TriggerExhausted, TriggerCatchBreath:
		return StanceRecovering
	}

	// Переходы, зависящие от текущего состояния.
	switch current {
	case StanceNeutral:
		switch trigger {
		case TriggerInitiateAttack:
			return StancePressing
		case TriggerRaiseGuard:
			return StanceDefensive
		}
	case StancePressing:
		switch trigger {
		case TriggerAttackCompleted, TriggerAttackBlocked:
			return StanceNeutral
		case TriggerAttackMissed:
			return StanceRecovering
		}
	case StanceDefensive:
		switch trigger {
		case TriggerDropGuard, TriggerDefenseSucceeded:
			return StanceNeutral
		case TriggerDefenseFailed:
			return StanceRecovering
		}
	case StanceRecovering:
		if trigger == TriggerRecovered {
			return StanceNeutral
		}
	}

	return current
}

// CanAttack: из каких стоек можно начинать или продолжать атаку.
func (s CombatStance) CanAttack() bool {
	return s == StancePressing || s == StanceNeutral
}

// CanDefend: из каких стоек возможна активная защита.
func (s CombatStance) CanDefend() bool {
	return s == StanceNeutral || s == StanceDefensive
}

// Vulnerable: боец открыт и не может полноценно защищаться.
func (s CombatStance) Vulnerable() bool {
	return s == StanceRecovering || s == StanceBroken
}

func (s CombatStance) String() string {
	switch s {
	case StanceNeutral:
		return "neutral"
	case StancePressing:
		return "pressing"
	case StanceDefensive:
		return "defensive"
	case StanceRecovering:
		return "recovering"
	case StanceBroken:
		return "broken"
	default:
		return "unknown"
	}
}

func (t StanceTrigger) String() string {
	switch t {
	case TriggerNone:
		return "none"
	case TriggerInitiateAttack:
		return "initiate_attack"
	case TriggerRaiseGuard:
		return "raise_guard"
	case TriggerDropGuard:
		return "drop_guard"
	case TriggerCatchBreath:
		return "catch_breath"
	case TriggerAttackCompleted:
		return "attack_completed"
	case TriggerAttackBlocked:
		return "attack_blocked"
	case TriggerAttackMissed:
		return "attack_missed"
	case TriggerDefenseSucceeded:
		return "defense_succeeded"
	case TriggerDefenseFailed:
		return "defense_failed"
	case TriggerTookHit:
		return "took_hit"
	case TriggerStaggered:
		return "staggered"
	case TriggerKnockdown:
		return "knockdown"
	case TriggerExhausted:
		return "exhausted"
	case TriggerRecovered:
		return "recovered"
	case TriggerCriticalWoundHead:
		return "critical_wound_head"
	case TriggerCriticalWoundTorso:
		return "critical_wound_torso"
	case TriggerMoraleBreak:
		return "morale_break"
	case TriggerWoundThresholdExceeded:
		return "wound_threshold_exceeded"
	default:
		return "unknown"
	}
}
