package systems

import (
	"testing"

	"github.com/Astreocclu/arc-citadel-sub002/internal/domain"
)

func attacker(weapon domain.WeaponProperties, skill domain.SkillLevel) *domain.Combatant {
	return domain.NewCombatant("a1", "attacker", weapon, domain.ArmorNone(), skill)
}

func defender(armor domain.ArmorProperties) *domain.Combatant {
	return domain.NewCombatant("d1", "defender", domain.WeaponSword(), armor, domain.SkillNovice)
}

// Scenario: sword vs full plate on the torso. The blade deflects, the
// medium mass is eaten by the heavy padding — no wound, no bleeding.
func TestExchangeSwordVsPlate(t *testing.T) {
	res := ResolveExchange(attacker(domain.WeaponSword(), domain.SkillNovice), defender(domain.ArmorPlate()), domain.ZoneTorso, ManeuverStrike)

	if !res.DefenderHit || res.DefenderWound == nil {
		t.Fatal("hit must land against a non-defensive stance")
	}
	if res.DefenderWound.Severity != domain.SeverityNone {
		t.Errorf("severity = %v, want none", res.DefenderWound.Severity)
	}
	if res.DefenderWound.Bleeding {
		t.Error("deflected blade must not cause bleeding")
	}
	if res.DefenderTrigger != domain.TriggerNone {
		t.Errorf("armor soak must not stagger the defender, got %v", res.DefenderTrigger)
	}
}

// Scenario: mace vs full plate. No cut is even attempted; the heavy
// mass against heavy padding grinds the defender down to fatigue.
func TestExchangeMaceVsPlate(t *testing.T) {
	d := defender(domain.ArmorPlate())
	res := ResolveExchange(attacker(domain.WeaponMace(), domain.SkillNovice), d, domain.ZoneTorso, ManeuverStrike)

	if !res.DefenderHit {
		t.Fatal("expected a hit")
	}

	eff := d.Armor.EffectiveAgainst(domain.ZoneTorso)
	if tr := ResolveTrauma(domain.MassHeavy, eff.Padding); tr != domain.TraumaFatigue {
		t.Errorf("trauma = %v, want fatigue", tr)
	}
	if res.DefenderWound.Severity != domain.SeverityNone {
		t.Errorf("severity = %v, want none", res.DefenderWound.Severity)
	}
}

// Scenario: razor-edged dagger against a bare neck. Deep cut, critical,
// bleeding, lethal.
func TestExchangeDaggerVsBareNeck(t *testing.T) {
	res := ResolveExchange(attacker(domain.WeaponDagger(), domain.SkillVeteran), defender(domain.ArmorNone()), domain.ZoneNeck, ManeuverStrike)

	if !res.DefenderHit || res.DefenderWound == nil {
		t.Fatal("expected a hit")
	}
	w := res.DefenderWound
	if w.Severity != domain.SeverityCritical {
		t.Errorf("severity = %v, want critical", w.Severity)
	}
	if !w.Bleeding {
		t.Error("deep cut must bleed")
	}
	if !w.Lethal {
		t.Error("critical neck wound must be lethal")
	}
}

func TestExchangeAttackerStanceGate(t *testing.T) {
	for _, stance := range []domain.CombatStance{domain.StanceDefensive, domain.StanceRecovering, domain.StanceBroken} {
		a := attacker(domain.WeaponSword(), domain.SkillNovice)
		a.Stance = stance
		res := ResolveExchange(a, defender(domain.ArmorNone()), domain.ZoneTorso, ManeuverStrike)
		if res.Outcome != OutcomeNoExchange || res.DefenderHit || res.DefenderWound != nil {
			t.Errorf("stance %v must not produce an exchange, got %v", stance, res.Outcome)
		}
	}
}

func TestExchangeDefensiveBlocksStrike(t *testing.T) {
	d := defender(domain.ArmorNone())
	d.Stance = domain.StanceDefensive

	res := ResolveExchange(attacker(domain.WeaponSword(), domain.SkillNovice), d, domain.ZoneTorso, ManeuverStrike)
	if res.Outcome != OutcomeBlocked || res.DefenderHit {
		t.Fatalf("defensive stance must block, got %v", res.Outcome)
	}
	if res.AttackerTrigger != domain.TriggerAttackBlocked {
		t.Errorf("attacker trigger = %v, want attack_blocked", res.AttackerTrigger)
	}
	if res.DefenderTrigger != domain.TriggerDefenseSucceeded {
		t.Errorf("defender trigger = %v, want defense_succeeded", res.DefenderTrigger)
	}
}

// A feint (legality already checked by the caller via CanFeint) opens
// up a defensive stance.
func TestExchangeFeintBeatsGuard(t *testing.T) {
	d := defender(domain.ArmorNone())
	d.Stance = domain.StanceDefensive

	res := ResolveExchange(attacker(domain.WeaponSword(), domain.SkillMaster), d, domain.ZoneTorso, ManeuverFeint)
	if res.Outcome != OutcomeHit || !res.DefenderHit {
		t.Fatalf("feint must land through a guard, got %v", res.Outcome)
	}
}

func TestExchangeCriticalZoneTriggers(t *testing.T) {
	tests := []struct {
		zone domain.BodyZone
		want domain.StanceTrigger
	}{
		{domain.ZoneHead, domain.TriggerCriticalWoundHead},
		{domain.ZoneTorso, domain.TriggerCriticalWoundTorso},
		{domain.ZoneNeck, domain.TriggerTookHit},
		{domain.ZoneLimb, domain.TriggerTookHit},
	}

	for _, tt := range tests {
		// Sharp vs flesh gives a deep cut — critical on every zone.
		res := ResolveExchange(attacker(domain.WeaponSword(), domain.SkillMaster), defender(domain.ArmorNone()), tt.zone, ManeuverStrike)
		if res.DefenderTrigger != tt.want {
			t.Errorf("zone %v: defender trigger = %v, want %v", tt.zone, res.DefenderTrigger, tt.want)
		}
	}
}

// The resolver must not touch either combatant.
func TestExchangeIsPure(t *testing.T) {
	a := attacker(domain.WeaponSword(), domain.SkillNovice)
	d := defender(domain.ArmorNone())

	ResolveExchange(a, d, domain.ZoneNeck, ManeuverStrike)

	if a.Stance != domain.StanceNeutral || d.Stance != domain.StanceNeutral {
		t.Error("resolver mutated a stance")
	}
	if len(d.Wounds) != 0 || d.Dead {
		t.Error("resolver mutated defender state")
	}
	if d.Morale.AccumulatedStress != 0 {
		t.Error("resolver mutated morale")
	}
}
