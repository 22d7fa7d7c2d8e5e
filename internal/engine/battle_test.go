package engine

import (
	"reflect"
	"testing"

	"github.com/Astreocclu/arc-citadel-sub002/internal/domain"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/api"
)

func testConfig() Config {
	return Config{Seed: 42, WoundThreshold: 3, TickInterval: 0}
}

// buildSkirmish assembles a small fixed two-sided battle.
func buildSkirmish(t *testing.T, cfg Config) *Battle {
	t.Helper()

	b := NewBattle("skirmish", cfg)
	b.AddFormation("red")
	b.AddFormation("blue")

	red := domain.NewCombatant("r1", "Red One", domain.WeaponSword(), domain.ArmorMail(), domain.SkillVeteran)
	blue := domain.NewCombatant("b1", "Blue One", domain.WeaponMace(), domain.ArmorGambeson(), domain.SkillTrained)

	if err := b.AddCombatant(red, "red"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCombatant(blue, "blue"); err != nil {
		t.Fatal(err)
	}

	b.Engage("r1", "b1")
	b.Engage("b1", "r1")
	return b
}

// Same seed, same setup: the full event transcript must be identical.
func TestBattleDeterminism(t *testing.T) {
	run := func() [][]api.BattleEvent {
		b := buildSkirmish(t, testConfig())
		var transcript [][]api.BattleEvent
		for i := 0; i < 20; i++ {
			transcript = append(transcript, b.RunTick())
			if b.Finished() {
				break
			}
		}
		return transcript
	}

	first := run()
	second := run()

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs with the same seed diverged")
	}
}

func TestBattleMoraleBreakSequence(t *testing.T) {
	b := buildSkirmish(t, testConfig())

	// 0.20 + 0.30 + 0.25 + 0.30 = 1.05 over threshold.
	b.ApplyFormationStress("blue", domain.StressCavalryCharge)
	b.ApplyFormationStress("blue", domain.StressOfficerKilled)
	b.ApplyFormationStress("blue", domain.StressAmbushSprung)
	b.ApplyFormationStress("blue", domain.StressOfficerKilled)

	events := b.RunTick()

	var sawBreak bool
	for _, evt := range events {
		if evt.Type == api.EventMoraleBreak && evt.Stance.CombatantID == "b1" {
			sawBreak = true
		}
	}
	if !sawBreak {
		t.Fatal("expected a morale break event for b1")
	}

	blue := b.combatants["b1"]
	if blue.Stance != domain.StanceBroken {
		t.Errorf("b1 stance = %v, want broken", blue.Stance)
	}

	// A broken-only formation ends the battle.
	if !b.Finished() {
		t.Error("battle must be finished once one side is all broken")
	}

	// The broken member dragged its formation's pressure down.
	snap := b.Snapshot()
	for _, f := range snap.Formations {
		if f.FormationID == "blue" && f.Pressure >= 0 {
			t.Errorf("blue pressure = %.2f, want negative", f.Pressure)
		}
	}
}

func TestBattleAlliesBreakingStress(t *testing.T) {
	cfg := testConfig()
	b := NewBattle("rout", cfg)
	b.AddFormation("line")
	b.AddFormation("foe")

	weak := domain.NewCombatant("l1", "Weak", domain.WeaponSpear(), domain.ArmorNone(), domain.SkillNovice)
	steady := domain.NewCombatant("l2", "Steady", domain.WeaponSpear(), domain.ArmorNone(), domain.SkillNovice)
	foe := domain.NewCombatant("f1", "Foe", domain.WeaponSpear(), domain.ArmorNone(), domain.SkillNovice)
	for _, c := range []*domain.Combatant{weak, steady} {
		if err := b.AddCombatant(c, "line"); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.AddCombatant(foe, "foe"); err != nil {
		t.Fatal(err)
	}

	// Push only l1 over the threshold.
	weak.Morale.AccumulatedStress = 1.0

	b.RunTick()

	if weak.Stance != domain.StanceBroken {
		t.Fatalf("l1 must break, stance = %v", weak.Stance)
	}
	if steady.Stance == domain.StanceBroken {
		t.Fatal("l2 must not break on the same tick")
	}
	if steady.Morale.AccumulatedStress != domain.StressAlliesBreaking.Amount() {
		t.Errorf("l2 stress = %.2f, want %.2f from allies breaking",
			steady.Morale.AccumulatedStress, domain.StressAlliesBreaking.Amount())
	}
	// The enemy line must not be stressed by its opponents routing.
	if foe.Morale.AccumulatedStress != 0 {
		t.Errorf("foe stress = %.2f, want 0", foe.Morale.AccumulatedStress)
	}
}

// A novice attacker with a cutting weapon against soft armor lands a
// serious, non-lethal torso wound every tick; the wound threshold must
// take the defender out after three of them.
func TestBattleWoundThreshold(t *testing.T) {
	cfg := testConfig()
	b := NewBattle("grind", cfg)
	b.AddFormation("a")
	b.AddFormation("d")

	att := domain.NewCombatant("a1", "Cutter", domain.WeaponSword(), domain.ArmorNone(), domain.SkillNovice)
	def := domain.NewCombatant("d1", "Padded", domain.WeaponSword(), domain.ArmorGambeson(), domain.SkillNovice)
	if err := b.AddCombatant(att, "a"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCombatant(def, "d"); err != nil {
		t.Fatal(err)
	}
	b.Engage("a1", "d1")

	for i := 0; i < 3; i++ {
		b.RunTick()
	}

	if got := def.WoundCount(domain.SeveritySerious); got != 3 {
		t.Fatalf("serious wounds = %d, want 3", got)
	}
	if def.Dead {
		t.Fatal("serious torso wounds must not be lethal")
	}
	if def.Stance != domain.StanceBroken {
		t.Errorf("defender stance = %v, want broken after wound threshold", def.Stance)
	}
}

func TestBattleLethalWoundShiftsPressure(t *testing.T) {
	cfg := testConfig()
	b := NewBattle("duel", cfg)
	b.AddFormation("a")
	b.AddFormation("d")

	// Novice with a dagger always stabs the torso: sharp razor vs bare
	// flesh is a critical, lethal at the torso threshold.
	att := domain.NewCombatant("a1", "Knifer", domain.WeaponDagger(), domain.ArmorNone(), domain.SkillNovice)
	def := domain.NewCombatant("d1", "Bare", domain.WeaponSword(), domain.ArmorNone(), domain.SkillNovice)
	if err := b.AddCombatant(att, "a"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCombatant(def, "d"); err != nil {
		t.Fatal(err)
	}
	b.Engage("a1", "d1")

	events := b.RunTick()

	var sawCasualty bool
	for _, evt := range events {
		if evt.Type == api.EventCasualty && evt.Casualty.CombatantID == "d1" {
			sawCasualty = true
		}
	}
	if !sawCasualty {
		t.Fatal("expected a casualty event")
	}
	if !def.Dead {
		t.Fatal("defender must be dead")
	}

	snap := b.Snapshot()
	for _, f := range snap.Formations {
		switch f.FormationID {
		case "a":
			if f.Pressure <= 0 {
				t.Errorf("attacker pressure = %.2f, want positive", f.Pressure)
			}
		case "d":
			if f.Pressure >= 0 {
				t.Errorf("defender pressure = %.2f, want negative", f.Pressure)
			}
			if f.Members != 0 {
				t.Errorf("defender active members = %d, want 0", f.Members)
			}
		}
	}
	if !b.Finished() {
		t.Error("one-sided battle must be finished")
	}
}

// A veteran who parries in a defensive stance answers with an
// immediate riposte inside the same tick.
func TestBattleRiposte(t *testing.T) {
	cfg := testConfig()
	b := NewBattle("parry", cfg)
	b.AddFormation("a")
	b.AddFormation("d")

	att := domain.NewCombatant("a1", "Rash", domain.WeaponSword(), domain.ArmorNone(), domain.SkillNovice)
	def := domain.NewCombatant("d1", "Fencer", domain.WeaponDagger(), domain.ArmorNone(), domain.SkillVeteran)
	if err := b.AddCombatant(att, "a"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddCombatant(def, "d"); err != nil {
		t.Fatal(err)
	}
	def.Stance = domain.StanceDefensive
	b.Engage("a1", "d1")

	events := b.RunTick()

	exchanges := 0
	for _, evt := range events {
		if evt.Type == api.EventExchange {
			exchanges++
		}
	}
	if exchanges != 2 {
		t.Fatalf("exchanges = %d, want blocked strike plus riposte", exchanges)
	}

	// The parry dropped the fencer back to neutral, and the razor
	// riposte against bare flesh is critical wherever it lands.
	if def.Stance != domain.StanceNeutral && !def.Stance.Vulnerable() {
		t.Errorf("fencer stance = %v after parry", def.Stance)
	}
	if len(att.Wounds) != 1 || att.Wounds[0].Severity != domain.SeverityCritical {
		t.Fatalf("attacker wounds = %+v, want one critical", att.Wounds)
	}
}

func TestBattleRecoveryPhase(t *testing.T) {
	cfg := testConfig()
	b := NewBattle("rest", cfg)
	b.AddFormation("a")
	c := domain.NewCombatant("a1", "Tired", domain.WeaponSword(), domain.ArmorNone(), domain.SkillNovice)
	if err := b.AddCombatant(c, "a"); err != nil {
		t.Fatal(err)
	}

	c.Stance = domain.StanceRecovering
	b.RunTick()

	if c.Stance != domain.StanceNeutral {
		t.Errorf("stance = %v, want neutral after recovery phase", c.Stance)
	}
}
