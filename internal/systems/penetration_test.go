package systems

import (
	"testing"

	"github.com/Astreocclu/arc-citadel-sub002/internal/domain"
)

var allEdges = []domain.Edge{domain.EdgeBlunt, domain.EdgeDull, domain.EdgeSharp, domain.EdgeRazor}
var allRigidities = []domain.Rigidity{domain.RigidityNone, domain.RigiditySoft, domain.RigidityRigid, domain.RigidityPlate}
var allMasses = []domain.Mass{domain.MassLight, domain.MassMedium, domain.MassHeavy}
var allPaddings = []domain.Padding{domain.PaddingNone, domain.PaddingLight, domain.PaddingHeavy}

// Every cell of the Edge x Rigidity grid must have a defined, repeatable
// answer — including values outside the known enums.
func TestResolvePenetrationTotal(t *testing.T) {
	valid := map[domain.PenetrationResult]bool{
		domain.PenetrationNoAttempt: true,
		domain.PenetrationDeflect:   true,
		domain.PenetrationGraze:     true,
		domain.PenetrationCut:       true,
		domain.PenetrationDeepCut:   true,
	}

	for _, e := range allEdges {
		for _, r := range allRigidities {
			for _, ap := range []bool{false, true} {
				first := ResolvePenetration(e, r, ap)
				if !valid[first] {
					t.Errorf("ResolvePenetration(%v, %v, %v) outside enum: %v", e, r, ap, first)
				}
				if second := ResolvePenetration(e, r, ap); second != first {
					t.Errorf("ResolvePenetration(%v, %v, %v) not deterministic: %v then %v", e, r, ap, first, second)
				}
			}
		}
	}

	// Content the engine has never heard of must not panic.
	if got := ResolvePenetration(domain.Edge(50), domain.Rigidity(50), false); !valid[got] {
		t.Errorf("unknown inputs gave %v", got)
	}
}

func TestResolvePenetrationFixedPoints(t *testing.T) {
	// Blunt never attempts to cut, for every rigidity.
	for _, r := range allRigidities {
		if got := ResolvePenetration(domain.EdgeBlunt, r, false); got != domain.PenetrationNoAttempt {
			t.Errorf("blunt vs %v = %v, want no_attempt", r, got)
		}
	}

	tests := []struct {
		name     string
		edge     domain.Edge
		rigidity domain.Rigidity
		want     domain.PenetrationResult
	}{
		{"sharp vs plate deflects", domain.EdgeSharp, domain.RigidityPlate, domain.PenetrationDeflect},
		{"razor vs flesh", domain.EdgeRazor, domain.RigidityNone, domain.PenetrationDeepCut},
		{"razor vs soft", domain.EdgeRazor, domain.RigiditySoft, domain.PenetrationDeepCut},
		{"sharp vs flesh", domain.EdgeSharp, domain.RigidityNone, domain.PenetrationDeepCut},
		{"sharp vs mail grazes", domain.EdgeSharp, domain.RigidityRigid, domain.PenetrationGraze},
		{"dull vs mail deflects", domain.EdgeDull, domain.RigidityRigid, domain.PenetrationDeflect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePenetration(tt.edge, tt.rigidity, false); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArmorPiercingDowngradesRigidity(t *testing.T) {
	// AP sharp point treats plate as mail: graze instead of deflect.
	if got := ResolvePenetration(domain.EdgeSharp, domain.RigidityPlate, true); got != domain.PenetrationGraze {
		t.Errorf("AP sharp vs plate = %v, want graze", got)
	}
	// AP never helps a blunt weapon cut.
	if got := ResolvePenetration(domain.EdgeBlunt, domain.RigidityPlate, true); got != domain.PenetrationNoAttempt {
		t.Errorf("AP blunt vs plate = %v, want no_attempt", got)
	}
	// AP changes nothing against unarmored flesh.
	if got := ResolvePenetration(domain.EdgeSharp, domain.RigidityNone, true); got != domain.PenetrationDeepCut {
		t.Errorf("AP sharp vs flesh = %v, want deep_cut", got)
	}
}
