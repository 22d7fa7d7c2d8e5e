package content

import (
	"os"
	"strings"
	"testing"

	"github.com/Astreocclu/arc-citadel-sub002/internal/domain"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const goodContent = `
weapons:
  - name: falchion
    edge: dull
    mass: medium
    reach: short
  - name: pick
    edge: blunt
    mass: heavy
    reach: short
    special: [armor_piercing]
armors:
  - name: jack
    rigidity: soft
    padding: heavy
    coverage: partial
`

func TestLoadGoodContent(t *testing.T) {
	reg, err := Load(strings.NewReader(goodContent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, ok := reg.Weapon("falchion")
	if !ok {
		t.Fatal("falchion not registered")
	}
	if w.Edge != domain.EdgeDull || w.Mass != domain.MassMedium || w.Reach != domain.ReachShort {
		t.Errorf("falchion parsed wrong: %+v", w)
	}

	pick, ok := reg.Weapon("pick")
	if !ok {
		t.Fatal("pick not registered")
	}
	if !pick.HasTag(domain.TagArmorPiercing) {
		t.Error("pick must carry the armor_piercing tag")
	}

	a, ok := reg.Armor("jack")
	if !ok {
		t.Fatal("jack not registered")
	}
	if a.Rigidity != domain.RigiditySoft || a.Padding != domain.PaddingHeavy || a.Coverage != domain.CoveragePartial {
		t.Errorf("jack parsed wrong: %+v", a)
	}
}

func TestLoadRejectsMalformedContent(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"unknown edge",
			"weapons:\n  - name: club\n    edge: spiky\n    mass: heavy\n    reach: short\n",
			"unknown edge",
		},
		{
			"unknown rigidity",
			"armors:\n  - name: robe\n    rigidity: silken\n    padding: none\n    coverage: full\n",
			"unknown rigidity",
		},
		{
			"empty weapon name",
			"weapons:\n  - edge: sharp\n    mass: light\n    reach: long\n",
			"empty name",
		},
		{
			"duplicate weapon",
			"weapons:\n  - {name: club, edge: blunt, mass: heavy, reach: short}\n  - {name: club, edge: blunt, mass: light, reach: short}\n",
			"duplicate",
		},
		{
			"broken yaml",
			"weapons: [",
			"parse content yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultRegistryPresets(t *testing.T) {
	reg := DefaultRegistry()

	sword, ok := reg.Weapon("sword")
	if !ok || sword.Edge != domain.EdgeSharp {
		t.Error("default registry missing the sword preset")
	}
	plate, ok := reg.Armor("plate")
	if !ok || plate.Rigidity != domain.RigidityPlate {
		t.Error("default registry missing the plate preset")
	}
	if reg.WeaponCount() < 5 || reg.ArmorCount() < 4 {
		t.Errorf("default registry too small: %d weapons, %d armors", reg.WeaponCount(), reg.ArmorCount())
	}
}
