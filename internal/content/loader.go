package content

import (
	"fmt"
	"io"
	"os"

	"github.com/Astreocclu/arc-citadel-sub002/internal/domain"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/logger"

	"gopkg.in/yaml.v2"
)

// --- ЗАГРУЗКА КОНТЕНТА ---
//
// Таблицы оружия и брони приходят из YAML. Валидация происходит ЗДЕСЬ,
// на границе: до ядра доходят только корректные категориальные
// значения, поэтому само ядро может оставаться тотальным и не знать
// про ошибки.

// WeaponDef - сырое описание оружия из контент-файла.
type WeaponDef struct {
	Name    string   `yaml:"name"`
	Edge    string   `yaml:"edge"`
	Mass    string   `yaml:"mass"`
	Reach   string   `yaml:"reach"`
	Special []string `yaml:"special,omitempty"`
}

// ArmorDef - сырое описание брони.
type ArmorDef struct {
	Name     string `yaml:"name"`
	Rigidity string `yaml:"rigidity"`
	Padding  string `yaml:"padding"`
	Coverage string `yaml:"coverage"`
}

// File - корень контент-файла.
type File struct {
	Weapons []WeaponDef `yaml:"weapons"`
	Armors  []ArmorDef  `yaml:"armors"`
}

// Registry - иммутабельный каталог свойств. После загрузки не меняется,
// поэтому его можно читать из любого потока без синхронизации.
type Registry struct {
	weapons map[string]domain.WeaponProperties
	armors  map[string]domain.ArmorProperties
}

// Weapon возвращает свойства оружия по имени.
func (r *Registry) Weapon(name string) (domain.WeaponProperties, bool) {
	w, ok := r.weapons[name]
	return w, ok
}

// Armor возвращает свойства брони по имени.
func (r *Registry) Armor(name string) (domain.ArmorProperties, bool) {
	a, ok := r.armors[name]
	return a, ok
}

// WeaponCount и ArmorCount - для логов и health-чеков.
func (r *Registry) WeaponCount() int { return len(r.weapons) }
func (r *Registry) ArmorCount() int  { return len(r.armors) }

// DefaultRegistry возвращает встроенные пресеты. Используется, когда
// серверу не передали каталог контента.
func DefaultRegistry() *Registry {
	r := &Registry{
		weapons: make(map[string]domain.WeaponProperties),
		armors:  make(map[string]domain.ArmorProperties),
	}
	for _, w := range []domain.WeaponProperties{
		domain.WeaponSword(), domain.WeaponMace(), domain.WeaponDagger(),
		domain.WeaponSpear(), domain.WeaponPoleaxe(), domain.WeaponWarhammer(),
	} {
		r.weapons[w.Name] = w
	}
	for _, a := range []domain.ArmorProperties{
		domain.ArmorNone(), domain.ArmorGambeson(), domain.ArmorMail(),
		domain.ArmorBrigandine(), domain.ArmorPlate(),
	} {
		r.armors[a.Name] = a
	}
	return r
}

// LoadFile читает и валидирует контент-файл с диска.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load читает и валидирует контент из потока. Любая некорректная
// запись - ошибка всей загрузки: лучше не подняться, чем уронить
// бой на середине.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse content yaml: %w", err)
	}

	reg := &Registry{
		weapons: make(map[string]domain.WeaponProperties, len(file.Weapons)),
		armors:  make(map[string]domain.ArmorProperties, len(file.Armors)),
	}

	for _, def := range file.Weapons {
		w, err := buildWeapon(def)
		if err != nil {
			return nil, err
		}
		if _, dup := reg.weapons[w.Name]; dup {
			return nil, fmt.Errorf("weapon %q: duplicate definition", w.Name)
		}
		reg.weapons[w.Name] = w
	}

	for _, def := range file.Armors {
		a, err := buildArmor(def)
		if err != nil {
			return nil, err
		}
		if _, dup := reg.armors[a.Name]; dup {
			return nil, fmt.Errorf("armor %q: duplicate definition", a.Name)
		}
		reg.armors[a.Name] = a
	}

	logger.Log.Infof("Content loaded: %d weapons, %d armors", reg.WeaponCount(), reg.ArmorCount())
	return reg, nil
}

func buildWeapon(def WeaponDef) (domain.WeaponProperties, error) {
	var w domain.WeaponProperties

	if def.Name == "" {
		return w, fmt.Errorf("weapon with empty name")
	}
	edge, ok := domain.ParseEdge(def.Edge)
	if !ok {
		return w, fmt.Errorf("weapon %q: unknown edge %q", def.Name, def.Edge)
	}
	mass, ok := domain.ParseMass(def.Mass)
	if !ok {
		return w, fmt.Errorf("weapon %q: unknown mass %q", def.Name, def.Mass)
	}
	reach, ok := domain.ParseReach(def.Reach)
	if !ok {
		return w, fmt.Errorf("weapon %q: unknown reach %q", def.Name, def.Reach)
	}

	var tags []domain.WeaponTag
	for _, s := range def.Special {
		tags = append(tags, domain.WeaponTag(s))
	}

	return domain.WeaponProperties{Name: def.Name, Edge: edge, Mass: mass, Reach: reach, Special: tags}, nil
}

func buildArmor(def ArmorDef) (domain.ArmorProperties, error) {
	var a domain.ArmorProperties

	if def.Name == "" {
		return a, fmt.Errorf("armor with empty name")
	}
	rigidity, ok := domain.ParseRigidity(def.Rigidity)
	if !ok {
		return a, fmt.Errorf("armor %q: unknown rigidity %q", def.Name, def.Rigidity)
	}
	padding, ok := domain.ParsePadding(def.Padding)
	if !ok {
		return a, fmt.Errorf("armor %q: unknown padding %q", def.Name, def.Padding)
	}
	coverage, ok := domain.ParseCoverage(def.Coverage)
	if !ok {
		return a, fmt.Errorf("armor %q: unknown coverage %q", def.Name, def.Coverage)
	}

	return domain.ArmorProperties{Name: def.Name, Rigidity: rigidity, Padding: padding, Coverage: coverage}, nil
}
