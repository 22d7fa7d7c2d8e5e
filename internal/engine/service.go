package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Astreocclu/arc-citadel-sub002/internal/content"
	"github.com/Astreocclu/arc-citadel-sub002/internal/domain"
	"github.com/Astreocclu/arc-citadel-sub002/internal/network"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/api"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/logger"
)

// BattleService управляет независимыми боями. Каждый бой крутится в
// собственной горутине и не делит мутабельный стейт с соседями, поэтому
// одновременные осады - это просто несколько горутин.
type BattleService struct {
	Cfg      Config
	Hub      *network.Broadcaster
	Registry *content.Registry

	mu      sync.RWMutex
	battles map[string]*Battle
}

func NewService(cfg Config, registry *content.Registry) *BattleService {
	return &BattleService{
		Cfg:      cfg,
		Hub:      network.NewBroadcaster(),
		Registry: registry,
		battles:  make(map[string]*Battle),
	}
}

// CreateBattle регистрирует новый бой.
func (s *BattleService) CreateBattle(id string) (*Battle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.battles[id]; dup {
		return nil, fmt.Errorf("battle %q already exists", id)
	}
	b := NewBattle(id, s.Cfg)
	s.battles[id] = b
	return b, nil
}

// GetBattle возвращает бой по ID.
func (s *BattleService) GetBattle(id string) *Battle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.battles[id]
}

// Snapshots возвращает сводки всех боев в стабильном порядке.
func (s *BattleService) Snapshots() []api.BattleSnapshot {
	s.mu.RLock()
	ids := make([]string, 0, len(s.battles))
	for id := range s.battles {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)

	snaps := make([]api.BattleSnapshot, 0, len(ids))
	for _, id := range ids {
		if b := s.GetBattle(id); b != nil {
			snaps = append(snaps, b.Snapshot())
		}
	}
	return snaps
}

// RunBattle крутит тики боя до его окончания, транслируя события в хаб.
// Запускать в отдельной горутине.
func (s *BattleService) RunBattle(b *Battle) {
	log := logger.Log.WithField("battle_id", b.ID)
	log.Info("Battle loop started")

	s.Hub.Broadcast(api.BattleEvent{
		Type: api.EventBattleStarted, BattleID: b.ID,
		Message: "battle joined",
	})

	for !b.Finished() {
		for _, evt := range b.RunTick() {
			s.Hub.Broadcast(evt)
		}
		if s.Cfg.TickInterval > 0 {
			time.Sleep(s.Cfg.TickInterval)
		}
	}

	s.Hub.Broadcast(api.BattleEvent{
		Type: api.EventBattleEnded, BattleID: b.ID, Tick: b.Snapshot().Tick,
		Message: "battle decided",
	})
	log.Info("Battle finished")
}

// StartDemoBattle собирает показательный бой из пресетов каталога:
// авангард в разносортной броне против латной стены. Удобен как
// smoke-бой при запуске сервера без внешнего оркестратора.
func (s *BattleService) StartDemoBattle() (*Battle, error) {
	b, err := s.CreateBattle("demo")
	if err != nil {
		return nil, err
	}

	b.AddFormation("vanguard")
	b.AddFormation("shieldwall")

	type roster struct {
		id, name  string
		weapon    string
		armor     string
		skill     domain.SkillLevel
		formation string
	}

	troops := []roster{
		{"v1", "Aldric", "sword", "mail", domain.SkillVeteran, "vanguard"},
		{"v2", "Berrin", "poleaxe", "gambeson", domain.SkillTrained, "vanguard"},
		{"v3", "Casso", "dagger", "unarmored", domain.SkillMaster, "vanguard"},
		{"s1", "Dagny", "warhammer", "plate", domain.SkillVeteran, "shieldwall"},
		{"s2", "Edda", "mace", "plate", domain.SkillTrained, "shieldwall"},
		{"s3", "Falk", "spear", "brigandine", domain.SkillNovice, "shieldwall"},
	}

	for _, tr := range troops {
		weapon, ok := s.Registry.Weapon(tr.weapon)
		if !ok {
			return nil, fmt.Errorf("demo battle: weapon %q not in registry", tr.weapon)
		}
		armor, ok := s.Registry.Armor(tr.armor)
		if !ok {
			return nil, fmt.Errorf("demo battle: armor %q not in registry", tr.armor)
		}
		c := domain.NewCombatant(tr.id, tr.name, weapon, armor, tr.skill)
		if err := b.AddCombatant(c, tr.formation); err != nil {
			return nil, err
		}
	}

	// Сводим шеренги лоб в лоб, обмены в обе стороны.
	pairs := [][2]string{{"v1", "s1"}, {"v2", "s2"}, {"v3", "s3"}}
	for _, p := range pairs {
		b.Engage(p[0], p[1])
		b.Engage(p[1], p[0])
	}

	logger.Log.Infof("⚔️  Demo battle assembled: %d combatants", len(troops))
	return b, nil
}
