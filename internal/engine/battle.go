package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/Astreocclu/arc-citadel-sub002/internal/domain"
	"github.com/Astreocclu/arc-citadel-sub002/internal/systems"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/api"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/logger"
)

// Сдвиги давления формации. Живут здесь, а не в доменных типах:
// категориальный инвариант ядра эти числа не трогают.
const (
	pressureLethalWound  = 0.15
	pressureSeriousWound = 0.05
	pressureMemberBroken = 0.25
)

// Engagement - пара "атакующий/защитник", сведенная на этом тике.
// Кто с кем сведен, решает внешний слой позиционирования; движок
// только разрешает обмены.
type Engagement struct {
	AttackerID string
	DefenderID string
}

// Battle - один изолированный бой. Весь мутабельный стейт (стойки,
// мораль, давление) принадлежит только ему; параллельные бои не
// делят ничего, кроме иммутабельного каталога свойств.
type Battle struct {
	ID   string
	Tick int

	mu sync.Mutex

	combatants  map[string]*domain.Combatant
	formations  map[string]*domain.FormationState
	engagements []Engagement

	// Rng сеется от мастер-сида и ID боя. Он выбирает только зону
	// прицельного удара - исходы обменов от него не зависят.
	rng *rand.Rand
	cfg Config

	events []api.BattleEvent
}

// NewBattle создает пустой бой с детерминированным локальным RNG.
func NewBattle(id string, cfg Config) *Battle {
	seed := cfg.Seed + stringToSeed(id)
	return &Battle{
		ID:         id,
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		combatants: make(map[string]*domain.Combatant),
		formations: make(map[string]*domain.FormationState),
	}
}

// stringToSeed сворачивает строку в сид (FNV-1a).
func stringToSeed(s string) int64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return int64(h)
}

// AddFormation регистрирует формацию.
func (b *Battle) AddFormation(id string) *domain.FormationState {
	b.mu.Lock()
	defer b.mu.Unlock()

	f := domain.NewFormationState(id, nil)
	b.formations[id] = f
	return f
}

// AddCombatant ставит бойца в строй.
func (b *Battle) AddCombatant(c *domain.Combatant, formationID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, ok := b.formations[formationID]
	if !ok {
		return fmt.Errorf("battle %s: unknown formation %q", b.ID, formationID)
	}
	if _, dup := b.combatants[c.ID]; dup {
		return fmt.Errorf("battle %s: duplicate combatant %q", b.ID, c.ID)
	}

	c.FormationID = formationID
	f.AddMember(c.ID)
	b.combatants[c.ID] = c
	return nil
}

// Engage сводит пару на ближайшие тики.
func (b *Battle) Engage(attackerID, defenderID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.engagements = append(b.engagements, Engagement{AttackerID: attackerID, DefenderID: defenderID})
}

// ApplyFormationStress подает тактический источник стресса (кавалерийский
// наскок, гибель офицера, удар во фланг) всем стоящим бойцам формации.
// Надломы от этого стресса сработают в морально-проверочной фазе
// ближайшего тика - порядок надломов остается воспроизводимым.
func (b *Battle) ApplyFormationStress(formationID string, src domain.StressSource) {
	b.mu.Lock()
	defer b.mu.Unlock()

	f, ok := b.formations[formationID]
	if !ok {
		return
	}
	for _, id := range f.MemberIDs() {
		c := b.combatants[id]
		if c == nil || c.OutOfFight() {
			continue
		}
		c.Morale.ApplyStress(src)
	}
}

// RunTick прогоняет один боевой тик и возвращает его события.
//
// Порядок фаз фиксирован, внутри фаз бойцы и формации обходятся в
// сортировке по ID: одинаковый стартовый стейт и одинаковый сид всегда
// дают одинаковую последовательность переходов.
func (b *Battle) RunTick() []api.BattleEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Tick++
	b.events = b.events[:0]

	// Фаза 1: восстановление. Кто переводил дыхание - встает в строй.
	for _, id := range b.sortedCombatantIDs() {
		c := b.combatants[id]
		if c.Dead || c.Stance != domain.StanceRecovering {
			continue
		}
		b.applyTrigger(c, domain.TriggerRecovered)
	}

	// Фаза 2: обмены, в фиксированном порядке пар.
	pairs := make([]Engagement, len(b.engagements))
	copy(pairs, b.engagements)
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].AttackerID != pairs[j].AttackerID {
			return pairs[i].AttackerID < pairs[j].AttackerID
		}
		return pairs[i].DefenderID < pairs[j].DefenderID
	})

	for _, pair := range pairs {
		attacker := b.combatants[pair.AttackerID]
		target := b.combatants[pair.DefenderID]
		if attacker == nil || target == nil || attacker.OutOfFight() || target.OutOfFight() {
			continue
		}
		b.resolvePair(attacker, target)
	}

	// Фаза 3: проверка морали. Надломы собираются за один проход;
	// стресс от вида бегущих товарищей может доломать остальных
	// только на следующем тике.
	var broke []*domain.Combatant
	for _, id := range b.sortedCombatantIDs() {
		c := b.combatants[id]
		if c.OutOfFight() {
			continue
		}
		if c.Morale.CheckBreak() == domain.MoraleBreaking {
			broke = append(broke, c)
		}
	}
	for _, c := range broke {
		b.applyTrigger(c, domain.TriggerMoraleBreak)
		b.emit(api.BattleEvent{
			Type: api.EventMoraleBreak, BattleID: b.ID, Tick: b.Tick,
			Stance:  &api.StanceView{CombatantID: c.ID, Trigger: domain.TriggerMoraleBreak.String(), To: c.Stance.String()},
			Message: fmt.Sprintf("%s breaks and flees", c.Name),
		})
		if f := b.formations[c.FormationID]; f != nil {
			f.ApplyPressureDelta(-pressureMemberBroken)
			for _, id := range f.MemberIDs() {
				ally := b.combatants[id]
				if ally == nil || ally == c || ally.OutOfFight() {
					continue
				}
				ally.Morale.ApplyStress(domain.StressAlliesBreaking)
			}
		}
	}

	// Фаза 4: сводка давления по формациям.
	for _, fid := range b.sortedFormationIDs() {
		f := b.formations[fid]
		b.emit(api.BattleEvent{
			Type: api.EventFormation, BattleID: b.ID, Tick: b.Tick,
			Formation: b.formationView(f),
		})
	}

	out := make([]api.BattleEvent, len(b.events))
	copy(out, b.events)
	return out
}

// resolvePair разрешает один обмен и применяет его последствия.
func (b *Battle) resolvePair(attacker, target *domain.Combatant) {
	zone := b.chooseZone(attacker)

	// Атакующий берет инициативу на время удара.
	if attacker.Stance == domain.StanceNeutral {
		b.applyTrigger(attacker, domain.TriggerInitiateAttack)
	}

	// Финт против глухой защиты - только если боец его умеет.
	maneuver := systems.ManeuverStrike
	if target.Stance == domain.StanceDefensive && attacker.Skill.CanFeint() {
		maneuver = systems.ManeuverFeint
	}

	res := systems.ResolveExchange(attacker, target, zone, maneuver)
	if res.Outcome == systems.OutcomeNoExchange {
		return
	}
	b.applyExchange(attacker, target, zone, res)

	// Рипост: умелый защитник, погасивший удар, немедленно отвечает.
	// Легальность проверяется здесь, на вызывающей стороне.
	if res.Outcome == systems.OutcomeBlocked && target.Skill.CanAttemptRiposte() && !target.OutOfFight() {
		riposteZone := b.chooseZone(target)
		riposte := systems.ResolveExchange(target, attacker, riposteZone, systems.ManeuverStrike)
		if riposte.Outcome != systems.OutcomeNoExchange {
			b.applyExchange(target, attacker, riposteZone, riposte)
		}
	}
}

// chooseZone выбирает зону удара. Прицельный удар доступен с уровня
// Trained, остальные бьют в корпус. Единственное место, где движок
// трогает RNG.
func (b *Battle) chooseZone(attacker *domain.Combatant) domain.BodyZone {
	if attacker.Skill.CanTargetSpecificZone() {
		return domain.AllZones[b.rng.Intn(len(domain.AllZones))]
	}
	return domain.ZoneTorso
}

// applyExchange публикует обмен и применяет его последствия к стойкам,
// ранам и давлению формаций.
func (b *Battle) applyExchange(attacker, target *domain.Combatant, zone domain.BodyZone, res systems.ExchangeResult) {
	view := &api.ExchangeView{
		AttackerID: attacker.ID,
		DefenderID: target.ID,
		Zone:       zone.String(),
		Outcome:    res.Outcome.String(),
	}
	if res.DefenderWound != nil {
		view.Severity = res.DefenderWound.Severity.String()
		view.Bleeding = res.DefenderWound.Bleeding
		view.Lethal = res.DefenderWound.Lethal
	}
	b.emit(api.BattleEvent{Type: api.EventExchange, BattleID: b.ID, Tick: b.Tick, Exchange: view})

	// Последствия для стоек.
	b.applyTrigger(attacker, res.AttackerTrigger)
	b.applyTrigger(target, res.DefenderTrigger)

	// Последствия раны.
	if res.DefenderHit && res.DefenderWound != nil && res.DefenderWound.Severity > domain.SeverityNone {
		target.TakeWound(*res.DefenderWound)

		switch {
		case res.DefenderWound.Lethal:
			b.emit(api.BattleEvent{
				Type: api.EventCasualty, BattleID: b.ID, Tick: b.Tick,
				Casualty: &api.CasualtyView{CombatantID: target.ID, Zone: zone.String()},
				Message:  fmt.Sprintf("%s falls to %s", target.Name, attacker.Name),
			})
			b.shiftPressure(attacker.FormationID, target.FormationID, pressureLethalWound)
		case res.DefenderWound.Severity >= domain.SeveritySerious:
			b.shiftPressure(attacker.FormationID, target.FormationID, pressureSeriousWound)
		}

		// Накопленные тяжелые раны выбивают из боя и без летальной.
		if !target.Dead && target.Stance != domain.StanceBroken &&
			target.WoundCount(domain.SeveritySerious) >= b.cfg.WoundThreshold {
			b.applyTrigger(target, domain.TriggerWoundThresholdExceeded)
		}
	}
}

// applyTrigger прогоняет стойку через автомат и публикует смену.
func (b *Battle) applyTrigger(c *domain.Combatant, tr domain.StanceTrigger) {
	if tr == domain.TriggerNone {
		return
	}
	from := c.Stance
	if !c.ApplyStanceTrigger(tr) {
		return
	}
	b.emit(api.BattleEvent{
		Type: api.EventStanceChange, BattleID: b.ID, Tick: b.Tick,
		Stance: &api.StanceView{
			CombatantID: c.ID,
			Trigger:     tr.String(),
			From:        from.String(),
			To:          c.Stance.String(),
		},
	})
}

// shiftPressure симметрично сдвигает давление двух сторон.
func (b *Battle) shiftPressure(gainID, loseID string, delta float64) {
	if f := b.formations[gainID]; f != nil {
		f.ApplyPressureDelta(delta)
	}
	if f := b.formations[loseID]; f != nil {
		f.ApplyPressureDelta(-delta)
	}
}

// Finished: бой окончен, когда боеспособные остались максимум у одной стороны.
func (b *Battle) Finished() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finishedLocked()
}

func (b *Battle) finishedLocked() bool {
	standing := 0
	for _, fid := range b.sortedFormationIDs() {
		f := b.formations[fid]
		for _, id := range f.MemberIDs() {
			if c := b.combatants[id]; c != nil && !c.OutOfFight() {
				standing++
				break
			}
		}
	}
	return standing <= 1
}

// Snapshot возвращает сводку боя для HTTP-слоя.
func (b *Battle) Snapshot() api.BattleSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := api.BattleSnapshot{
		ID:       b.ID,
		Tick:     b.Tick,
		Finished: b.finishedLocked(),
	}
	for _, fid := range b.sortedFormationIDs() {
		snap.Formations = append(snap.Formations, *b.formationView(b.formations[fid]))
	}
	return snap
}

func (b *Battle) formationView(f *domain.FormationState) *api.FormationView {
	active := 0
	for _, id := range f.MemberIDs() {
		if c := b.combatants[id]; c != nil && !c.OutOfFight() {
			active++
		}
	}
	return &api.FormationView{
		FormationID: f.ID,
		Pressure:    f.Pressure,
		Category:    f.PressureCategory().String(),
		Members:     active,
	}
}

func (b *Battle) sortedCombatantIDs() []string {
	ids := make([]string, 0, len(b.combatants))
	for id := range b.combatants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (b *Battle) sortedFormationIDs() []string {
	ids := make([]string, 0, len(b.formations))
	for id := range b.formations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (b *Battle) emit(evt api.BattleEvent) {
	b.events = append(b.events, evt)
	logger.Log.WithField("battle_id", b.ID).Debugf("event %s at tick %d", evt.Type, evt.Tick)
}
