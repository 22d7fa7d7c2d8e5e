package domain

// --- БОЕЦ ---

// Combatant - агрегат состояния одного бойца в бою. Создается при входе
// юнита в бой и живет до его конца. Стойку и мораль мутирует только
// боевой слой в ходе обработки тика.
type Combatant struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Weapon WeaponProperties `json:"weapon"`
	Armor  ArmorProperties  `json:"armor"`
	Skill  SkillLevel       `json:"skill"`

	Stance CombatStance `json:"stance"`
	Morale MoraleState  `json:"morale"`

	FormationID string `json:"formationId,omitempty"`

	// Wounds - полученные раны, бухгалтерия боевого слоя.
	Wounds []WoundResult `json:"wounds,omitempty"`
	Dead   bool          `json:"dead"`
}

// NewCombatant создает бойца в нейтральной стойке с нулевым стрессом.
func NewCombatant(id, name string, weapon WeaponProperties, armor ArmorProperties, skill SkillLevel) *Combatant {
	return &Combatant{
		ID:     id,
		Name:   name,
		Weapon: weapon,
		Armor:  armor,
		Skill:  skill,
		Stance: StanceNeutral,
	}
}

// ApplyStanceTrigger прогоняет стойку бойца через автомат переходов.
// Возвращает true, если стойка изменилась.
func (c *Combatant) ApplyStanceTrigger(trigger StanceTrigger) bool {
	next := ApplyStanceTrigger(c.Stance, trigger)
	if next == c.Stance {
		return false
	}
	c.Stance = next
	return true
}

// TakeWound записывает рану. Смертельная рана помечает бойца погибшим.
func (c *Combatant) TakeWound(w WoundResult) {
	c.Wounds = append(c.Wounds, w)
	if w.Lethal {
		c.Dead = true
	}
}

// WoundCount считает раны тяжести не ниже заданной.
func (c *Combatant) WoundCount(atLeast WoundSeverity) int {
	n := 0
	for _, w := range c.Wounds {
		if w.Severity >= atLeast {
			n++
		}
	}
	return n
}

// OutOfFight: боец больше не участвует в обменах.
func (c *Combatant) OutOfFight() bool {
	return c.Dead || c.Stance == StanceBroken
}
