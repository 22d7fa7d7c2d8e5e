package api

// --- СЕРВЕР -> НАБЛЮДАТЕЛЬ ---
//
// Лента боя строго read-only: наблюдатель видит события, но не может
// ничего отправить в симуляцию. Это не протокол самого ядра - ядро
// протокола не имеет, - а смотровая щель поверх него.

// Типы событий ленты.
const (
	EventExchange      = "EXCHANGE"       // разрешен один обмен
	EventStanceChange  = "STANCE_CHANGE"  // стойка бойца изменилась
	EventMoraleBreak   = "MORALE_BREAK"   // боец сломался морально
	EventCasualty      = "CASUALTY"       // смертельная рана
	EventFormation     = "FORMATION"      // давление формации после тика
	EventBattleStarted = "BATTLE_STARTED"
	EventBattleEnded   = "BATTLE_ENDED"
)

// BattleEvent - одно событие боя. Корневой объект ленты.
type BattleEvent struct {
	// Type тип события (см. константы Event*).
	Type string `json:"type"`

	// BattleID и Tick привязывают событие к конкретному бою и моменту.
	BattleID string `json:"battleId"`
	Tick     int    `json:"tick"`

	// Exchange заполнено для EventExchange.
	Exchange *ExchangeView `json:"exchange,omitempty"`

	// Stance заполнено для EventStanceChange и EventMoraleBreak.
	Stance *StanceView `json:"stance,omitempty"`

	// Casualty заполнено для EventCasualty.
	Casualty *CasualtyView `json:"casualty,omitempty"`

	// Formation заполнено для EventFormation.
	Formation *FormationView `json:"formation,omitempty"`

	// Message - человекочитаемая строка для простых клиентов.
	Message string `json:"message,omitempty"`
}

// ExchangeView - DTO одного обмена.
type ExchangeView struct {
	AttackerID string `json:"attackerId"`
	DefenderID string `json:"defenderId"`
	Zone       string `json:"zone"`
	Outcome    string `json:"outcome"`

	// Категориальные исходы по осям; пусто, если удар не дошел.
	Severity string `json:"severity,omitempty"`
	Bleeding bool   `json:"bleeding,omitempty"`
	Lethal   bool   `json:"lethal,omitempty"`
}

// StanceView - DTO смены стойки.
type StanceView struct {
	CombatantID string `json:"combatantId"`
	Trigger     string `json:"trigger"`
	From        string `json:"from"`
	To          string `json:"to"`
}

// CasualtyView - DTO потери.
type CasualtyView struct {
	CombatantID string `json:"combatantId"`
	Zone        string `json:"zone"`
}

// FormationView - DTO состояния формации.
type FormationView struct {
	FormationID string  `json:"formationId"`
	Pressure    float64 `json:"pressure"`
	Category    string  `json:"category"`
	Members     int     `json:"members"`
}

// BattleSnapshot - сводка по бою для HTTP-списка /battles.
type BattleSnapshot struct {
	ID         string          `json:"id"`
	Tick       int             `json:"tick"`
	Finished   bool            `json:"finished"`
	Formations []FormationView `json:"formations"`
}
