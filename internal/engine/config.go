package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. Сид конкретного боя выводится из него и
	// ID боя, поэтому один мастер-сид воспроизводит всю кампанию.
	Seed int64

	// WoundThreshold - сколько ран тяжести Serious и выше боец
	// выдерживает, прежде чем сработает WoundThresholdExceeded.
	WoundThreshold int

	// TickInterval - пауза между тиками живого боя.
	TickInterval time.Duration
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:           time.Now().UnixNano(),
		WoundThreshold: 3,
		TickInterval:   500 * time.Millisecond,
	}
}
