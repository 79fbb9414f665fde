package callboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	currentKey = "callboard:current"
	channel    = "callboard:calls"
)

// Announcement es lo que ven las pantallas de sala de espera.
type Announcement struct {
	AttendanceID uint      `json:"attendance_id"`
	ClientName   string    `json:"client_name"`
	Station      string    `json:"station"`
	Ordinal      int       `json:"ordinal"`
	CalledAt     time.Time `json:"called_at"`
}

// Publisher empuja cada llamado a Redis: clave con el último llamado
// más un canal pub/sub. Un publicador nil o sin Redis configurado se
// comporta como no-op; el tablero nunca bloquea la API.
type Publisher struct {
	rdb   *redis.Client
	queue chan Announcement
}

func NewPublisher(rdb *redis.Client) *Publisher {
	p := &Publisher{
		rdb:   rdb,
		queue: make(chan Announcement, 100),
	}

	if rdb != nil {
		go p.worker()
	}
	return p
}

func (p *Publisher) worker() {
	for a := range p.queue {
		payload, err := json.Marshal(a)
		if err != nil {
			log.Error().Err(err).Msg("callboard marshal error")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)

		if err := p.rdb.Set(ctx, currentKey, payload, 0).Err(); err != nil {
			log.Error().Err(err).Msg("callboard set error")
		}
		if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
			log.Error().Err(err).Msg("callboard publish error")
		}

		cancel()
	}
}

func (p *Publisher) Publish(a Announcement) {
	if p == nil || p.rdb == nil {
		return
	}

	select {
	case p.queue <- a:
	default:
		// tablero lleno: se descarta el anuncio antes que frenar la API
		log.Warn().Msg("callboard queue full, dropping announcement")
	}
}
