package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	RequiredAcks string // none|one|all
}

// newWriter — kafka.Writer с ключевой балансировкой: события одной корзины попадают в одну партицию.
func (c *ProducerConfig) newWriter() *kafka.Writer {
	timeout := c.WriteTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           c.requiredAcks(),
		WriteTimeout:           timeout,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func (c *ProducerConfig) requiredAcks() kafka.RequiredAcks {
	switch strings.ToLower(strings.TrimSpace(c.RequiredAcks)) {
	case "none":
		return kafka.RequireNone
	case "one":
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}
