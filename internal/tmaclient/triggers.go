package tmaclient

import (
	"sync"
	"time"
)

// RefreshTrigger — источник сигналов «пора перечитать корзину».
type RefreshTrigger interface {
	C() <-chan struct{}
	Stop()
}

// ManualTrigger — сигналы по вызову Fire (события visibilitychange/pageshow,
// кнопка «обновить»). Сигналы, пришедшие до обработки предыдущего, схлопываются.
type ManualTrigger struct {
	ch chan struct{}
}

func NewManualTrigger() *ManualTrigger {
	return &ManualTrigger{ch: make(chan struct{}, 1)}
}

func (t *ManualTrigger) C() <-chan struct{} { return t.ch }

// Fire — не блокирует.
func (t *ManualTrigger) Fire() {
	select {
	case t.ch <- struct{}{}:
	default:
	}
}

func (t *ManualTrigger) Stop() {}

// TickerTrigger — сигнал раз в interval.
type TickerTrigger struct {
	ticker *time.Ticker
	ch     chan struct{}
	done   chan struct{}
	once   sync.Once
}

func NewTickerTrigger(interval time.Duration) *TickerTrigger {
	t := &TickerTrigger{
		ticker: time.NewTicker(interval),
		ch:     make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go t.loop()
	return t
}

func (t *TickerTrigger) loop() {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case t.ch <- struct{}{}:
			default:
			}
		}
	}
}

func (t *TickerTrigger) C() <-chan struct{} { return t.ch }

func (t *TickerTrigger) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
