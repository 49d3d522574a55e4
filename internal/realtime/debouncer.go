package realtime

import (
	"sync"
	"time"
)

// Debouncer схлопывает серию срабатываний по ключу в один вызов fn
// fn вызывается через delay после последнего Trigger для этого ключа.
type Debouncer struct {
	delay  time.Duration
	fn     func(key string)
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewDebouncer создает debouncer с задержкой delay
func NewDebouncer(delay time.Duration, fn func(key string)) *Debouncer {
	return &Debouncer{
		delay:  delay,
		fn:     fn,
		timers: make(map[string]*time.Timer),
	}
}

// Trigger откладывает вызов fn(key) ещё на delay
func (d *Debouncer) Trigger(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}

	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		closed := d.closed
		d.mu.Unlock()

		if !closed {
			d.fn(key)
		}
	})
}

// Pending количество ключей, ожидающих вызова
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Stop отменяет все отложенные вызовы
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}
