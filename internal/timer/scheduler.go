// internal/timer/scheduler.go
package timer

import (
	"container/heap"
	"go-superpang/internal/types"
	"time"
)

// Kind - имя таймера. Совпадает с типом события, которое он порождает.
type Kind string

// Key различает независимые таймеры. Subject позволяет держать отдельный
// таймер на каждую сущность (например, ожидание свежего шара).
type Key struct {
	Kind    Kind
	Subject types.EntityID
}

// Fired - сработавший таймер.
type Fired struct {
	Key Key
	At  time.Duration // Срок срабатывания по часам планировщика
}

type entry struct {
	key       Key
	deadline  time.Duration
	interval  time.Duration
	repeat    bool
	seq       uint64
	cancelled bool
}

// Scheduler - набор именованных таймеров поверх очереди с приоритетом.
// Часы двигаются только через Advance, один раз за кадр; таймеры никогда
// не выполняют код сами, они лишь возвращаются из Advance.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	queue  entryHeap
	active map[Key]*entry
}

func NewScheduler() *Scheduler {
	return &Scheduler{active: make(map[Key]*entry)}
}

// Now - текущее время часов планировщика.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Arm взводит таймер заново. Интервал <= 0 означает отмену.
func (s *Scheduler) Arm(key Key, interval time.Duration, repeat bool) {
	s.Disarm(key)
	if interval <= 0 {
		return
	}
	s.push(key, s.now+interval, interval, repeat)
}

// Disarm отменяет таймер. Повторный вызов безопасен.
func (s *Scheduler) Disarm(key Key) {
	if e, ok := s.active[key]; ok {
		e.cancelled = true
		delete(s.active, key)
	}
}

// Armed сообщает, взведён ли таймер.
func (s *Scheduler) Armed(key Key) bool {
	_, ok := s.active[key]
	return ok
}

// Interval возвращает интервал взведённого таймера.
func (s *Scheduler) Interval(key Key) (time.Duration, bool) {
	e, ok := s.active[key]
	if !ok {
		return 0, false
	}
	return e.interval, true
}

// Remaining - сколько осталось до срабатывания.
func (s *Scheduler) Remaining(key Key) (time.Duration, bool) {
	e, ok := s.active[key]
	if !ok {
		return 0, false
	}
	return e.deadline - s.now, true
}

// Advance сдвигает часы на dt и возвращает все созревшие таймеры в порядке
// сроков. Повторяющийся таймер за один вызов срабатывает не больше одного раза.
func (s *Scheduler) Advance(dt time.Duration) []Fired {
	if dt > 0 {
		s.now += dt
	}
	var fired []Fired
	for s.queue.Len() > 0 {
		top := s.queue[0]
		if top.cancelled {
			heap.Pop(&s.queue)
			continue
		}
		if top.deadline > s.now {
			break
		}
		heap.Pop(&s.queue)
		fired = append(fired, Fired{Key: top.key, At: top.deadline})
		if !top.repeat {
			delete(s.active, top.key)
			continue
		}
		next := top.deadline + top.interval
		if next <= s.now {
			next = s.now + top.interval
		}
		s.push(top.key, next, top.interval, true)
	}
	return fired
}

// Reset отменяет все таймеры.
func (s *Scheduler) Reset() {
	for key := range s.active {
		s.Disarm(key)
	}
	s.queue = s.queue[:0]
}

func (s *Scheduler) push(key Key, deadline, interval time.Duration, repeat bool) {
	s.seq++
	e := &entry{key: key, deadline: deadline, interval: interval, repeat: repeat, seq: s.seq}
	s.active[key] = e
	heap.Push(&s.queue, e)
}

// entryHeap упорядочивает записи по сроку, при равенстве - по порядку взвода.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].deadline == h[j].deadline {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline < h[j].deadline
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(*entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
