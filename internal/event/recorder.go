// internal/event/recorder.go
package event

// Recorder запоминает полученные события до следующего Reset.
// Сессия держит такой рекордер для звуковых сигналов кадра, тесты - для проверок.
type Recorder struct {
	Events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count - сколько раз пришло событие данного типа.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Types возвращает типы событий в порядке получения.
func (r *Recorder) Types() []EventType {
	types := make([]EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}
	return types
}

func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
