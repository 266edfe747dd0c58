// internal/termui/speaker.go
package termui

import (
	"log"
	"time"

	"go-superpang/internal/event"
	"go-superpang/internal/synth"

	"github.com/gopxl/beep/speaker"
)

// Speaker проигрывает синтезированные сигналы через динамик beep.
type Speaker struct {
	voices map[event.EventType]synth.Voice
}

// NewSpeaker открывает аудиоустройство. Буфер 100 мс.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(synth.SampleRate, synth.SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{voices: synth.Voices}, nil
}

// Attach подписывает динамик на сигналы сессии.
func (s *Speaker) Attach(d *event.Dispatcher) {
	d.SubscribeAll(event.Cues, s)
}

func (s *Speaker) OnEvent(e event.Event) {
	v, ok := s.voices[e.Type]
	if !ok {
		return
	}
	st, err := synth.Streamer(v)
	if err != nil {
		log.Printf("ERROR: Failed to synthesize %s: %v", e.Type, err)
		return
	}
	speaker.Play(st)
}
