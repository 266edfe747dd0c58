// internal/synth/tones.go
package synth

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"go-superpang/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate совпадает с частотой аудио-контекста ebiten.
const SampleRate = beep.SampleRate(44100)

// Note - одна нота синтезированного сигнала.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Voice - замена звукового файла, если его нет на диске.
type Voice struct {
	Notes  []Note
	Volume float64 // 0..1
}

// Voices - голос для каждого звукового сигнала.
var Voices = map[event.EventType]Voice{
	event.CuePop:       {Notes: []Note{{660, 60 * time.Millisecond}}, Volume: 0.5},
	event.CueExplode:   {Notes: []Note{{330, 90 * time.Millisecond}}, Volume: 0.6},
	event.CueFire:      {Notes: []Note{{1320, 30 * time.Millisecond}}, Volume: 0.3},
	event.CueLevelPop:  {Notes: []Note{{523.25, 80 * time.Millisecond}, {783.99, 120 * time.Millisecond}}, Volume: 0.5},
	event.CuePlayerHit: {Notes: []Note{{220, 120 * time.Millisecond}, {147, 200 * time.Millisecond}}, Volume: 0.7},
	event.CueWinFanfare: {Notes: []Note{
		{523.25, 150 * time.Millisecond},
		{659.25, 150 * time.Millisecond},
		{783.99, 150 * time.Millisecond},
		{1046.5, 400 * time.Millisecond},
	}, Volume: 0.6},
}

// Streamer собирает голос из синусоид. Каждая нота затухает к концу,
// чтобы стык нот не щёлкал.
func Streamer(v Voice) (beep.Streamer, error) {
	if len(v.Notes) == 0 {
		return nil, fmt.Errorf("voice has no notes")
	}
	parts := make([]beep.Streamer, 0, len(v.Notes))
	for _, n := range v.Notes {
		sine, err := generators.SineTone(SampleRate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("cannot build %.1f Hz tone: %w", n.Freq, err)
		}
		total := SampleRate.N(n.Duration)
		parts = append(parts, &fade{streamer: beep.Take(total, sine), total: total})
	}
	return volume(beep.Seq(parts...), v.Volume), nil
}

// Render синтезирует голос сигнала в PCM.
func Render(cue event.EventType) ([]byte, error) {
	v, ok := Voices[cue]
	if !ok {
		return nil, fmt.Errorf("no voice for cue %q", cue)
	}
	s, err := Streamer(v)
	if err != nil {
		return nil, err
	}
	return PCM(s), nil
}

// PCM вычитывает поток до конца в 16-битный little-endian стерео,
// формат NewPlayerFromBytes.
func PCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// fade линейно гасит ноту к концу.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		k := 1 - float64(f.position)/float64(f.total)
		samples[i][0] *= k
		samples[i][1] *= k
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
