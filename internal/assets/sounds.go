// internal/assets/sounds.go
package assets

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go-superpang/internal/defs"
	"go-superpang/internal/event"
	"go-superpang/internal/synth"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const themeVolume = 0.4

// cueSounds - какой файл звучит на какой сигнал.
var cueSounds = map[event.EventType]string{
	event.CuePop:        defs.SoundPop,
	event.CueExplode:    defs.SoundPop,
	event.CueLevelPop:   defs.SoundLevel,
	event.CueFire:       defs.SoundFire,
	event.CuePlayerHit:  defs.SoundOw,
	event.CueWinFanfare: defs.SoundApplause,
}

// SoundBank проигрывает звуковые сигналы сессии. Контекст создаётся один раз
// на процесс, поэтому банк тоже один и переживает перезапуски партии.
type SoundBank struct {
	ctx   *audio.Context
	dir   string
	clips map[event.EventType][]byte
	theme *audio.Player
}

// NewSoundBank декодирует звуки заранее. Если файла нет, сигнал
// синтезируется.
func NewSoundBank(root string) *SoundBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(synth.SampleRate))
	}
	b := &SoundBank{
		ctx:   ctx,
		dir:   filepath.Join(root, "audio"),
		clips: make(map[event.EventType][]byte),
	}
	for cue, name := range cueSounds {
		pcm, err := b.decodeFile(name)
		if err != nil {
			log.Printf("WARNING: %v. Using a synthesized tone for %s.", err, cue)
			if pcm, err = synth.Render(cue); err != nil {
				log.Printf("ERROR: Failed to synthesize %s: %v", cue, err)
				continue
			}
		}
		b.clips[cue] = pcm
	}
	return b
}

// Attach подписывает банк на сигналы диспетчера новой сессии.
func (b *SoundBank) Attach(d *event.Dispatcher) {
	d.SubscribeAll(event.Cues, b)
}

func (b *SoundBank) OnEvent(e event.Event) {
	pcm, ok := b.clips[e.Type]
	if !ok {
		return
	}
	b.ctx.NewPlayerFromBytes(pcm).Play()
}

// PlayTheme запускает фоновую музыку по кругу. Без файла играем в тишине.
func (b *SoundBank) PlayTheme() {
	if b.theme == nil {
		pcm, err := b.decodeFile(defs.SoundTheme)
		if err != nil {
			log.Printf("WARNING: %v. Playing without music.", err)
			return
		}
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := b.ctx.NewPlayer(loop)
		if err != nil {
			log.Printf("ERROR: Failed to create theme player: %v", err)
			return
		}
		player.SetVolume(themeVolume)
		b.theme = player
	}
	if err := b.theme.Rewind(); err != nil {
		log.Printf("ERROR: Failed to rewind theme: %v", err)
	}
	b.theme.Play()
}

// StopTheme останавливает музыку.
func (b *SoundBank) StopTheme() {
	if b.theme != nil {
		b.theme.Pause()
	}
}

// decodeFile читает ogg или wav и возвращает PCM в частоте контекста.
func (b *SoundBank) decodeFile(name string) ([]byte, error) {
	path := filepath.Join(b.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", path, err)
	}
	var stream io.Reader
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported sound format %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	return pcm, nil
}
