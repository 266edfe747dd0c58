// internal/assets/sprites.go
package assets

import (
	_ "image/jpeg"
	_ "image/png"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteCache загружает картинки из assets/images по требованию и держит их
// в памяти. Отсутствующий файл не ошибка: рендер рисует замену.
type SpriteCache struct {
	dir     string
	images  map[string]*ebiten.Image
	missing map[string]bool
}

// NewSpriteCache создаёт кэш для каталога с ресурсами.
func NewSpriteCache(root string) *SpriteCache {
	return &SpriteCache{
		dir:     filepath.Join(root, "images"),
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// Image возвращает картинку или nil, если её нет. Неудача логируется один раз.
func (c *SpriteCache) Image(name string) *ebiten.Image {
	if img, ok := c.images[name]; ok {
		return img
	}
	if c.missing[name] {
		return nil
	}
	path := filepath.Join(c.dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("WARNING: Failed to load image %s: %v. Drawing shapes instead.", path, err)
		c.missing[name] = true
		return nil
	}
	c.images[name] = img
	return img
}

// Preload загружает список картинок заранее, чтобы первый кадр не тормозил.
func (c *SpriteCache) Preload(names ...string) {
	loaded := 0
	for _, name := range names {
		if c.Image(name) != nil {
			loaded++
		}
	}
	log.Printf("Preloaded %d of %d images from %s", loaded, len(names), c.dir)
}

// Cleanup освобождает все картинки.
func (c *SpriteCache) Cleanup() {
	for name, img := range c.images {
		img.Deallocate()
		delete(c.images, name)
	}
	c.missing = make(map[string]bool)
}
