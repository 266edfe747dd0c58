// internal/assets/fonts.go
package assets

import (
	"log"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFont - имя TTF-файла в assets/fonts.
const DefaultFont = "arial.ttf"

// LoadFace загружает TTF заданного размера. Без файла используется
// встроенный растровый шрифт, игра остаётся играбельной.
func LoadFace(root, name string, size float64) font.Face {
	path := filepath.Join(root, "fonts", name)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARNING: Font %s not found, using the built-in face: %v", path, err)
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		log.Printf("WARNING: Failed to parse font %s: %v", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: Failed to create face for %s: %v", path, err)
		return basicfont.Face7x13
	}
	return face
}
