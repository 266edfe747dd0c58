// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"go-superpang/internal/config"
)

// LoadBalloonTiers читает размеры шаров из JSON и заменяет ими таблицу
// BalloonTiers. Отсутствие файла не ошибка: остаются встроенные размеры.
// Файл должен описывать все размеры от 1 до MaxBalloonSize.
func LoadBalloonTiers(path string) error {
	file, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read balloon tiers file: %w", err)
	}

	var tiers []BalloonTier
	if err := json.Unmarshal(file, &tiers); err != nil {
		return fmt.Errorf("failed to unmarshal balloon tiers: %w", err)
	}

	library := make(map[int]BalloonTier, len(tiers))
	for _, t := range tiers {
		if t.Size < 1 || t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("invalid balloon tier %+v", t)
		}
		if _, dup := library[t.Size]; dup {
			return fmt.Errorf("duplicate balloon tier %d", t.Size)
		}
		library[t.Size] = t
	}
	for size := 1; size <= config.MaxBalloonSize; size++ {
		if _, ok := library[size]; !ok {
			return fmt.Errorf("balloon tiers miss size %d", size)
		}
	}

	BalloonTiers = library
	log.Printf("Loaded %d balloon tiers from %s", len(BalloonTiers), path)
	return nil
}
