// internal/component/player.go
package component

// Player хранит состояние стрелка: границы хода и визуальное состояние.
type Player struct {
	MinX, MaxX float64
	Firing     bool // Стрела в полёте
	Facing     int  // -1 влево, 1 вправо, 0 стоит
	Visible    bool // Мигание во время неуязвимости
}
