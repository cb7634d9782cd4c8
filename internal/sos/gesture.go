package sos

const (
	// MaxDragPixels - ширина слайдера, соответствующая прогрессу 100
	MaxDragPixels = 280.0
	// CompletionThreshold - прогресс, при котором свайп считается завершенным
	CompletionThreshold = 90.0
)

// Gesture отслеживает перетаскивание ползунка SOS.
// Не потокобезопасен, владелец (Machine) защищает его своим мьютексом.
type Gesture struct {
	active   bool
	startX   float64
	progress float64
}

// Begin фиксирует начальную координату нажатия
func (g *Gesture) Begin(x float64) {
	g.active = true
	g.startX = x
	g.progress = 0
}

// Move пересчитывает прогресс. Возвращает true, если порог достигнут,
// в этом случае перетаскивание заканчивается сразу, не дожидаясь отпускания.
func (g *Gesture) Move(x float64) (bool, error) {
	if !g.active {
		return false, ErrNotDragging
	}
	g.progress = clamp((x-g.startX)/MaxDragPixels*100, 0, 100)
	if g.progress >= CompletionThreshold {
		g.active = false
		return true, nil
	}
	return false, nil
}

// End обрабатывает отпускание: незавершенный жест сбрасывает прогресс в 0
func (g *Gesture) End() error {
	if !g.active {
		return ErrNotDragging
	}
	g.active = false
	if g.progress < CompletionThreshold {
		g.progress = 0
	}
	return nil
}

func (g *Gesture) Reset() {
	*g = Gesture{}
}

func (g *Gesture) Progress() float64 { return g.progress }
func (g *Gesture) Active() bool      { return g.active }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
