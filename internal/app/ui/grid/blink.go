package grid

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	empty = "◯"
	full  = "◉"

	blinkFPS = ticksPerSecond

	// Spring physics parameters
	blinkAngularFrequency = 8.0
	blinkDampingRatio     = 0.7

	// Pulse pattern: ◉ for blinkOnTicks, ◯ for blinkOffTicks
	blinkOnTicks  = 2
	blinkOffTicks = 3

	blinkFrameThreshold = 0.3

	blinkPositionFull  = 1.0
	blinkPositionEmpty = 0.0
)

// Blink is the jump cue shown when rows arrive while the list is frozen
type Blink struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	on        bool
	tickCount int
}

// NewBlink creates an idle blink animator
func NewBlink() *Blink {
	return &Blink{
		spring: harmonica.NewSpring(harmonica.FPS(blinkFPS), blinkAngularFrequency, blinkDampingRatio),
	}
}

// Start begins the blinking animation
func (b *Blink) Start() {
	if b.active {
		return
	}

	b.active = true
	b.on = true
	b.target = blinkPositionFull
	b.tickCount = 0
}

// Stop ends the blinking animation and resets to empty state
func (b *Blink) Stop() {
	b.active = false
	b.on = false
	b.target = blinkPositionEmpty
	b.position = blinkPositionEmpty
	b.velocity = blinkPositionEmpty
	b.tickCount = 0
}

// Update advances the animation (called on each UI tick)
func (b *Blink) Update() {
	if !b.active {
		return
	}

	b.tickCount++

	switch {
	case b.on && b.tickCount >= blinkOnTicks:
		b.on = false
		b.target = blinkPositionEmpty
		b.tickCount = 0
	case !b.on && b.tickCount >= blinkOffTicks:
		b.on = true
		b.target = blinkPositionFull
		b.tickCount = 0
	}

	b.position, b.velocity = b.spring.Update(b.position, b.velocity, b.target)
}

// Frame returns the current frame based on the spring position
func (b *Blink) Frame() string {
	if !b.active || b.position < blinkFrameThreshold {
		return empty
	}

	return full
}

// Render returns the styled frame
func (b *Blink) Render(style lipgloss.Style) string {
	return style.Render(b.Frame())
}

// IsActive returns whether the animation is currently running
func (b *Blink) IsActive() bool {
	return b.active
}
