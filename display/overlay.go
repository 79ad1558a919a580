package display

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/thermal-burst/burst"
)

// StatLine is one row of the stats panel.
type StatLine struct {
	Label   string
	Value   string
	Color   string
	Heading bool // section title; Value and Color are unused
}

// Stats is a snapshot of what the overlay shows.
type Stats struct {
	FPS       float64
	Particles int
	Capacity  int
	Dropped   int
	Counts    [len(burst.Variants)]int
	Raw       float64
	Smoothed  float64
	Energy    float64
	Source    string
}

// StatsFor snapshots scene.
func StatsFor(scene *burst.Scene, fps float64, source string) Stats {
	return Stats{
		FPS:       fps,
		Particles: scene.Particles.Len(),
		Capacity:  scene.Particles.MaxSize,
		Dropped:   scene.Particles.Dropped,
		Counts:    scene.Particles.Counts(),
		Raw:       scene.Raw,
		Smoothed:  scene.Smoothed(),
		Energy:    scene.Energy(),
		Source:    source,
	}
}

// Lines lays the snapshot out as panel rows.
func (s Stats) Lines() []StatLine {
	lines := []StatLine{
		{Label: "FPS", Value: strconv.FormatFloat(s.FPS, 'f', 1, 64), Color: Theme.ActiveColor},
		{Label: "── Particles ──", Heading: true},
		{Label: "Live", Value: strconv.Itoa(s.Particles) + "/" + strconv.Itoa(s.Capacity), Color: Theme.ValueColor},
	}
	for v, n := range s.Counts {
		lines = append(lines, StatLine{Label: burst.Variant(v).String(), Value: strconv.Itoa(n), Color: Theme.DimValueColor})
	}

	droppedColor := Theme.DimValueColor
	if s.Dropped > 0 {
		droppedColor = Theme.ErrorColor
	}
	lines = append(lines, StatLine{Label: "Dropped", Value: strconv.Itoa(s.Dropped), Color: droppedColor})

	energyColor := Theme.DimValueColor
	if s.Energy > burst.Tuning.SpawnThreshold {
		energyColor = Theme.ActiveColor
	}
	lines = append(lines,
		StatLine{Label: "── Volume ──", Heading: true},
		StatLine{Label: "Raw", Value: strconv.FormatFloat(s.Raw, 'f', 4, 64), Color: Theme.ValueColor},
		StatLine{Label: "Smoothed", Value: strconv.FormatFloat(s.Smoothed, 'f', 4, 64), Color: Theme.ValueColor},
		StatLine{Label: "Energy", Value: strconv.FormatFloat(s.Energy, 'f', 1, 64), Color: energyColor},
		StatLine{Label: "Source", Value: s.Source, Color: Theme.WarningColor},
	)
	return lines
}

// StatsOverlay displays live visualizer statistics.
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	PanelX     int
	PanelY     int
	LineHeight int
	PanelWidth int
}

// NewStatsOverlay creates a hidden overlay.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		PanelX:     16,
		PanelY:     16,
		LineHeight: 18,
		PanelWidth: 240,
	}
}

// Toggle toggles the overlay visibility.
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS counts a frame at currentTime (milliseconds) and refreshes the
// rate once per second.
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Render draws the panel.
func (s *StatsOverlay) Render(ctx *js.Object, stats Stats) {
	if !s.Visible {
		return
	}

	lines := stats.Lines()
	height := 40 + len(lines)*s.LineHeight

	ctx.Set("fillStyle", Theme.PanelBackground)
	ctx.Call("fillRect", s.PanelX, s.PanelY, s.PanelWidth, height)

	ctx.Set("strokeStyle", Theme.PanelBorder)
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.PanelX, s.PanelY, s.PanelWidth, height)

	ctx.Set("fillStyle", Theme.PanelTitleColor)
	ctx.Set("font", Theme.TitleFont)
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "THERMAL BURST [F10]", s.PanelX+10, s.PanelY+20)

	ctx.Set("font", Theme.StatFont)
	y := s.PanelY + 44
	for _, line := range lines {
		if line.Heading {
			ctx.Set("fillStyle", Theme.SectionColor)
			ctx.Call("fillText", line.Label, s.PanelX+10, y)
		} else {
			s.drawStatLine(ctx, line, y)
		}
		y += s.LineHeight
	}
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(ctx *js.Object, line StatLine, y int) {
	ctx.Set("fillStyle", Theme.LabelColor)
	ctx.Call("fillText", line.Label+":", s.PanelX+15, y)

	ctx.Set("fillStyle", line.Color)
	ctx.Set("textAlign", "right")
	ctx.Call("fillText", line.Value, s.PanelX+s.PanelWidth-15, y)
	ctx.Set("textAlign", "left")
}
