package display

// Theme holds the visual styling of the page.
var Theme = struct {
	// Canvas element the visualizer draws on
	CanvasID string

	// Background fill; particles are drawn over it every frame
	BackgroundColor string

	// Stats overlay
	PanelBackground string
	PanelBorder     string
	PanelTitleColor string
	LabelColor      string
	SectionColor    string
	ValueColor      string
	DimValueColor   string
	ActiveColor     string
	WarningColor    string
	ErrorColor      string

	// Fonts
	TitleFont string
	StatFont  string
}{
	CanvasID: "c",

	BackgroundColor: "#000",

	PanelBackground: "rgba(0, 0, 0, 0.75)",
	PanelBorder:     "#FF6B1A",
	PanelTitleColor: "#FF6B1A",
	LabelColor:      "#cccccc",
	SectionColor:    "#666666",
	ValueColor:      "#ffffff",
	DimValueColor:   "#aaaaaa",
	ActiveColor:     "#00ff00",
	WarningColor:    "#ffff00",
	ErrorColor:      "#ff0000",

	TitleFont: "bold 14px monospace",
	StatFont:  "12px monospace",
}
