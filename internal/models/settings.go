package models

// TrayConfig holds status-bar presentation settings.
type TrayConfig struct {
	Title   string `yaml:"title"`
	Tooltip string `yaml:"tooltip"`
}

// WindowConfig holds settings for the home page server.
type WindowConfig struct {
	Listen string `yaml:"listen"` // host:port, port 0 picks a free port
	Title  string `yaml:"title"`
}

// SearchConfig holds settings for the home page search box.
type SearchConfig struct {
	Engine string `yaml:"engine"` // query is appended URL-escaped
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Settings represents global application settings.
// This corresponds to ~/.gtools/settings.yaml.
type Settings struct {
	Version int          `yaml:"version"`
	Tray    TrayConfig   `yaml:"tray"`
	Window  WindowConfig `yaml:"window"`
	Search  SearchConfig `yaml:"search"`
	Log     LogConfig    `yaml:"log"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Tray: TrayConfig{
			Title:   "",
			Tooltip: "GTools",
		},
		Window: WindowConfig{
			Listen: "127.0.0.1:0",
			Title:  "GTools",
		},
		Search: SearchConfig{
			Engine: "https://www.bing.com/search?q=",
		},
	}
}

// ApplyDefaults fills fields left empty in a partially written settings file.
func (s *Settings) ApplyDefaults() {
	def := NewSettings()
	if s.Version == 0 {
		s.Version = def.Version
	}
	if s.Tray.Tooltip == "" {
		s.Tray.Tooltip = def.Tray.Tooltip
	}
	if s.Window.Listen == "" {
		s.Window.Listen = def.Window.Listen
	}
	if s.Window.Title == "" {
		s.Window.Title = def.Window.Title
	}
	if s.Search.Engine == "" {
		s.Search.Engine = def.Search.Engine
	}
}
