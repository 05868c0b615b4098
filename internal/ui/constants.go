package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconLibrary  = "📚"
)

// Text fragments
const (
	FailureFormat = "%s: %d"
)

// Layout sizing
const (
	WindowMinWidth   float32 = 720
	WindowMinHeight  float32 = 480
	SettingsWidth    float32 = 480
	SettingsHeight   float32 = 320
	ResultsMinHeight float32 = 240
)

// Export defaults
const (
	ExportFileName    = "search-results.txt"
	ExportPermissions = 0644
)
