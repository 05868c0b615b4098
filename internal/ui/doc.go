package ui

// Package ui contains the Fyne-based desktop user interface: file dialogs
// driven by filedialog configurations, the full-text search results tab,
// and the settings dialog. All UI strings are localized via l10n.
