package filetype

// Package filetype lists the predefined file types the application can open,
// save, or search. Each type carries its extensions (without dots) and a
// localization key for its human-readable description.
