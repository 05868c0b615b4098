package filedialog

// Package filedialog describes how a native file dialog should be opened:
// initial directory, initial file name, the extension filters offered, and
// which filter is the default. A Builder accumulates the settings and never
// fails; invalid input degrades to "not set". The resulting Configuration is
// read-only apart from the filter the user selects while the dialog is open.
