package platform

// Package platform contains OS integration: opening documents with the
// default application, revealing them in the file manager, and locating
// the user's default working directory.
