package l10n

// Package l10n provides UI and file type description translations. Lookups
// fall back to English and then to the key itself.
