package filedialog

// Configuration is the settings snapshot produced by Builder.Build.
// Only the selected extension filter may change after construction.
type Configuration struct {
	initialDirectory string
	hasDirectory     bool
	initialFileName  string
	defaultExtension *ExtensionFilter
	extensionFilters []*ExtensionFilter

	selectedExtensionFilter *ExtensionFilter
}

// InitialDirectory returns the directory the dialog opens into.
// The second result is false when no usable directory was configured.
func (c *Configuration) InitialDirectory() (string, bool) {
	return c.initialDirectory, c.hasDirectory
}

// InitialFileName returns the preset file name, verbatim
func (c *Configuration) InitialFileName() string {
	return c.initialFileName
}

// DefaultExtension returns the default filter, or nil when there is none
func (c *Configuration) DefaultExtension() *ExtensionFilter {
	return c.defaultExtension
}

// ExtensionFilters returns the configured filters in insertion order
func (c *Configuration) ExtensionFilters() []*ExtensionFilter {
	out := make([]*ExtensionFilter, len(c.extensionFilters))
	copy(out, c.extensionFilters)
	return out
}

// SetSelectedExtensionFilter records the filter chosen in the open dialog.
// The filter does not have to be one of ExtensionFilters.
func (c *Configuration) SetSelectedExtensionFilter(filter *ExtensionFilter) {
	c.selectedExtensionFilter = filter
}

// SelectedExtensionFilter returns the last filter set, or nil
func (c *Configuration) SelectedExtensionFilter() *ExtensionFilter {
	return c.selectedExtensionFilter
}

// FilterFor returns the first configured filter matching fileName,
// trying the default filter before the list.
func (c *Configuration) FilterFor(fileName string) *ExtensionFilter {
	if c.defaultExtension.Matches(fileName) {
		return c.defaultExtension
	}
	for _, f := range c.extensionFilters {
		if f.Matches(fileName) {
			return f
		}
	}
	return nil
}

// ActiveFilters returns the filters a dialog should apply right now:
// the selected filter, else the default, else every configured filter.
func (c *Configuration) ActiveFilters() []*ExtensionFilter {
	if c.selectedExtensionFilter != nil {
		return []*ExtensionFilter{c.selectedExtensionFilter}
	}
	if c.defaultExtension != nil {
		return []*ExtensionFilter{c.defaultExtension}
	}
	return c.ExtensionFilters()
}
