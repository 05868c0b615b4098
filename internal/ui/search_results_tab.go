package ui

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bibshelf/internal/l10n"
	"github.com/ytget/bibshelf/internal/search"
)

// SearchResultsTab renders full-text search hits as file and page links
type SearchResultsTab struct {
	localization *l10n.Localization
	openFile     func(path string) error
	onError      func(error)

	content *fyne.Container
	tab     *container.TabItem
	result  *search.Result
}

// NewSearchResultsTab creates the tab. openFile is called when a link is
// tapped; its error is passed to onError when set.
func NewSearchResultsTab(localization *l10n.Localization, openFile func(path string) error, onError func(error)) *SearchResultsTab {
	t := &SearchResultsTab{
		localization: localization,
		openFile:     openFile,
		onError:      onError,
		content:      container.NewVBox(),
	}

	scroll := container.NewVScroll(t.content)
	scroll.SetMinSize(fyne.NewSize(0, ResultsMinHeight))
	t.tab = container.NewTabItem(localization.Lang(l10n.KeySearchResults), scroll)
	t.showEmpty()
	return t
}

// TabItem returns the tab for a container.AppTabs
func (t *SearchResultsTab) TabItem() *container.TabItem {
	return t.tab
}

// Result returns the result currently shown, or nil
func (t *SearchResultsTab) Result() *search.Result {
	return t.result
}

// CreateFileLink returns a link labelled with the file name that opens the file
func (t *SearchResultsTab) CreateFileLink(path string) *widget.Hyperlink {
	text := filepath.Base(path)
	if text == "." || text == string(filepath.Separator) {
		text = path
	}

	link := widget.NewHyperlink(IconFile+" "+text, nil)
	link.OnTapped = func() { t.open(path) }
	return link
}

// CreatePageLink returns a "Page N" link. It does nothing when tapped until
// a target is attached with OnTapped.
func (t *SearchResultsTab) CreatePageLink(page int) *widget.Hyperlink {
	link := widget.NewHyperlink(fmt.Sprintf(t.localization.Lang(l10n.KeyPage), page), nil)
	link.OnTapped = func() {}
	return link
}

// SetResult replaces the tab content with the given result
func (t *SearchResultsTab) SetResult(result *search.Result) {
	t.result = result
	t.content.RemoveAll()

	if result.IsEmpty() {
		t.showEmpty()
	} else {
		for _, file := range result.Files {
			t.content.Add(t.CreateFileLink(file.Path))
			for _, hit := range file.Hits {
				t.content.Add(t.hitRow(file.Path, hit))
			}
		}
	}

	if result != nil && len(result.Failures) > 0 {
		msg := fmt.Sprintf(FailureFormat, t.localization.Lang(l10n.KeyUnreadableFiles), len(result.Failures))
		t.content.Add(widget.NewLabelWithStyle(msg, fyne.TextAlignLeading, fyne.TextStyle{Italic: true}))
	}

	t.content.Refresh()
}

// Refresh re-renders with the current language
func (t *SearchResultsTab) Refresh() {
	t.tab.Text = t.localization.Lang(l10n.KeySearchResults)
	t.SetResult(t.result)
}

func (t *SearchResultsTab) hitRow(path string, hit search.Hit) fyne.CanvasObject {
	pageLink := t.CreatePageLink(hit.Page)
	pageLink.OnTapped = func() { t.open(path) }

	snippet := widget.NewLabel(hit.Snippet)
	snippet.Wrapping = fyne.TextWrapWord

	return container.NewBorder(nil, nil, pageLink, nil, snippet)
}

func (t *SearchResultsTab) showEmpty() {
	t.content.RemoveAll()
	t.content.Add(widget.NewLabel(t.localization.Lang(l10n.KeyNoResults)))
}

func (t *SearchResultsTab) open(path string) {
	if t.openFile == nil {
		return
	}
	if err := t.openFile(path); err != nil {
		log.Printf("Error opening file %s: %v", path, err)
		if t.onError != nil {
			t.onError(fmt.Errorf("%s: %w", t.localization.Lang(l10n.KeyErrorOpeningFile), err))
		}
	}
}
