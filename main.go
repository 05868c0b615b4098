package main

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/bibshelf/internal/config"
	"github.com/ytget/bibshelf/internal/search"
	"github.com/ytget/bibshelf/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.bibshelf"
	AppName = "BibShelf"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	searchSvc := search.NewService(
		search.WithMaxParallel(settings.GetMaxParallelExtractions()),
		search.WithLogger(slog.Default().With("component", "search")),
	)

	ui.NewRootUI(myWindow, myApp, searchSvc)

	myWindow.ShowAndRun()
}
