package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// DocumentsDirName is the folder tried before the home directory
const DocumentsDirName = "Documents"

// commandRunner executes an external command; replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	name, args, err := openCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return commandRunner(name, args...)
}

// RevealInFileManager shows the file in the system file manager.
// On Linux the containing directory is opened since selection is not standardized.
func RevealInFileManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	name, args, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return commandRunner(name, args...)
}

// DefaultWorkingDirectory returns ~/Documents when it exists, else the home
// directory, else the current directory.
func DefaultWorkingDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}

	docs := filepath.Join(home, DocumentsDirName)
	if info, err := os.Stat(docs); err == nil && info.IsDir() {
		return docs
	}
	return home
}

func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

func openCommand(goos, path string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{path}, nil
	case OSWindows:
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", path}, nil
	case OSLinux:
		return XDGOpenCommand, []string{path}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func revealCommand(goos, path string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{MacOSSelectFlag, path}, nil
	case OSWindows:
		return ExplorerCommand, []string{WindowsSelectParam, path}, nil
	case OSLinux:
		return XDGOpenCommand, []string{filepath.Dir(path)}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
