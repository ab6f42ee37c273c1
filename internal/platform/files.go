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
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Default folders
const (
	DownloadsDirName   = "Downloads"
	AndroidDownloadDir = "/sdcard/Download"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// OpenDirectory opens dir in the system file manager
func OpenDirectory(dir string) error {
	absPath, err := existingDir(dir)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSLinux:
		return openDirectoryLinux(absPath)
	case OSDarwin, OSWindows:
		args := OpenCommandFor(runtime.GOOS, absPath)
		return exec.Command(args[0], args[1:]...).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// OpenCommandFor returns the command line that opens dir on goos, or nil
// when the platform has no known file manager command
func OpenCommandFor(goos, dir string) []string {
	switch goos {
	case OSDarwin:
		return []string{OpenCommand, dir}
	case OSWindows:
		return []string{ExplorerCommand, dir}
	case OSLinux:
		return []string{XDGOpenCommand, dir}
	default:
		return nil
	}
}

// openDirectoryLinux tries xdg-open, then the common file managers
func openDirectoryLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// existingDir returns the absolute path of dir if it is an existing directory
func existingDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory path is empty")
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", absPath)
	}

	return absPath, nil
}

// DisplayPath returns the absolute form of dir for labels, or dir itself
// when it cannot be resolved
func DisplayPath(dir string) string {
	if dir == "" {
		return dir
	}
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return absPath
}

// IsDirectory reports whether dir exists and is a directory
func IsDirectory(dir string) bool {
	_, err := existingDir(dir)
	return err == nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if runtime.GOOS == OSAndroid || os.Getenv("ANDROID_DATA") != "" {
		return AndroidDownloadDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DownloadsDirName), nil
}

// BrowseStartDir picks the folder the directory picker opens in: the
// current output folder when it exists, otherwise the user's Downloads
// folder, otherwise the working directory
func BrowseStartDir(current string) string {
	if absPath, err := existingDir(current); err == nil {
		return absPath
	}

	if downloads, err := GetHomeDownloadsDir(); err == nil && IsDirectory(downloads) {
		return downloads
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}
