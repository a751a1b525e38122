package config

import "strings"

// AppVersion is the version of the tool, set at link time.
var AppVersion string

// AppName is the name of the tool.
const AppName = "Tapetovac"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// Canvas defaults
const (
	DefaultFinalWidth    = 1920
	DefaultFinalHeight   = 1200
	DefaultBottomPadding = 2 * 30
	DefaultResizedSuffix = "-resized"
	DefaultQuality       = 95
)
