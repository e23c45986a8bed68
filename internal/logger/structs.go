package logger

// Console writes log events to stdout and stderr.
type Console struct {
	Enabled bool
	// Pretty switches from JSON lines to zerolog's human readable console format.
	Pretty bool
}

// Rotation describes one lumberjack managed log file.
type Rotation struct {
	Name       string // file name below Files.Dir
	MaxSize    int    // megabytes before rotating
	MaxBackups int
	MaxAge     int // days
}

// Files groups the rolling log files, one per level group plus the access log.
type Files struct {
	Enabled bool
	Dir     string

	Access Rotation
	Error  Rotation // error, fatal and panic
	Warn   Rotation
	Info   Rotation // info and debug
	Trace  Rotation
}

// Log is the logging section of the portal config.
type Log struct {
	LogLevel string // trace, debug, info, warn or error

	AppName     string
	ServiceName string

	// AccessLogToConsole mirrors the access log to stdout when Console is enabled.
	AccessLogToConsole bool
	ReportCaller       bool
	SkipCheckAlive     bool

	Console Console
	Files   Files
}
