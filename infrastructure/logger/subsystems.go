package logger

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

// SubsystemTags is an enum of all sub system tags.
var SubsystemTags = struct {
	CHAN,
	POWC,
	GENM,
	MINR string
}{
	CHAN: "CHAN",
	POWC: "POWC",
	GENM: "GENM",
	MINR: "MINR",
}

// subsystemLoggers tracks all registered subsystem loggers.
var subsystemLoggers []*Logger

// RegisterSubSystem returns a logger for the given subsystem tag, creating
// it on the shared backend and tracking it for level changes.
func RegisterSubSystem(subsystem string) *Logger {
	log := BackendLog.Logger(subsystem)
	subsystemLoggers = append(subsystemLoggers, log)
	return log
}

// SetLogLevels sets the logging level of all registered subsystems.
func SetLogLevels(level Level) {
	for _, log := range subsystemLoggers {
		log.SetLevel(level)
	}
}
