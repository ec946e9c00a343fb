package logger

// LoggerInstance is the interface a logging backend has to satisfy to be
// registered with the package-level logger.
type LoggerInstance interface {
	Log(message string, keyvals ...any)
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
	Fatal(message string, keyvals ...any)
}

// Logger fans out every log call to all registered backends.
type Logger struct {
	instances []LoggerInstance
}

var singleton *Logger

// Init registers the given backends as the global logger. Until Init is
// called every logging function is a no-op, which keeps the library usable
// without any logging configured.
func Init(instances ...LoggerInstance) {
	singleton = &Logger{
		instances: instances,
	}
}

func each(fn func(instance LoggerInstance)) {
	if singleton == nil {
		return
	}
	for _, instance := range singleton.instances {
		fn(instance)
	}
}

// Log writes a message at the default level to all backends.
func Log(message string, keyvals ...any) {
	each(func(instance LoggerInstance) {
		instance.Log(message, keyvals...)
	})
}

// Debug writes a message at DEBUG level to all backends.
func Debug(message string, keyvals ...any) {
	each(func(instance LoggerInstance) {
		instance.Debug(message, keyvals...)
	})
}

// Info writes a message at INFO level to all backends.
func Info(message string, keyvals ...any) {
	each(func(instance LoggerInstance) {
		instance.Info(message, keyvals...)
	})
}

// Warn writes a message at WARN level to all backends.
func Warn(message string, keyvals ...any) {
	each(func(instance LoggerInstance) {
		instance.Warn(message, keyvals...)
	})
}

// Error writes a message at ERROR level to all backends.
func Error(message string, keyvals ...any) {
	each(func(instance LoggerInstance) {
		instance.Error(message, keyvals...)
	})
}

// Fatal writes a message at FATAL level and terminates the program.
func Fatal(message string, keyvals ...any) {
	each(func(instance LoggerInstance) {
		instance.Fatal(message, keyvals...)
	})
}
