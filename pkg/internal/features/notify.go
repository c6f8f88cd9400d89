package features

import "github.com/audioglyph/helix/pkg/internal/types"

// NotifyLoggers sends a message to all attached loggers at the given level.
func (e *Extractor) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range e.snapshotLoggers() {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

func (e *Extractor) snapshotLoggers() []types.Logger {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	if len(e.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(e.loggers))
	copy(out, e.loggers)
	return out
}

func (e *Extractor) snapshotSensors() []types.Sensor {
	e.sensorLock.Lock()
	defer e.sensorLock.Unlock()
	if len(e.sensors) == 0 {
		return nil
	}
	out := make([]types.Sensor, len(e.sensors))
	copy(out, e.sensors)
	return out
}
