package modes

import "github.com/audioglyph/helix/pkg/internal/types"

func dispatch(loggers []types.Logger, level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range loggers {
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

// NotifyLoggers sends a message to all attached loggers at the given level.
func (m *MicroMode) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	m.loggersLock.Lock()
	loggers := make([]types.Logger, len(m.loggers))
	copy(loggers, m.loggers)
	m.loggersLock.Unlock()
	dispatch(loggers, level, msg, keysAndValues...)
}

// NotifyLoggers sends a message to all attached loggers at the given level.
func (m *MacroMode) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	m.loggersLock.Lock()
	loggers := make([]types.Logger, len(m.loggers))
	copy(loggers, m.loggers)
	m.loggersLock.Unlock()
	dispatch(loggers, level, msg, keysAndValues...)
}

// NotifyLoggers sends a message to all attached loggers at the given level.
func (d *Director) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	d.loggersLock.Lock()
	loggers := make([]types.Logger, len(d.loggers))
	copy(loggers, d.loggers)
	d.loggersLock.Unlock()
	dispatch(loggers, level, msg, keysAndValues...)
}

func (d *Director) snapshotSensors() []types.Sensor {
	d.sensorLock.Lock()
	defer d.sensorLock.Unlock()
	if len(d.sensors) == 0 {
		return nil
	}
	out := make([]types.Sensor, len(d.sensors))
	copy(out, d.sensors)
	return out
}
