package framemeter

import "github.com/audioglyph/helix/pkg/internal/types"

// NotifyLoggers sends a message to all attached loggers at the given level.
func (m *Meter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range m.snapshotLoggers() {
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

func (m *Meter) snapshotLoggers() []types.Logger {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	if len(m.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(m.loggers))
	copy(out, m.loggers)
	return out
}

func (m *Meter) snapshotSensors() []types.Sensor {
	m.sensorLock.Lock()
	defer m.sensorLock.Unlock()
	if len(m.sensors) == 0 {
		return nil
	}
	out := make([]types.Sensor, len(m.sensors))
	copy(out, m.sensors)
	return out
}
