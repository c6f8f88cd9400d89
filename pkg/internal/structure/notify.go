package structure

import "github.com/audioglyph/helix/pkg/internal/types"

// NotifyLoggers sends a message to all attached loggers at the given level.
func (g *Generator) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range g.snapshotLoggers() {
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

// snapshotLoggers returns a stable snapshot of the logger slice. Never hold
// the lock while invoking logger methods.
func (g *Generator) snapshotLoggers() []types.Logger {
	g.loggersLock.Lock()
	defer g.loggersLock.Unlock()
	if len(g.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(g.loggers))
	copy(out, g.loggers)
	return out
}

func (g *Generator) snapshotSensors() []types.Sensor {
	g.sensorLock.Lock()
	defer g.sensorLock.Unlock()
	if len(g.sensors) == 0 {
		return nil
	}
	out := make([]types.Sensor, len(g.sensors))
	copy(out, g.sensors)
	return out
}
