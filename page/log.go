package page

import "go.uber.org/zap"

// log is package-level and nil-safe by construction (zap.NewNop() never
// panics on any call): the engine is a library, so it never forces a
// logging configuration on its caller. SetLogger lets a host wire in its
// own *zap.Logger.
var log = zap.NewNop().Sugar()

// SetLogger replaces the package logger. Pass nil to go back to
// discarding log output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		log = zap.NewNop().Sugar()
		return
	}
	log = l.Sugar()
}
