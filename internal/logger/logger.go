package logger

import "go.uber.org/zap"

// New builds the process-wide zap logger. Development mode uses the
// human-readable console encoder.
func New(mode string) (*zap.Logger, error) {
	if mode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
