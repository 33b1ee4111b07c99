package dice

import "go.uber.org/zap"

// LoggedSource wraps a Source and logger so every draw leaves an audit trail.
// All draws are logged at debug level with the bound n and the value drawn.
type LoggedSource struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedSource creates a LoggedSource that draws from src and logs each
// draw to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedSource(src Source, logger *zap.Logger) *LoggedSource {
	if src == nil || logger == nil {
		panic("dice: NewLoggedSource requires non-nil src and logger")
	}
	return &LoggedSource{src: src, logger: logger}
}

// Intn draws from the wrapped Source and logs the result at debug level.
//
// Precondition: n > 0.
// Postcondition: the draw is logged; the value is in [0, n).
func (l *LoggedSource) Intn(n int) int {
	v := l.src.Intn(n)
	l.logger.Debug("combat draw",
		zap.Int("bound", n),
		zap.Int("value", v),
	)
	return v
}
