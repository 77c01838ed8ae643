package log

// MultiLogger sends events to multiple loggers, e.g. console output via
// SlogAdapter and file output via FileLogger at the same time.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that sends events to all provided
// loggers. Nil entries are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log sends the event to all configured loggers.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// FilterLogger forwards only the events matching its filter.
type FilterLogger struct {
	next   Logger
	filter Filter
}

// NewFilterLogger wraps next. The slog console typically skips
// CategoryRender, which changes once per second per running slot.
func NewFilterLogger(next Logger, filter Filter) *FilterLogger {
	return &FilterLogger{next: next, filter: filter}
}

// Log forwards the event if it matches.
func (f *FilterLogger) Log(event Event) {
	if f.filter.Matches(event) {
		f.next.Log(event)
	}
}

var (
	_ Logger = (*MultiLogger)(nil)
	_ Logger = (*FilterLogger)(nil)
)
