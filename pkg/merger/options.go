package merger

// Option configures a merge engine.
type Option func(*Merger)

// WithStrategy sets the attribute merge strategy.
func WithStrategy(s Strategy) Option {
	return func(m *Merger) {
		if s != nil {
			m.strategy = s
		}
	}
}
