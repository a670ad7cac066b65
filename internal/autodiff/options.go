package autodiff

// TraceStep describes one propagation step of a backward pass.
type TraceStep struct {
	Node      NodeID
	Op        Op
	Grad      float32 // gradient of Node within this pass
	Left      NodeID
	Right     NodeID
	LeftGrad  float32 // contribution added to Left
	RightGrad float32 // contribution added to Right
}

// TraceFunc receives every propagation step in processing order.
type TraceFunc func(TraceStep)

// Option configures a backward pass.
type Option func(*backwardConfig)

type backwardConfig struct {
	trace TraceFunc
}

// WithTrace installs a hook invoked for each operator node as its gradient
// is distributed to its operands.
func WithTrace(fn TraceFunc) Option {
	return func(c *backwardConfig) { c.trace = fn }
}

func newBackwardConfig(opts []Option) backwardConfig {
	var c backwardConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
