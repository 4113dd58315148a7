package rangemap

import (
	"sync"

	"github.com/katalvlaran/spans/interval"
)

// Pipeline is an ordered chain of stages. It is safe for concurrent use;
// the composition is computed once, on first demand.
type Pipeline struct {
	stages []Stage
	opts   Options

	once     sync.Once
	composed interval.Set[int64]
}

// NewPipeline returns a pipeline applying stages in order.
func NewPipeline(stages []Stage, opts ...Option) (*Pipeline, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Pipeline{stages: append([]Stage(nil), stages...), opts: o}, nil
}

// Stages returns the pipeline's stages in application order.
func (p *Pipeline) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}

// Compose returns the single set equivalent to every stage applied in
// order. OnStage runs after each fold, the first time only.
func (p *Pipeline) Compose() interval.Set[int64] {
	p.once.Do(func() {
		var acc interval.Set[int64]
		for _, st := range p.stages {
			acc = acc.Merge(st.Map)
			p.opts.OnStage(st.Name, acc)
		}
		p.composed = acc
	})

	return p.composed
}

// Convert runs v through every stage one at a time.
func (p *Pipeline) Convert(v int64) int64 {
	for _, st := range p.stages {
		v = st.Map.Convert(v)
	}

	return v
}

// Lowest returns the smallest final value reachable from any key of query.
func (p *Pipeline) Lowest(query interval.Set[int64]) (int64, error) {
	if query.IsEmpty() {
		return 0, ErrEmptyQuery
	}
	lo, _ := p.Compose().Restrict(query).MinOutput()

	return lo, nil
}
