package monitoring

import (
	"time"

	"go.uber.org/zap"

	"github.com/sahakari/go-fd-product/internal/common/log"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err    error
	fields []zap.Field
}

type FinishOption func(*finishOptions)

// WithFinishCheckError marks the segment failed when err is non-nil.
func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishFields(fields ...zap.Field) FinishOption {
	return func(o *finishOptions) {
		o.fields = fields
	}
}

// Finish reports the segment duration. Failed segments log at warn so
// slow or erroring calls stand out without a tracing backend.
func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	fields := append(fOpts.fields,
		zap.String("segment", m.segmentName),
		zap.String("layer", m.layer),
		zap.Duration("took", time.Since(m.start)),
	)

	msg := messagePrefix[m.layer] + " " + m.segmentName

	if fOpts.err != nil {
		fields = append(fields, log.Err(fOpts.err))
		log.Warn(m.ctx, msg, fields...)
		return
	}

	log.Debug(m.ctx, msg, fields...)
}
