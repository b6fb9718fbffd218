package cli

import (
	"fmt"
	"io"
	"log/slog"

	opentracing "github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// jaegerLogger routes Jaeger's own messages to slog.
type jaegerLogger struct {
	logger *slog.Logger
}

func (l jaegerLogger) Error(msg string) {
	l.logger.Error(msg, "component", "jaeger")
}

func (l jaegerLogger) Infof(msg string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(msg, args...), "component", "jaeger")
}

// setupTracing installs a Jaeger tracer as the global OpenTracing tracer.
func setupTracing(logger *slog.Logger) (io.Closer, error) {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, err
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "graphql-editor"
	}
	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaegerLogger{logger: logger}))
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
