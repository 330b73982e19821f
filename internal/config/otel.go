package config

import "strings"

// Otel configures span export. Tracing stays local until OTEL_COLLECTOR_URL
// points at an OTLP/gRPC collector.
type Otel struct {
	ServiceName   string  `env:"OTEL_SERVICE_NAME"`
	Environment   string  `env:"APP_ENV"`
	CollectorURL  string  `env:"OTEL_COLLECTOR_URL"`
	CollectorAuth string  `env:"OTEL_COLLECTOR_AUTH"`
	Insecure      bool    `env:"OTEL_INSECURE"`
	TraceIDRatio  float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"0.1"`

	K8sPodName   string `env:"K8S_POD_NAME"`
	K8sNamespace string `env:"K8S_NAMESPACE"`
}

// ExportEnabled reports whether spans leave the process.
func (o Otel) ExportEnabled() bool {
	return strings.TrimSpace(o.CollectorURL) != ""
}
