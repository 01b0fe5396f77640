package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `envconfig:"ENABLED" default:"true"`
	Port         string `envconfig:"PORT" default:"9090"`
	OtlpEndpoint string `envconfig:"OTLP_ENDPOINT"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"nba-insights-service"`
	OtlpInsecure bool   `envconfig:"OTLP_INSECURE" default:"true"`
}
