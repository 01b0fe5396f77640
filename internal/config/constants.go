package config

// Environment variables are read with this prefix, e.g. INSIGHTS_PORT.
const envPrefix = "INSIGHTS"

const (
	SourceFS      = "fs"
	SourceFixture = "fixture"

	defaultEnvFile = ".env"
)
