package config

// app constants
const (
	AppName        = "beagle"
	AppDescription = "A bounded live grid for structured log events"

	LogLevel  = "info"
	LogFormat = "console"

	ConfigFile = "beagle.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "BEAGLE"

	Version = "0.3.0"
)

// buffer constants
const (
	BufferCapacity   = 20000
	EvictionFraction = 0.1
	EvictionCap      = 1024
	ChunkDivisor     = 5
	MaxExtent        = 20
	MaxCauseDepth    = 64
)

// source constants
const (
	SourceBatch   = 256
	SourcePattern = "*.jsonl"
	MaxLineSize   = 1 << 20
)

// layout constants
const (
	TimeFormat = "15:04:05.000"
)
