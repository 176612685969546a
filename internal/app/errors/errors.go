package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrConfigExists           = errors.New("config file already exists, use --force to overwrite")
	ErrFailedToGenerateConfig = errors.New("failed to generate config file")

	ErrInvalidBufferCapacity   = errors.New("buffer capacity must be greater than zero")
	ErrInvalidEvictionFraction = errors.New("buffer eviction fraction must be in (0, 1]")
	ErrInvalidEvictionCap      = errors.New("buffer eviction cap must be greater than zero")
	ErrInvalidChunkDivisor     = errors.New("buffer chunk divisor must be greater than zero")
	ErrInvalidMaxExtent        = errors.New("buffer max extent must be greater than zero")
	ErrInvalidCauseDepth       = errors.New("buffer max cause depth must be greater than zero")
	ErrInvalidSourceBatch      = errors.New("source batch must be greater than zero")
	ErrInvalidSourcePattern    = errors.New("invalid source pattern")

	ErrMalformedEvent = errors.New("malformed log event")
	ErrCyclicCause    = errors.New("cause chain does not terminate")
	ErrCauseTooDeep   = errors.New("cause chain exceeds depth bound")

	ErrNoInput           = errors.New("no input: pass files, --dir or pipe events on stdin")
	ErrFailedToOpenInput = errors.New("failed to open input")
	ErrFailedToReadInput = errors.New("failed to read input")
	ErrFailedToWatch     = errors.New("failed to watch directory")
	ErrExecutorStopped   = errors.New("view executor stopped")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
