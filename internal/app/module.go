package app

import (
	"go.uber.org/fx"

	"beagle/internal/app/buffer"
	"beagle/internal/app/cli"
	"beagle/internal/app/generator"
	"beagle/internal/app/monitor"
	"beagle/internal/app/projector"
	"beagle/internal/app/source"
	"beagle/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	projector.Module,
	buffer.Module,
	source.Module,
	monitor.Module,
	generator.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
