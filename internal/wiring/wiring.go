// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sdkcompat/internal/adapters/cas"
	_ "go.trai.ch/sdkcompat/internal/adapters/config"
	_ "go.trai.ch/sdkcompat/internal/adapters/logger"
	_ "go.trai.ch/sdkcompat/internal/adapters/modulemeta"
	_ "go.trai.ch/sdkcompat/internal/adapters/telemetry"
	_ "go.trai.ch/sdkcompat/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/sdkcompat/internal/app"
)
