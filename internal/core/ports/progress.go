package ports

import "go.trai.ch/sdkcompat/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

// ProgressLog exposes the steps recorded during the current run.
type ProgressLog interface {
	// Steps returns every step in the order it was first seen.
	Steps() []domain.Step
}
