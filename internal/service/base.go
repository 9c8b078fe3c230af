// Package service wires the pool engine and its ledgers behind the HTTP
// handlers.
package service

import "log/slog"

// BaseService provides common dependencies for service types.
type BaseService struct {
	logger *slog.Logger
}
