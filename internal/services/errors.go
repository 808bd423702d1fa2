package services

import (
	"errors"

	"github.com/wrdo/hunt/internal/repository"
)

// Sentinel errors surfaced to handlers. Repository errors are re-exported so
// handlers only ever match against the services package.
var (
	ErrUnauthorized      = errors.New("not authorized")
	ErrSymbolUnknown     = errors.New("unknown symbol")
	ErrInvalidConfig     = errors.New("invalid rotation config")
	ErrWatchlistNotFound = repository.ErrWatchlistNotFound
	ErrConflict          = repository.ErrWatchlistConflict
	ErrSymbolNotFound    = repository.ErrSymbolNotFound
	ErrEntryNotFound     = repository.ErrEntryNotFound
	ErrSessionNotFound   = repository.ErrSessionNotFound
	ErrBacktestNotFound  = repository.ErrBacktestNotFound
)
