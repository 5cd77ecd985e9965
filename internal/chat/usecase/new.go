package usecase

import (
	"emoch-backend/internal/chat/repository"
	"emoch-backend/pkg/gemini"
	"emoch-backend/pkg/log"
)

// Config tunes the conversation orchestration.
type Config struct {
	// ContextWindow caps how many stored messages are sent to the
	// generator, independent of the storage bound.
	ContextWindow int
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l    log.Logger
	llm  gemini.IGemini
	repo repository.SessionRepository
	cfg  Config
}

// New creates a new chat UseCase implementation.
func New(l log.Logger, llm gemini.IGemini, repo repository.SessionRepository, cfg Config) *implUseCase {
	if cfg.ContextWindow <= 0 {
		cfg.ContextWindow = DefaultContextWindow
	}

	return &implUseCase{
		l:    l,
		llm:  llm,
		repo: repo,
		cfg:  cfg,
	}
}
