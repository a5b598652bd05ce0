package usecase

import (
	"time"

	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/service/assets"
	"github.com/secmon-lab/yearbound/pkg/service/pdf"
)

type UseCases struct {
	repo    interfaces.Repository
	storage interfaces.ArtifactStorage
	assets  *assets.Library
	gen     *pdf.Generator
	now     func() time.Time

	Yearbook *YearbookUseCase
}

type Option func(*UseCases)

func WithStorage(storage interfaces.ArtifactStorage) Option {
	return func(uc *UseCases) {
		uc.storage = storage
	}
}

func WithAssets(lib *assets.Library) Option {
	return func(uc *UseCases) {
		uc.assets = lib
	}
}

func WithGenerator(gen *pdf.Generator) Option {
	return func(uc *UseCases) {
		uc.gen = gen
	}
}

// WithClock overrides the time source, used by tests to pin object keys
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Yearbook = NewYearbookUseCase(uc.repo, uc.storage, uc.assets, uc.gen, uc.now)

	return uc
}
