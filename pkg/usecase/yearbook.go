package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
	"github.com/secmon-lab/yearbound/pkg/service/assets"
	"github.com/secmon-lab/yearbound/pkg/service/pdf"
	"github.com/secmon-lab/yearbound/pkg/utils/logging"
)

const (
	artifactContentType = "application/pdf"
	unknownUserName     = "Unknown User"
)

type YearbookUseCase struct {
	repo    interfaces.Repository
	storage interfaces.ArtifactStorage
	assets  *assets.Library
	gen     *pdf.Generator
	now     func() time.Time
}

func NewYearbookUseCase(repo interfaces.Repository, storage interfaces.ArtifactStorage, lib *assets.Library, gen *pdf.Generator, now func() time.Time) *YearbookUseCase {
	if now == nil {
		now = time.Now
	}
	return &YearbookUseCase{
		repo:    repo,
		storage: storage,
		assets:  lib,
		gen:     gen,
		now:     now,
	}
}

// GenerationResult describes one successful yearbook generation
type GenerationResult struct {
	AttemptID     string
	Email         types.Email
	ObjectKey     string
	Location      string
	PersonalPages int
	TotalPages    int
}

// Generate builds, merges and publishes the yearbook for one user.
//
// Eligibility is checked before any status record is written: an unknown
// email or a user who has not completed preferences returns
// ErrUserNotEligible and leaves no trace. Once a generating record is
// written, any later failure overwrites it with a failed record before the
// error is returned.
func (uc *YearbookUseCase) Generate(ctx context.Context, email types.Email) (*GenerationResult, error) {
	logger := logging.From(ctx)

	user, err := uc.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrUserNotEligible, "user does not exist", goerr.V(EmailKey, email))
		}
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V(EmailKey, email))
	}
	if !user.PreferencesCompleted {
		return nil, goerr.Wrap(ErrUserNotEligible, "user preferences are not completed", goerr.V(EmailKey, email))
	}

	attemptID := uuid.New().String()
	startedAt := uc.now()

	logger.Info("starting yearbook generation",
		"email", email,
		"attempt_id", attemptID)

	if err := uc.repo.Yearbook().Upsert(ctx, &model.GeneratedYearbook{
		Email:       email,
		Status:      types.GenerationStatusGenerating,
		GeneratedAt: startedAt,
		UpdatedAt:   startedAt,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to record generation start", goerr.V(EmailKey, email))
	}

	result, err := uc.generate(ctx, user, attemptID, startedAt)
	if err != nil {
		uc.markFailed(ctx, email, startedAt)
		return nil, goerr.Wrap(err, "yearbook generation failed",
			goerr.V(EmailKey, email),
			goerr.V(AttemptIDKey, attemptID))
	}

	logger.Info("yearbook generation completed",
		"email", email,
		"attempt_id", attemptID,
		"object_key", result.ObjectKey,
		"pages", result.TotalPages)

	return result, nil
}

func (uc *YearbookUseCase) generate(ctx context.Context, user *model.User, attemptID string, startedAt time.Time) (*GenerationResult, error) {
	input, err := uc.collect(ctx, user)
	if err != nil {
		return nil, err
	}

	personal, personalPages, err := uc.gen.Build(ctx, *input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compose personalized document")
	}

	base, err := uc.assets.BaseDocument()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load base document")
	}

	merged, err := pdf.Merge(base, personal)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge documents")
	}

	totalPages, err := pdf.MergedPageCount(merged)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to validate merged document")
	}

	key := fmt.Sprintf("yearbooks/%s_yearbook_%d.pdf", user.Email, uc.now().UnixMilli())
	location, err := uc.storage.Put(ctx, key, merged, artifactContentType)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to publish yearbook", goerr.V(ObjectKeyKey, key))
	}

	if err := uc.repo.Yearbook().Upsert(ctx, &model.GeneratedYearbook{
		Email:       user.Email,
		Status:      types.GenerationStatusCompleted,
		ObjectKey:   key,
		Location:    location,
		GeneratedAt: startedAt,
		UpdatedAt:   uc.now(),
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to record generation completion", goerr.V(ObjectKeyKey, key))
	}

	return &GenerationResult{
		AttemptID:     attemptID,
		Email:         user.Email,
		ObjectKey:     key,
		Location:      location,
		PersonalPages: personalPages,
		TotalPages:    totalPages,
	}, nil
}

// collect gathers the user's memories and conversation threads
func (uc *YearbookUseCase) collect(ctx context.Context, user *model.User) (*pdf.Input, error) {
	images, err := uc.repo.Image().ListByEmail(ctx, user.Email)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list uploaded images")
	}

	sent, err := uc.repo.Message().ListSent(ctx, user.Email)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list sent messages")
	}
	received, err := uc.repo.Message().ListReceived(ctx, user.Email)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list received messages")
	}

	threads := model.BuildThreads(user.Email, sent, received)
	for _, th := range threads {
		th.CounterpartName = uc.counterpartName(ctx, th.CounterpartEmail)
	}

	return &pdf.Input{
		ViewerName: user.DisplayName(),
		Memories:   model.GroupMemories(images),
		Threads:    threads,
	}, nil
}

// counterpartName resolves a display name, falling back to a placeholder
// when the counterpart has no user record. A lookup failure only degrades
// the label, never the generation.
func (uc *YearbookUseCase) counterpartName(ctx context.Context, email types.Email) string {
	counterpart, err := uc.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, interfaces.ErrNotFound) {
			logging.From(ctx).Warn("failed to resolve counterpart name",
				"email", email,
				"error", err)
		}
		return unknownUserName
	}
	return counterpart.DisplayName()
}

// markFailed overwrites the status record after a failed attempt. Best
// effort: a failed write here must not mask the original error.
func (uc *YearbookUseCase) markFailed(ctx context.Context, email types.Email, startedAt time.Time) {
	if err := uc.repo.Yearbook().Upsert(ctx, &model.GeneratedYearbook{
		Email:       email,
		Status:      types.GenerationStatusFailed,
		GeneratedAt: startedAt,
		UpdatedAt:   uc.now(),
	}); err != nil {
		logging.From(ctx).Error("failed to record generation failure",
			"email", email,
			"error", err)
	}
}

// BatchFailure is one failed user in a batch run
type BatchFailure struct {
	Email types.Email
	Err   error
}

// BatchReport summarizes a GenerateAll run
type BatchReport struct {
	Succeeded []*GenerationResult
	Failed    []*BatchFailure
}

// GenerateAll generates yearbooks for every user who has completed their
// preferences. Users are processed with at most concurrency in flight; a
// failing user is reported and never aborts the rest of the batch.
func (uc *YearbookUseCase) GenerateAll(ctx context.Context, concurrency int) (*BatchReport, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	users, err := uc.repo.User().ListCompleted(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list eligible users")
	}

	report := &BatchReport{}
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for _, user := range users {
		eg.Go(func() error {
			result, err := uc.Generate(ctx, user.Email)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed = append(report.Failed, &BatchFailure{
					Email: user.Email,
					Err:   err,
				})
				return nil
			}
			report.Succeeded = append(report.Succeeded, result)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "batch generation aborted")
	}

	return report, nil
}

// Status returns the current generation record for email
func (uc *YearbookUseCase) Status(ctx context.Context, email types.Email) (*model.GeneratedYearbook, error) {
	record, err := uc.repo.Yearbook().Get(ctx, email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrYearbookNotFound, "no generation has been attempted", goerr.V(EmailKey, email))
		}
		return nil, goerr.Wrap(err, "failed to read generation status", goerr.V(EmailKey, email))
	}
	return record, nil
}
