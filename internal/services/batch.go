package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/logger"
)

// MaxBatchSize bounds the number of items in one batch.
const MaxBatchSize = 100

// RunBatch values every request concurrently, at most batchConcurrency at a
// time. A failing item is reported in its outcome and does not stop the
// others; outcomes are returned in request order. Cancelling ctx stops items
// that have not started and returns the context error.
func (s *valuationService) RunBatch(ctx context.Context, reqs []ValuationRequest) ([]BatchOutcome, error) {
	if len(reqs) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "batch must contain at least one valuation")
	}
	if len(reqs) > MaxBatchSize {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "batch exceeds the maximum of 100 valuations")
	}

	log := logger.FromContext(ctx)
	outcomes := make([]BatchOutcome, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = BatchOutcome{Index: i}
			out, err := s.Run(req)
			if err != nil {
				outcomes[i].Error = batchError(err)
				log.Debugw("batch item failed", "index", i, "code", outcomes[i].Error.Code)
				return nil
			}
			outcomes[i].Outcome = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var failed int
	for _, o := range outcomes {
		if o.Error != nil {
			failed++
		}
	}
	log.Infow("batch completed", "items", len(reqs), "failed", failed)
	return outcomes, nil
}

func batchError(err error) *BatchError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return &BatchError{Code: appErr.Code, Message: appErr.Message}
	}
	return &BatchError{Code: apperrors.ErrInternalServer.Code, Message: apperrors.ErrInternalServer.Message}
}
