// Package autorelease runs the background approver for escrow releases
// whose client let the auto-release date pass after the freelancer
// requested release.
package autorelease

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taskhive/paycore/internal/config"
	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/service/escrowservice"
)

var processingReleases sync.Map

type EscrowService interface {
	AutoRelease(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error)
}

type Service struct {
	escrowRepo     escrowservice.EscrowRepo
	escrow         EscrowService
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, escrowRepo escrowservice.EscrowRepo, escrow EscrowService) *Service {
	return &Service{
		escrowRepo:     escrowRepo,
		escrow:         escrow,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.AutoReleaseInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Auto-release service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping auto-release service")
			return
		case <-ticker.C:
			s.processDue(ctx)
		}
	}
}

func (s *Service) processDue(ctx context.Context) {
	releases, err := s.escrowRepo.FindDueForAutoRelease(ctx, time.Now(), s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch due escrow releases", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, release := range releases {
		release := release

		if _, loaded := processingReleases.LoadOrStore(release.PaymentID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingReleases.Delete(release.PaymentID)
				return s.handleRelease(ctx, release)
			})
			if err != nil {
				processingReleases.Delete(release.PaymentID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing due escrow releases", zap.Error(err))
	}
}

func (s *Service) handleRelease(ctx context.Context, release domain.EscrowRelease) error {
	_, err := s.escrow.AutoRelease(ctx, release.PaymentID)
	if errors.Is(err, escrowservice.ErrInvalidStateTransition) {
		// disputed, cancelled or approved since the scan; nothing to do
		return nil
	}
	if err != nil {
		return err
	}
	zap.L().Info("escrow auto-released", zap.String("paymentID", release.PaymentID.String()))
	return nil
}
