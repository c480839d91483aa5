package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/autorelease"
	"github.com/taskhive/paycore/internal/config"
	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/handlers"
	"github.com/taskhive/paycore/internal/pg"
	"github.com/taskhive/paycore/internal/repo"
	"github.com/taskhive/paycore/internal/service"
	"github.com/taskhive/paycore/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	ext  *autorelease.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)

	escrowAccountID, feeAccountID, err := resolveSystemAccounts(ctx, a.repo)
	if err != nil {
		zap.L().Error("system account lookup failed: ", zap.Error(err))
		return fmt.Errorf("can't resolve system accounts: %w", err)
	}

	a.srv = service.New(cfg, a.repo, txManager, escrowAccountID, feeAccountID)
	a.api = handlers.New(a.srv)
	a.ext = autorelease.New(cfg, a.repo.EscrowRepo, a.srv.EscrowService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startAutoRelease(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// resolveSystemAccounts loads the escrow and platform fee accounts seeded
// by the migrations. Missing rows mean the schema is broken.
func resolveSystemAccounts(ctx context.Context, r *repo.Repositories) (int64, int64, error) {
	escrowAccount, err := r.AccountRepo.GetSystemAccount(ctx, domain.AccountKindEscrow)
	if err != nil {
		return 0, 0, err
	}
	if escrowAccount == nil {
		return 0, 0, fmt.Errorf("escrow account is not seeded")
	}
	feeAccount, err := r.AccountRepo.GetSystemAccount(ctx, domain.AccountKindPlatformFee)
	if err != nil {
		return 0, 0, err
	}
	if feeAccount == nil {
		return 0, 0, fmt.Errorf("platform fee account is not seeded")
	}
	return escrowAccount.ID, feeAccount.ID, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startAutoRelease(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.ext.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
