package worker

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"tickl-backend/models"
	"tickl-backend/repository"
	"tickl-backend/services"
	"tickl-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

// Reconciler periodically sweeps user profiles and mints public links for
// completed profiles that are missing one. The trigger on profile update
// handles the normal path; the sweep catches profiles whose link creation
// failed mid-way.
type Reconciler struct {
	config      *models.Config
	workerCfg   *models.ReconcilerConfig
	userRepo    repository.UserRepositoryInterface
	linkService services.PublicLinkServiceInterface
	lockManager *LockManager
	logger      logger.Logger

	cronJob   *cron.Cron
	ownerID   string
	mu        sync.Mutex
	isRunning bool
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewReconciler(cfg *models.Config, userRepo repository.UserRepositoryInterface, linkService services.PublicLinkServiceInterface, log logger.Logger) (*Reconciler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = "localhost"
	}
	ownerID := fmt.Sprintf("reconciler-%s-%s", hostname, uuid.New().String()[:8])

	schedule := cfg.ReconcilerCronSchedule
	if schedule == "" {
		schedule = "0 */10 * * * *"
	}

	workerCfg := &models.ReconcilerConfig{
		CronSchedule: schedule,
		LockTimeout:  10 * time.Minute,
		LockFilePath: fmt.Sprintf("/tmp/tickl-reconciler-%s.lock", cfg.AppEnv),
		Environment:  cfg.AppEnv,
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Reconciler{
		config:      cfg,
		workerCfg:   workerCfg,
		userRepo:    userRepo,
		linkService: linkService,
		lockManager: NewLockManager(workerCfg.LockFilePath, workerCfg.LockTimeout, workerCfg.Environment),
		logger:      log,
		cronJob:     cron.New(),
		ownerID:     ownerID,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// Start registers the sweep on the cron schedule and starts the scheduler.
func (r *Reconciler) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return fmt.Errorf("reconciler is already running")
	}

	r.logger.Infof("Starting public link reconciler with schedule: %s", r.workerCfg.CronSchedule)
	r.logger.Infof("Reconciler ID: %s", r.ownerID)

	if err := r.cronJob.AddFunc(r.workerCfg.CronSchedule, r.runSweep); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	r.cronJob.Start()
	r.isRunning = true
	return nil
}

// Stop cancels the context and halts the scheduler.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}
	r.cancel()
	r.cronJob.Stop()
	r.isRunning = false
	r.logger.Info("Public link reconciler stopped")
}

func (r *Reconciler) runSweep() {
	ctx, cancel := context.WithTimeout(r.ctx, 5*time.Minute)
	defer cancel()

	lock, err := r.lockManager.AcquireLock(r.ownerID)
	if err != nil {
		r.logger.Debugf("Skipping sweep, could not acquire lock: %v", err)
		return
	}
	defer func() {
		if err := r.lockManager.ReleaseLock(lock.Owner); err != nil {
			r.logger.Errorf("Failed to release reconciler lock: %v", err)
		}
	}()

	if err := r.Sweep(ctx); err != nil {
		r.logger.Errorf("Reconciler sweep failed: %v", err)
	}
}

// Sweep scans all users and mints links for completed profiles without one.
func (r *Reconciler) Sweep(ctx context.Context) error {
	users, err := r.userRepo.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	var minted int
	for _, user := range users {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !user.ProfileCompleted || user.PublicLinkID != "" {
			continue
		}

		// Treat the user as freshly completed so the minting guard fires.
		before := *user
		before.ProfileCompleted = false
		linkID, created, err := r.linkService.EnsurePublicLink(ctx, &before, user)
		if err != nil {
			r.logger.Errorf("Failed to reconcile link for user %s: %v", user.ID, err)
			continue
		}
		if created {
			minted++
			r.logger.Infof("Reconciled missing public link %s for user %s", linkID, user.ID)
		}
	}

	if minted > 0 {
		r.logger.Infof("Reconciler sweep minted %d links", minted)
	}
	return nil
}
