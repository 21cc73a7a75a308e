package workers

import (
	"time"

	"recruivo_backend/internal/logger"
	"recruivo_backend/internal/repositories"

	"github.com/robfig/cron/v3"
)

// JobWorker runs the periodic maintenance tasks: closing jobs past their
// deadline and purging expired refresh tokens.
type JobWorker struct {
	jobRepo          repositories.JobRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
}

func NewJobWorker(
	jobRepo repositories.JobRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *JobWorker {
	return &JobWorker{
		jobRepo:          jobRepo,
		refreshTokenRepo: refreshTokenRepo,
		cron:             cron.New(),
	}
}

func (w *JobWorker) Start() error {
	if _, err := w.cron.AddFunc("@every 10m", w.closeExpiredJobs); err != nil {
		return err
	}
	if _, err := w.cron.AddFunc("@daily", w.purgeExpiredTokens); err != nil {
		return err
	}

	w.cron.Start()
	logger.Info("Job worker started")

	// Deadlines that passed while the server was down are handled right away.
	w.closeExpiredJobs()
	return nil
}

func (w *JobWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	logger.Info("Job worker stopped")
}

func (w *JobWorker) closeExpiredJobs() {
	closed, err := w.jobRepo.CloseExpired(time.Now())
	logger.WorkerLog("job_worker", "close_expired_jobs", err)
	if err == nil && closed > 0 {
		logger.Info("Closed jobs past their deadline", "count", closed)
	}
}

func (w *JobWorker) purgeExpiredTokens() {
	purged, err := w.refreshTokenRepo.DeleteExpired()
	logger.WorkerLog("job_worker", "purge_expired_tokens", err)
	if err == nil && purged > 0 {
		logger.Info("Purged expired refresh tokens", "count", purged)
	}
}
