package models

import "time"

// ReconcilerConfig holds the background reconciler settings
type ReconcilerConfig struct {
	CronSchedule string        `json:"cron_schedule"`
	LockTimeout  time.Duration `json:"lock_timeout"`
	LockFilePath string        `json:"lock_file_path"`
	Environment  string        `json:"environment"`
	RunOnce      bool          `json:"run_once"`
}

// LockInfo records ownership of the reconciler file lock
type LockInfo struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	AcquiredAt  time.Time `json:"acquired_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Environment string    `json:"environment"`
}
