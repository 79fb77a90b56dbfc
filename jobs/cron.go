package jobs

import (
	"log"
	"time"

	"hostelhub/utils"

	"github.com/robfig/cron/v3"
)

// ExpiredPendingCanceller sweeps pending reservations whose check-in
// date has already passed.
type ExpiredPendingCanceller interface {
	CancelExpiredPending(now time.Time) (int64, error)
}

var pendingCanceller ExpiredPendingCanceller

// SetPendingCanceller installs the reservation service used by the
// nightly sweep.
func SetPendingCanceller(canceller ExpiredPendingCanceller) {
	pendingCanceller = canceller
}

// InitCronJobs registers the nightly maintenance jobs.
func InitCronJobs(c *cron.Cron) error {
	// Runs at midnight every day
	_, err := c.AddFunc("0 0 * * *", func() {
		if pendingCanceller == nil {
			utils.LogError("Pending canceller not configured, skipping sweep")
			return
		}
		count, err := pendingCanceller.CancelExpiredPending(time.Now())
		if err != nil {
			utils.LogError("Failed to cancel expired pending reservations: %v", err)
			return
		}
		if count > 0 {
			utils.LogInfo("Cancelled %d expired pending reservations", count)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
