package workers

import (
	"log"
	"time"

	"gamebattles-system/models"
	"gamebattles-system/repository"

	"github.com/go-co-op/gocron/v2"
)

// DigestWorker periodically logs a one-line activity summary: how many
// players are registered and how many matches sit in each status. It only
// reads; no match ever changes state from here.
type DigestWorker struct {
	users    repository.UserStore
	matches  repository.MatchStore
	interval time.Duration
}

func NewDigestWorker(users repository.UserStore, matches repository.MatchStore, interval time.Duration) *DigestWorker {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &DigestWorker{users: users, matches: matches, interval: interval}
}

// Start schedules the digest job. The returned scheduler should be shut
// down on exit.
func (w *DigestWorker) Start() (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(w.run),
	)
	if err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}

func (w *DigestWorker) run() {
	players, err := w.users.Count()
	if err != nil {
		log.Printf("[Digest] user count failed: %v", err)
		return
	}
	counts, err := w.matches.CountByStatus()
	if err != nil {
		log.Printf("[Digest] match counts failed: %v", err)
		return
	}
	log.Printf("📊 [Digest] players=%d matches open=%d in-progress=%d completed=%d disputed=%d",
		players,
		counts[models.StatusOpen],
		counts[models.StatusInProgress],
		counts[models.StatusCompleted],
		counts[models.StatusDisputed],
	)
}
