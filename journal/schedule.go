package journal

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/tevino/abool/v2"
)

// Expirer periodically soft-deletes journal entries older than maxAge.
type Expirer struct {
	store_     *Store
	maxAge_    time.Duration
	running_   *abool.AtomicBool
	scheduler_ gocron.Scheduler
}

func NewExpirer(store *Store, maxAge time.Duration) *Expirer {
	ret := Expirer{}
	ret.store_ = store
	ret.maxAge_ = maxAge
	ret.running_ = abool.NewBool(false)
	return &ret
}

// / RunOnce expires entries unless a previous pass is still running.
func (this *Expirer) RunOnce() (int64, error) {
	if !this.running_.SetToIf(false, true) {
		return 0, nil
	}
	defer this.running_.UnSet()
	return this.store_.Expire(this.maxAge_)
}

func (this *Expirer) cleanTask() {
	if n, err := this.RunOnce(); err != nil {
		log.Printf("journal expiry: %v", err)
	} else if n > 0 {
		log.Printf("journal expiry: %d entries expired", n)
	}
}

// / Start schedules RunOnce every interval until Stop.
func (this *Expirer) Start(interval time.Duration) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	if _, err := scheduler.NewJob(gocron.DurationJob(interval), gocron.NewTask(this.cleanTask)); err != nil {
		return err
	}
	this.scheduler_ = scheduler
	scheduler.Start()
	return nil
}

func (this *Expirer) Stop() error {
	if this.scheduler_ == nil {
		return nil
	}
	err := this.scheduler_.Shutdown()
	this.scheduler_ = nil
	return err
}
