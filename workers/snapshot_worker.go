// workers/snapshot_worker.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"swiss-tournament/models"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
)

// SnapshotSource produces the current standings and pairings.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
}

// ObjectUploader stores a JSON document under a key.
type ObjectUploader interface {
	PutJSON(ctx context.Context, key string, body []byte) error
}

// SnapshotPublisher periodically uploads standings snapshots so they can be
// served from object storage without touching the database.
type SnapshotPublisher struct {
	source   SnapshotSource
	uploader ObjectUploader
	interval time.Duration
	prefix   string
	sched    gocron.Scheduler
}

func NewSnapshotPublisher(source SnapshotSource, uploader ObjectUploader, tournament string, interval time.Duration) *SnapshotPublisher {
	name := slug.Make(tournament)
	if name == "" {
		name = "tournament"
	}
	return &SnapshotPublisher{
		source:   source,
		uploader: uploader,
		interval: interval,
		prefix:   "standings/" + name,
	}
}

// Start schedules PublishOnce every interval, beginning immediately.
func (p *SnapshotPublisher) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(func() {
			if err := p.PublishOnce(ctx); err != nil {
				log.Printf("⚠️ [Snapshot] Publish failed: %v", err)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("schedule snapshot job: %w", err)
	}

	p.sched = sched
	sched.Start()
	log.Printf("🔁 [Snapshot] Publishing %s/latest.json every %s", p.prefix, p.interval)
	return nil
}

func (p *SnapshotPublisher) Stop() {
	if p.sched == nil {
		return
	}
	if err := p.sched.Shutdown(); err != nil {
		log.Printf("⚠️ [Snapshot] Scheduler shutdown: %v", err)
	}
}

// PublishOnce uploads the snapshot twice: under its own id and as latest.json.
func (p *SnapshotPublisher) PublishOnce(ctx context.Context) error {
	snap, err := p.source.Snapshot(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	for _, key := range []string{p.KeyFor(snap.ID), p.prefix + "/latest.json"} {
		if err := p.uploader.PutJSON(ctx, key, body); err != nil {
			return err
		}
	}
	log.Printf("✅ [Snapshot] Published %s (%d players, %d pairs)", snap.ID, snap.PlayerCount, len(snap.Pairings))
	return nil
}

func (p *SnapshotPublisher) KeyFor(snapshotID string) string {
	return fmt.Sprintf("%s/%s.json", p.prefix, snapshotID)
}
