package core

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"stayflow/internal/infra/persistence/memory"
	"stayflow/pkg/domain"
)

//go:embed fixtures/rooms.json
var roomFixtures []byte

//go:embed fixtures/reservations.json
var reservationFixtures []byte

//go:embed fixtures/housekeeping.json
var taskFixtures []byte

// snapshotSeeder is implemented by every store variant: raw state import
// plus write-through for the disk- and database-backed ones.
type snapshotSeeder interface {
	ExportState() memory.Snapshot
	Seed(context.Context, memory.Snapshot) error
}

// SeedDemoData loads the bundled fixture records into the store when it is
// empty. Stores that already hold any data are left untouched.
func SeedDemoData(ctx context.Context, store PersistentStore, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	seeder, ok := store.(snapshotSeeder)
	if !ok {
		log.Warn("store does not support seeding, skipping fixtures")
		return nil
	}
	current := seeder.ExportState()
	if len(current.Rooms)+len(current.Reservations)+len(current.Tasks) > 0 {
		log.Debug("store already populated, skipping fixtures")
		return nil
	}

	snapshot, err := fixtureSnapshot()
	if err != nil {
		return err
	}
	if err := seeder.Seed(ctx, snapshot); err != nil {
		return fmt.Errorf("seed fixtures: %w", err)
	}
	log.Info("seeded fixture data",
		zap.Int("rooms", len(snapshot.Rooms)),
		zap.Int("reservations", len(snapshot.Reservations)),
		zap.Int("tasks", len(snapshot.Tasks)))
	return nil
}

func fixtureSnapshot() (memory.Snapshot, error) {
	var (
		rooms        []domain.Room
		reservations []domain.Reservation
		tasks        []domain.HousekeepingTask
	)
	if err := json.Unmarshal(roomFixtures, &rooms); err != nil {
		return memory.Snapshot{}, fmt.Errorf("decode room fixtures: %w", err)
	}
	if err := json.Unmarshal(reservationFixtures, &reservations); err != nil {
		return memory.Snapshot{}, fmt.Errorf("decode reservation fixtures: %w", err)
	}
	if err := json.Unmarshal(taskFixtures, &tasks); err != nil {
		return memory.Snapshot{}, fmt.Errorf("decode housekeeping fixtures: %w", err)
	}

	snapshot := memory.Snapshot{
		Rooms:        make(map[int]domain.Room, len(rooms)),
		Reservations: make(map[int]domain.Reservation, len(reservations)),
		Tasks:        make(map[int]domain.HousekeepingTask, len(tasks)),
	}
	for _, r := range rooms {
		snapshot.Rooms[r.ID] = r
	}
	for _, r := range reservations {
		snapshot.Reservations[r.ID] = r
	}
	for _, t := range tasks {
		snapshot.Tasks[t.ID] = t
	}
	return snapshot, nil
}
