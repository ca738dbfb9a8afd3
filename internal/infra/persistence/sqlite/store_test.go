package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"stayflow/internal/infra/persistence/memory"
	"stayflow/internal/infra/persistence/sqlite"
	"stayflow/pkg/domain"
)

func TestSnapshotSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stayflow.db")

	store, err := sqlite.NewStore(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var roomID int
	if _, err := store.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		room, err := tx.CreateRoom(domain.Room{
			Number:         "101",
			Type:           domain.RoomTypeSingle,
			Status:         domain.RoomStatusAvailable,
			CleaningStatus: domain.CleaningClean,
			Floor:          1,
			Amenities:      domain.AmenityList{"WiFi"},
			Rate:           85,
		})
		if err != nil {
			return err
		}
		roomID = room.ID
		_, err = tx.CreateHousekeepingTask(domain.HousekeepingTask{
			RoomID:        room.ID,
			Type:          domain.TaskCleaning,
			Priority:      domain.PriorityMedium,
			AssignedTo:    "Rosa Delgado",
			Status:        domain.TaskPending,
			ScheduledTime: tx.Now(),
		})
		return err
	}); err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := sqlite.NewStore(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	room, ok := reopened.GetRoom(roomID)
	if !ok {
		t.Fatalf("room missing after reopen")
	}
	if room.Number != "101" || room.Rate != 85 || len(room.Amenities) != 1 {
		t.Fatalf("room round trip = %+v", room)
	}
	if tasks := reopened.ListHousekeepingTasks(); len(tasks) != 1 || tasks[0].RoomID != roomID {
		t.Fatalf("tasks round trip = %v", tasks)
	}

	// Ids continue past what was loaded from disk.
	if _, err := reopened.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		created, err := tx.CreateRoom(domain.Room{
			Number:         "102",
			Type:           domain.RoomTypeDouble,
			Status:         domain.RoomStatusAvailable,
			CleaningStatus: domain.CleaningClean,
			Floor:          1,
			Rate:           110,
		})
		if err != nil {
			return err
		}
		if created.ID <= roomID {
			t.Fatalf("sequence reissued id %d", created.ID)
		}
		return nil
	}); err != nil {
		t.Fatalf("post-reopen create: %v", err)
	}
}

func TestSeedWritesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stayflow.db")
	store, err := sqlite.NewStore(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	room := domain.Room{
		Number:         "301",
		Type:           domain.RoomTypeSuite,
		Status:         domain.RoomStatusOccupied,
		CleaningStatus: domain.CleaningClean,
		Floor:          3,
		Rate:           240,
	}
	room.ID = 7
	snapshot := memory.Snapshot{Rooms: map[int]domain.Room{7: room}}
	if err := store.Seed(context.Background(), snapshot); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := sqlite.NewStore(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	got, ok := reopened.GetRoom(7)
	if !ok || got.Status != domain.RoomStatusOccupied {
		t.Fatalf("seeded room after reopen = %+v found=%v", got, ok)
	}
}
