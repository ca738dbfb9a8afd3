// Package memory provides an in-memory implementation of the core persistence
// store used for tests and ephemeral environments.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"stayflow/pkg/domain"
)

func errAlreadyExists(id int) error {
	return fmt.Errorf("id %d already exists", id)
}

// Compile-time contract assertion ensuring memory.Store adheres to the domain persistence interface.
var _ domain.PersistentStore = (*Store)(nil)

type (
	// Room aliases domain.Room for in-memory persistence operations.
	Room = domain.Room
	// Reservation aliases domain.Reservation.
	Reservation = domain.Reservation
	// HousekeepingTask aliases domain.HousekeepingTask.
	HousekeepingTask = domain.HousekeepingTask
	// Change aliases domain.Change captured in transactions.
	Change = domain.Change
	// Result aliases domain.Result summarizing rule evaluation.
	Result = domain.Result
	// RulesEngine aliases domain.RulesEngine used to evaluate rules.
	RulesEngine = domain.RulesEngine
	// Transaction aliases domain.Transaction representing a mutable unit of work.
	Transaction = domain.Transaction
	// TransactionView aliases domain.TransactionView providing read-only state.
	TransactionView = domain.TransactionView
	// PersistentStore aliases domain.PersistentStore abstraction.
	PersistentStore = domain.PersistentStore
)

type memoryState struct {
	rooms        map[int]Room
	reservations map[int]Reservation
	tasks        map[int]HousekeepingTask
}

// Snapshot captures a point-in-time clone of the store state. Collections
// are keyed by entity id; JSON object keys carry the id as decimal text.
type Snapshot struct {
	Rooms        map[int]Room             `json:"rooms"`
	Reservations map[int]Reservation      `json:"reservations"`
	Tasks        map[int]HousekeepingTask `json:"housekeeping"`
}

func newMemoryState() memoryState {
	return memoryState{
		rooms:        make(map[int]Room),
		reservations: make(map[int]Reservation),
		tasks:        make(map[int]HousekeepingTask),
	}
}

func (s memoryState) clone() memoryState {
	cloned := newMemoryState()
	for k, v := range s.rooms {
		cloned.rooms[k] = cloneRoom(v)
	}
	for k, v := range s.reservations {
		cloned.reservations[k] = v
	}
	for k, v := range s.tasks {
		cloned.tasks[k] = cloneTask(v)
	}
	return cloned
}

func cloneRoom(r Room) Room {
	cp := r
	cp.Amenities = append(domain.AmenityList(nil), r.Amenities...)
	return cp
}

func cloneTask(t HousekeepingTask) HousekeepingTask {
	cp := t
	if t.CompletedTime != nil {
		completed := *t.CompletedTime
		cp.CompletedTime = &completed
	}
	return cp
}

func snapshotFromMemoryState(state memoryState) Snapshot {
	s := Snapshot{
		Rooms:        make(map[int]Room, len(state.rooms)),
		Reservations: make(map[int]Reservation, len(state.reservations)),
		Tasks:        make(map[int]HousekeepingTask, len(state.tasks)),
	}
	for k, v := range state.rooms {
		s.Rooms[k] = cloneRoom(v)
	}
	for k, v := range state.reservations {
		s.Reservations[k] = v
	}
	for k, v := range state.tasks {
		s.Tasks[k] = cloneTask(v)
	}
	return s
}

func memoryStateFromSnapshot(s Snapshot) memoryState {
	state := newMemoryState()
	for k, v := range s.Rooms {
		state.rooms[k] = cloneRoom(v)
	}
	for k, v := range s.Reservations {
		state.reservations[k] = v
	}
	for k, v := range s.Tasks {
		state.tasks[k] = cloneTask(v)
	}
	return state
}

// Store provides an in-memory transactional store for the core domain.
type Store struct {
	mu     sync.RWMutex
	state  memoryState
	seq    int
	engine *RulesEngine
	nowFn  func() time.Time
}

// NewStore constructs an in-memory store backed by the provided rules engine.
func NewStore(engine *RulesEngine) *Store {
	if engine == nil {
		engine = domain.NewRulesEngine()
	}
	return &Store{
		state:  newMemoryState(),
		engine: engine,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

// nextID hands out the next identity in the shared sequence. Callers hold s.mu.
func (s *Store) nextID() int {
	s.seq++
	return s.seq
}

// bumpSeq raises the sequence so imported ids are never reissued. Callers hold s.mu.
func (s *Store) bumpSeq(id int) {
	if id > s.seq {
		s.seq = id
	}
}

// ExportState returns a deep copy of the current state.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotFromMemoryState(s.state)
}

// ImportState replaces the current state with the supplied snapshot.
func (s *Store) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = memoryStateFromSnapshot(snapshot)
	for id := range s.state.rooms {
		s.bumpSeq(id)
	}
	for id := range s.state.reservations {
		s.bumpSeq(id)
	}
	for id := range s.state.tasks {
		s.bumpSeq(id)
	}
}

// Seed replaces the current state with the snapshot without evaluating
// rules; intended for loading fixture data into an empty store.
func (s *Store) Seed(_ context.Context, snapshot Snapshot) error {
	s.ImportState(snapshot)
	return nil
}

// RulesEngine exposes the engine evaluating transactions.
func (s *Store) RulesEngine() *RulesEngine {
	return s.engine
}

// SetNow overrides the transaction clock; intended for tests.
func (s *Store) SetNow(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn != nil {
		s.nowFn = fn
	}
}

type transaction struct {
	store   *Store
	state   memoryState
	now     time.Time
	changes []Change
}

// RunInTransaction executes fn against a cloned state, evaluates rules over
// the recorded changes, and commits only when nothing blocked.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx Transaction) error) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{
		store: s,
		state: s.state.clone(),
		now:   s.nowFn(),
	}

	if err := fn(tx); err != nil {
		return Result{}, err
	}

	var result Result
	if s.engine != nil {
		view := newTransactionView(&tx.state)
		res, err := s.engine.Evaluate(ctx, view, tx.changes)
		if err != nil {
			return Result{}, err
		}
		result = res
		if res.HasBlocking() {
			return res, domain.RuleViolationError{Result: res}
		}
	}

	s.state = tx.state
	return result, nil
}

// View executes fn against a read-only snapshot of the store state.
func (s *Store) View(_ context.Context, fn func(TransactionView) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state.clone()
	view := newTransactionView(&snapshot)
	return fn(view)
}

type transactionView struct {
	state *memoryState
}

func newTransactionView(state *memoryState) transactionView {
	return transactionView{state: state}
}

func (v transactionView) ListRooms() []Room {
	out := make([]Room, 0, len(v.state.rooms))
	for _, r := range v.state.rooms {
		out = append(out, cloneRoom(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (v transactionView) ListReservations() []Reservation {
	out := make([]Reservation, 0, len(v.state.reservations))
	for _, r := range v.state.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (v transactionView) ListHousekeepingTasks() []HousekeepingTask {
	out := make([]HousekeepingTask, 0, len(v.state.tasks))
	for _, t := range v.state.tasks {
		out = append(out, cloneTask(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (v transactionView) FindRoom(id int) (Room, bool) {
	r, ok := v.state.rooms[id]
	if !ok {
		return Room{}, false
	}
	return cloneRoom(r), true
}

func (v transactionView) FindReservation(id int) (Reservation, bool) {
	r, ok := v.state.reservations[id]
	if !ok {
		return Reservation{}, false
	}
	return r, true
}

func (v transactionView) FindHousekeepingTask(id int) (HousekeepingTask, bool) {
	t, ok := v.state.tasks[id]
	if !ok {
		return HousekeepingTask{}, false
	}
	return cloneTask(t), true
}

func (tx *transaction) recordChange(change Change) {
	tx.changes = append(tx.changes, change)
}

// Snapshot returns a read-only view over the transactional state.
func (tx *transaction) Snapshot() TransactionView {
	return newTransactionView(&tx.state)
}

// Now reports the clock instant the transaction opened with.
func (tx *transaction) Now() time.Time {
	return tx.now
}

// FindRoom exposes room lookup within the transaction scope.
func (tx *transaction) FindRoom(id int) (Room, bool) {
	r, ok := tx.state.rooms[id]
	if !ok {
		return Room{}, false
	}
	return cloneRoom(r), true
}

// FindReservation exposes reservation lookup within the transaction scope.
func (tx *transaction) FindReservation(id int) (Reservation, bool) {
	r, ok := tx.state.reservations[id]
	if !ok {
		return Reservation{}, false
	}
	return r, true
}

// FindHousekeepingTask exposes task lookup within the transaction scope.
func (tx *transaction) FindHousekeepingTask(id int) (HousekeepingTask, bool) {
	t, ok := tx.state.tasks[id]
	if !ok {
		return HousekeepingTask{}, false
	}
	return cloneTask(t), true
}

// CreateRoom stores a new room within the transaction.
func (tx *transaction) CreateRoom(r Room) (Room, error) {
	if r.ID == 0 {
		r.ID = tx.store.nextID()
	}
	if _, exists := tx.state.rooms[r.ID]; exists {
		return Room{}, domain.PersistenceError{Op: "create room", Err: errAlreadyExists(r.ID)}
	}
	tx.store.bumpSeq(r.ID)
	r.CreatedAt = tx.now
	r.UpdatedAt = tx.now
	tx.state.rooms[r.ID] = cloneRoom(r)
	tx.recordChange(Change{Entity: domain.EntityRoom, Action: domain.ActionCreate, After: cloneRoom(r)})
	return cloneRoom(r), nil
}

// UpdateRoom mutates a room using the provided mutator function.
func (tx *transaction) UpdateRoom(id int, mutator func(*Room) error) (Room, error) {
	current, ok := tx.state.rooms[id]
	if !ok {
		return Room{}, domain.NotFoundError{Entity: domain.EntityRoom, ID: id}
	}
	before := cloneRoom(current)
	if err := mutator(&current); err != nil {
		return Room{}, err
	}
	current.ID = id
	current.UpdatedAt = tx.now
	tx.state.rooms[id] = cloneRoom(current)
	tx.recordChange(Change{Entity: domain.EntityRoom, Action: domain.ActionUpdate, Before: before, After: cloneRoom(current)})
	return cloneRoom(current), nil
}

// DeleteRoom removes a room from the transaction state.
func (tx *transaction) DeleteRoom(id int) error {
	current, ok := tx.state.rooms[id]
	if !ok {
		return domain.NotFoundError{Entity: domain.EntityRoom, ID: id}
	}
	delete(tx.state.rooms, id)
	tx.recordChange(Change{Entity: domain.EntityRoom, Action: domain.ActionDelete, Before: cloneRoom(current)})
	return nil
}

// CreateReservation stores a new reservation within the transaction.
func (tx *transaction) CreateReservation(r Reservation) (Reservation, error) {
	if r.ID == 0 {
		r.ID = tx.store.nextID()
	}
	if _, exists := tx.state.reservations[r.ID]; exists {
		return Reservation{}, domain.PersistenceError{Op: "create reservation", Err: errAlreadyExists(r.ID)}
	}
	tx.store.bumpSeq(r.ID)
	r.CreatedAt = tx.now
	r.UpdatedAt = tx.now
	tx.state.reservations[r.ID] = r
	tx.recordChange(Change{Entity: domain.EntityReservation, Action: domain.ActionCreate, After: r})
	return r, nil
}

// UpdateReservation mutates a reservation using the provided mutator function.
func (tx *transaction) UpdateReservation(id int, mutator func(*Reservation) error) (Reservation, error) {
	current, ok := tx.state.reservations[id]
	if !ok {
		return Reservation{}, domain.NotFoundError{Entity: domain.EntityReservation, ID: id}
	}
	before := current
	if err := mutator(&current); err != nil {
		return Reservation{}, err
	}
	current.ID = id
	current.UpdatedAt = tx.now
	tx.state.reservations[id] = current
	tx.recordChange(Change{Entity: domain.EntityReservation, Action: domain.ActionUpdate, Before: before, After: current})
	return current, nil
}

// DeleteReservation removes a reservation from the transaction state.
func (tx *transaction) DeleteReservation(id int) error {
	current, ok := tx.state.reservations[id]
	if !ok {
		return domain.NotFoundError{Entity: domain.EntityReservation, ID: id}
	}
	delete(tx.state.reservations, id)
	tx.recordChange(Change{Entity: domain.EntityReservation, Action: domain.ActionDelete, Before: current})
	return nil
}

// CreateHousekeepingTask stores a new task within the transaction.
func (tx *transaction) CreateHousekeepingTask(t HousekeepingTask) (HousekeepingTask, error) {
	if t.ID == 0 {
		t.ID = tx.store.nextID()
	}
	if _, exists := tx.state.tasks[t.ID]; exists {
		return HousekeepingTask{}, domain.PersistenceError{Op: "create housekeeping task", Err: errAlreadyExists(t.ID)}
	}
	tx.store.bumpSeq(t.ID)
	t.CreatedAt = tx.now
	t.UpdatedAt = tx.now
	tx.state.tasks[t.ID] = cloneTask(t)
	tx.recordChange(Change{Entity: domain.EntityHousekeepingTask, Action: domain.ActionCreate, After: cloneTask(t)})
	return cloneTask(t), nil
}

// UpdateHousekeepingTask mutates a task using the provided mutator function.
func (tx *transaction) UpdateHousekeepingTask(id int, mutator func(*HousekeepingTask) error) (HousekeepingTask, error) {
	current, ok := tx.state.tasks[id]
	if !ok {
		return HousekeepingTask{}, domain.NotFoundError{Entity: domain.EntityHousekeepingTask, ID: id}
	}
	before := cloneTask(current)
	if err := mutator(&current); err != nil {
		return HousekeepingTask{}, err
	}
	current.ID = id
	current.UpdatedAt = tx.now
	tx.state.tasks[id] = cloneTask(current)
	tx.recordChange(Change{Entity: domain.EntityHousekeepingTask, Action: domain.ActionUpdate, Before: before, After: cloneTask(current)})
	return cloneTask(current), nil
}

// DeleteHousekeepingTask removes a task from the transaction state.
func (tx *transaction) DeleteHousekeepingTask(id int) error {
	current, ok := tx.state.tasks[id]
	if !ok {
		return domain.NotFoundError{Entity: domain.EntityHousekeepingTask, ID: id}
	}
	delete(tx.state.tasks, id)
	tx.recordChange(Change{Entity: domain.EntityHousekeepingTask, Action: domain.ActionDelete, Before: cloneTask(current)})
	return nil
}

// GetRoom returns the room by id from committed state.
func (s *Store) GetRoom(id int) (Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.state.rooms[id]
	if !ok {
		return Room{}, false
	}
	return cloneRoom(r), true
}

// ListRooms returns all committed rooms ordered by id.
func (s *Store) ListRooms() []Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newTransactionView(&s.state).ListRooms()
}

// GetReservation returns the reservation by id from committed state.
func (s *Store) GetReservation(id int) (Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.state.reservations[id]
	if !ok {
		return Reservation{}, false
	}
	return r, true
}

// ListReservations returns all committed reservations ordered by id.
func (s *Store) ListReservations() []Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newTransactionView(&s.state).ListReservations()
}

// GetHousekeepingTask returns the task by id from committed state.
func (s *Store) GetHousekeepingTask(id int) (HousekeepingTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.state.tasks[id]
	if !ok {
		return HousekeepingTask{}, false
	}
	return cloneTask(t), true
}

// ListHousekeepingTasks returns all committed tasks ordered by id.
func (s *Store) ListHousekeepingTasks() []HousekeepingTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newTransactionView(&s.state).ListHousekeepingTasks()
}
