package core

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"stayflow/pkg/domain"
)

// Reservations returns every reservation ordered by id.
func (s *Service) Reservations(ctx context.Context) []Reservation {
	var reservations []Reservation
	s.view(ctx, "reservations.list", func(v domain.TransactionView) {
		reservations = v.ListReservations()
	})
	if reservations == nil {
		reservations = []Reservation{}
	}
	return reservations
}

// Reservation returns the reservation by id.
func (s *Service) Reservation(ctx context.Context, id int) (Reservation, bool) {
	var (
		reservation Reservation
		found       bool
	)
	s.view(ctx, "reservations.get", func(v domain.TransactionView) {
		reservation, found = v.FindReservation(id)
	})
	return reservation, found
}

// TodayArrivals returns reservations checking in on the current calendar
// date, regardless of time-of-day.
func (s *Service) TodayArrivals(ctx context.Context) []Reservation {
	today := domain.DateOf(s.now())
	out := []Reservation{}
	s.view(ctx, "reservations.today_arrivals", func(v domain.TransactionView) {
		for _, r := range v.ListReservations() {
			if r.CheckIn.SameDay(today.Time) {
				out = append(out, r)
			}
		}
	})
	return out
}

// TodayDepartures returns reservations checking out on the current
// calendar date.
func (s *Service) TodayDepartures(ctx context.Context) []Reservation {
	today := domain.DateOf(s.now())
	out := []Reservation{}
	s.view(ctx, "reservations.today_departures", func(v domain.TransactionView) {
		for _, r := range v.ListReservations() {
			if r.CheckOut.SameDay(today.Time) {
				out = append(out, r)
			}
		}
	})
	return out
}

// CreateReservation validates and persists a new booking. When the caller
// leaves total_amount blank and room plus dates are usable, the total is
// derived as nights times the room's nightly rate before validation runs.
func (s *Service) CreateReservation(ctx context.Context, form ReservationForm) (Reservation, error) {
	start := time.Now()
	form = s.autoTotal(form)
	if fieldErrs := form.Validate(s.now()); len(fieldErrs) > 0 {
		err := domain.ValidationError{Fields: fieldErrs}
		s.observe(ctx, "reservations.create", start, err)
		return Reservation{}, err
	}
	var created Reservation
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		created, err = tx.CreateReservation(form.reservation())
		return err
	})
	s.observe(ctx, "reservations.create", start, err)
	if err != nil {
		s.log.Error("create reservation failed", zap.Error(err))
		return Reservation{}, err
	}
	return created, nil
}

// autoTotal fills a blank total from the selected room and stay length.
func (s *Service) autoTotal(form ReservationForm) ReservationForm {
	if form.TotalAmount != "" {
		return form
	}
	roomID, err := strconv.Atoi(form.RoomID)
	if err != nil {
		return form
	}
	room, ok := s.store.GetRoom(roomID)
	if !ok {
		return form
	}
	checkIn, errIn := domain.ParseDate(form.CheckIn)
	checkOut, errOut := domain.ParseDate(form.CheckOut)
	if errIn != nil || errOut != nil {
		return form
	}
	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return form
	}
	return form.WithTotal(float64(nights) * room.Rate)
}

// UpdateReservation merges the patch into the stored reservation.
func (s *Service) UpdateReservation(ctx context.Context, id int, patch ReservationPatch) (Reservation, error) {
	start := time.Now()
	var updated Reservation
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		updated, err = tx.UpdateReservation(id, func(r *Reservation) error {
			patch.Apply(r)
			return nil
		})
		return err
	})
	s.observe(ctx, "reservations.update", start, err)
	if err != nil {
		s.logMutationError("update reservation", id, err)
		return Reservation{}, err
	}
	return updated, nil
}

// DeleteReservation removes the reservation.
func (s *Service) DeleteReservation(ctx context.Context, id int) error {
	start := time.Now()
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		return tx.DeleteReservation(id)
	})
	s.observe(ctx, "reservations.delete", start, err)
	if err != nil {
		s.logMutationError("delete reservation", id, err)
	}
	return err
}

// CheckIn moves a confirmed reservation to checked-in.
func (s *Service) CheckIn(ctx context.Context, id int) (Reservation, error) {
	return s.transitionReservation(ctx, "reservations.check_in", id, domain.ReservationCheckedIn)
}

// CheckOut moves a checked-in reservation to checked-out.
func (s *Service) CheckOut(ctx context.Context, id int) (Reservation, error) {
	return s.transitionReservation(ctx, "reservations.check_out", id, domain.ReservationCheckedOut)
}

// CancelReservation cancels a confirmed reservation. The board does not
// expose this yet; the status model does.
func (s *Service) CancelReservation(ctx context.Context, id int) (Reservation, error) {
	return s.transitionReservation(ctx, "reservations.cancel", id, domain.ReservationCancelled)
}

func (s *Service) transitionReservation(ctx context.Context, operation string, id int, target domain.ReservationStatus) (Reservation, error) {
	start := time.Now()
	var updated Reservation
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		updated, err = tx.UpdateReservation(id, func(r *Reservation) error {
			if !r.Status.CanTransition(target) {
				return domain.TransitionError{Entity: EntityReservation, ID: id, From: string(r.Status), To: string(target)}
			}
			r.Status = target
			return nil
		})
		return err
	})
	s.observe(ctx, operation, start, err)
	if err != nil {
		s.logMutationError(operation, id, err)
		return Reservation{}, err
	}
	return updated, nil
}
