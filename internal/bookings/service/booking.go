package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "spalatorie/internal/bookings/errors"
	"spalatorie/internal/bookings/events"
	"spalatorie/internal/bookings/repository"
	"spalatorie/internal/bookings/validator"
	"spalatorie/pkg/config"
	apperrors "spalatorie/pkg/errors"
	"spalatorie/pkg/model"
	"spalatorie/pkg/pin"
	"spalatorie/pkg/sanitizer"
	"spalatorie/pkg/timeslot"

	"go.mongodb.org/mongo-driver/mongo"
)

// Bookable start times offered by the slots catalog.
const (
	slotsStartHour = 7
	slotsEndHour   = 22
)

// SlotCatalog is the static booking surface: which machines exist and which
// start times they accept.
type SlotCatalog struct {
	Machines map[string]string `json:"machines"`
	Times    []string          `json:"times"`
}

type BookingService interface {
	Book(ctx context.Context, req *model.BookingRequest) (*model.Reservation, error)
	ListRange(ctx context.Context, from string, to string) ([]*model.Reservation, error)
	Cancel(ctx context.Context, id string, pinValue string, admin bool) error
	Slots() SlotCatalog
}

type bookingService struct {
	repo      repository.ReservationRepository
	lockRepo  repository.SlotLockRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config

	// now is injectable so lock-expiry behavior is testable.
	now func() time.Time
}

func NewBookingService(
	repo repository.ReservationRepository,
	lockRepo repository.SlotLockRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Book validates the request, then commits the slot lock and the reservation
// in one Mongo transaction. Two concurrent bookings for the same
// (date, machine, startTime) key conflict inside the transaction and exactly
// one commits; the loser gets a Conflict. A lock left behind by a failed
// booking stops blocking the slot once it is older than the lock TTL.
func (s *bookingService) Book(ctx context.Context, req *model.BookingRequest) (*model.Reservation, error) {
	s.sanitize(req)
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			return nil, apperrors.InvalidInput(validationErrs[0].Message).
				WithDetails(map[string]any{"field": validationErrs[0].Field})
		}
		return nil, apperrors.InvalidInput("Invalid booking request")
	}

	today := s.now().Format(timeslot.DateLayout)
	active, err := s.repo.CountActiveByUser(ctx, req.UserName, today)
	if err != nil {
		s.cfg.Log.Error("Failed to count active reservations", "user", req.UserName, "error", err)
		return nil, apperrors.Internal("Failed to check reservation limit", err)
	}
	if active >= int64(s.cfg.BookingLimit) {
		return nil, apperrors.Conflict("Active reservation limit reached")
	}

	// Hash outside the transaction: bcrypt is deliberately slow and must not
	// extend the transaction's lifetime.
	code, err := pin.Hash(req.Pin)
	if err != nil {
		return nil, apperrors.Internal("Failed to process PIN", err)
	}

	reservation := &model.Reservation{
		UserName:    req.UserName,
		PhoneNumber: req.PhoneNumber,
		Code:        code,
		MachineType: req.MachineType,
		Date:        req.Date,
		StartTime:   req.StartTime,
		Duration:    req.Duration,
	}

	lockKey := model.SlotKey(req.Date, req.MachineType, req.StartTime)

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		lock := &model.SlotLock{
			ID:      lockKey,
			Machine: req.MachineType,
			Date:    req.Date,
			Start:   req.StartTime,
		}
		if err := s.lockRepo.TryAcquire(sessCtx, lock, s.now()); err != nil {
			if errors.Is(err, bookingserrors.ErrSlotLocked) {
				return apperrors.Conflict("This slot is already booked")
			}
			return apperrors.Internal("Failed to acquire slot lock", err)
		}

		if err := s.repo.Create(sessCtx, reservation); err != nil {
			return apperrors.Internal("Failed to create reservation", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create reservation", "slot", lockKey, "error", err)
		return nil, err
	}

	s.cfg.Log.Info("Reservation created successfully",
		"id", reservation.ID,
		"machine", reservation.MachineType,
		"date", reservation.Date,
		"start_time", reservation.StartTime,
	)
	s.publisher.BookingCreated(ctx, reservation)

	return reservation, nil
}

// ListRange returns reservations with from <= date <= to. The stored
// credential is stripped from every element: readers can see who holds a
// slot but never the PIN material.
func (s *bookingService) ListRange(ctx context.Context, from string, to string) ([]*model.Reservation, error) {
	if from == "" || to == "" {
		return nil, apperrors.InvalidInput("Both 'from' and 'to' dates are required")
	}
	if _, err := time.Parse(timeslot.DateLayout, from); err != nil {
		return nil, apperrors.InvalidInput("'from' must be a YYYY-MM-DD date")
	}
	if _, err := time.Parse(timeslot.DateLayout, to); err != nil {
		return nil, apperrors.InvalidInput("'to' must be a YYYY-MM-DD date")
	}

	reservations, err := s.repo.FindByDateRange(ctx, from, to)
	if err != nil {
		s.cfg.Log.Error("Failed to list reservations", "from", from, "to", to, "error", err)
		return nil, apperrors.Internal("Failed to retrieve reservations", err)
	}

	for _, r := range reservations {
		r.Code = ""
	}

	return reservations, nil
}

// Cancel deletes a reservation after the caller proves ownership: an admin
// session bypasses the PIN; otherwise the supplied PIN is checked against
// the stored credential, matching legacy plaintext and hashed formats alike.
// Failed checks leave the reservation and its lock untouched.
func (s *bookingService) Cancel(ctx context.Context, id string, pinValue string, admin bool) error {
	if id == "" {
		return apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Reservation", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid reservation ID format")
		}
		return apperrors.Internal("Failed to retrieve reservation", err)
	}

	if !admin {
		if pinValue == "" || !pin.Matches(pinValue, reservation.Code) {
			s.cfg.Log.Warn("Cancellation rejected", "id", id)
			return apperrors.Forbidden("Incorrect PIN")
		}
	}

	// Lock release is best-effort: the lock may have expired and been taken
	// over by a newer reservation. Deleting the reservation is what counts.
	lockKey := model.SlotKey(reservation.Date, reservation.MachineType, reservation.StartTime)
	if err := s.lockRepo.Release(ctx, lockKey); err != nil {
		s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockKey, "error", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Reservation", id)
		}
		return apperrors.Internal("Failed to delete reservation", err)
	}

	s.cfg.Log.Info("Reservation cancelled", "id", id, "admin", admin)
	s.publisher.BookingCancelled(ctx, reservation)

	return nil
}

func (s *bookingService) Slots() SlotCatalog {
	return SlotCatalog{
		Machines: model.Machines,
		Times:    timeslot.HalfHourSlots(slotsStartHour, slotsEndHour),
	}
}

func (s *bookingService) sanitize(req *model.BookingRequest) {
	req.UserName = sanitizer.SanitizeName(req.UserName)
	req.PhoneNumber = sanitizer.SanitizePhone(req.PhoneNumber)
	req.MachineType = sanitizer.SanitizeToken(req.MachineType)
	req.Date = sanitizer.SanitizeToken(req.Date)
	req.StartTime = sanitizer.SanitizeToken(req.StartTime)
}
