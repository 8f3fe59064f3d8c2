// Package events publishes booking lifecycle events. Publishing is
// best-effort: a broker outage must never fail the booking or cancellation
// that triggered the event.
package events

import (
	"context"

	"spalatorie/pkg/kafka"
	"spalatorie/pkg/logger"
	"spalatorie/pkg/model"
)

const (
	Topic = "booking-events"

	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"

	source = "spalatorie"
)

// Publisher emits booking lifecycle events.
type Publisher interface {
	BookingCreated(ctx context.Context, reservation *model.Reservation)
	BookingCancelled(ctx context.Context, reservation *model.Reservation)
	Close() error
}

// bookingEvent is the payload shape for both event types. The credential is
// never part of an event.
type bookingEvent struct {
	ReservationID string `json:"reservationId"`
	UserName      string `json:"userName"`
	MachineType   string `json:"machineType"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	Duration      int    `json:"duration"`
}

type kafkaPublisher struct {
	producer kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer kafka.Producer, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		log:      log,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, reservation *model.Reservation) {
	p.publish(ctx, EventBookingCreated, reservation)
}

func (p *kafkaPublisher) BookingCancelled(ctx context.Context, reservation *model.Reservation) {
	p.publish(ctx, EventBookingCancelled, reservation)
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, reservation *model.Reservation) {
	msg := kafka.NewMessage().
		WithKey(model.SlotKey(reservation.Date, reservation.MachineType, reservation.StartTime)).
		WithEventType(eventType).
		WithSource(source).
		WithValue(bookingEvent{
			ReservationID: reservation.ID,
			UserName:      reservation.UserName,
			MachineType:   reservation.MachineType,
			Date:          reservation.Date,
			StartTime:     reservation.StartTime,
			Duration:      reservation.Duration,
		}).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"reservation_id", reservation.ID,
			"error", err,
		)
	}
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// noopPublisher is used when no Kafka brokers are configured.
type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) BookingCreated(context.Context, *model.Reservation)   {}
func (noopPublisher) BookingCancelled(context.Context, *model.Reservation) {}
func (noopPublisher) Close() error                                         { return nil }
