package persistence

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/lampdelve/internal/game"
	"github.com/samdwyer/lampdelve/internal/telemetry"
)

type tracedStore struct {
	Store
	driver string
	tracer trace.Tracer
}

// Traced wraps a store so every save and load is recorded as a span.
func Traced(s Store, driver string) Store {
	return &tracedStore{Store: s, driver: driver, tracer: telemetry.Tracer("persistence")}
}

func (t *tracedStore) start(ctx context.Context, name, slot string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("store.driver", t.driver),
		attribute.String("store.slot", slot),
	))
}

func finish(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (t *tracedStore) SaveGame(ctx context.Context, slot string, state *game.SaveState) error {
	ctx, span := t.start(ctx, "persistence.save", slot)
	err := t.Store.SaveGame(ctx, slot, state)
	finish(span, err)
	return err
}

func (t *tracedStore) LoadGame(ctx context.Context, slot string) (*game.SaveState, error) {
	ctx, span := t.start(ctx, "persistence.load", slot)
	state, err := t.Store.LoadGame(ctx, slot)
	span.SetAttributes(attribute.Bool("store.found", err == nil))
	finish(span, err)
	return state, err
}

func (t *tracedStore) RecordLegacy(ctx context.Context, rec Legacy) error {
	ctx, span := t.start(ctx, "persistence.legacy", rec.Slot)
	span.SetAttributes(attribute.String("game.outcome", rec.Outcome.String()))
	err := t.Store.RecordLegacy(ctx, rec)
	finish(span, err)
	return err
}
