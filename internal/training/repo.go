package training

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/2beens/squadfit/internal/telemetry/tracing"
)

type EventParams struct {
	MemberID int
	Type     *EventType
	From     *time.Time
	To       *time.Time
}

type ListParams struct {
	EventParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO training_event (member_id, type, data, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		event.MemberID,
		event.Type,
		event.Data,
		event.Timestamp,
	).Scan(&event.ID)
	if err != nil {
		return nil, fmt.Errorf("insert training event: %w", err)
	}
	return &event, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setParamsAttributes(span, params.EventParams)

	rows, err := r.db.Query(ctx, `
		SELECT id, member_id, type, data, timestamp
		FROM training_event
		WHERE member_id = $1
		  AND ($2::text IS NULL OR type = $2)
		  AND ($3::timestamptz IS NULL OR timestamp >= $3)
		  AND ($4::timestamptz IS NULL OR timestamp <= $4)
		ORDER BY timestamp DESC
		LIMIT $5 OFFSET $6;
	`,
		params.MemberID,
		params.Type,
		params.From, params.To,
		params.Size, params.Size*params.Page,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Range returns all member events in [from, to], oldest first.
func (r *Repo) Range(ctx context.Context, memberID int, from, to time.Time) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.events.range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setParamsAttributes(span, EventParams{MemberID: memberID, From: &from, To: &to})

	rows, err := r.db.Query(ctx, `
		SELECT id, member_id, type, data, timestamp
		FROM training_event
		WHERE member_id = $1
		  AND timestamp >= $2
		  AND timestamp <= $3
		ORDER BY timestamp ASC;
	`, memberID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *Repo) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.events.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM training_event
		WHERE member_id = $1
		  AND ($2::text IS NULL OR type = $2)
		  AND ($3::timestamptz IS NULL OR timestamp >= $3)
		  AND ($4::timestamptz IS NULL OR timestamp <= $4);
	`,
		params.MemberID,
		params.Type,
		params.From, params.To,
	).Scan(&count); err != nil {
		return -1, fmt.Errorf("count training events: %w", err)
	}

	return count, nil
}

type eventRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEvents(rows eventRows) ([]*Event, error) {
	events := make([]*Event, 0)
	for rows.Next() {
		event := &Event{}
		if err := rows.Scan(&event.ID, &event.MemberID, &event.Type, &event.Data, &event.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func setParamsAttributes(span trace.Span, params EventParams) {
	span.SetAttributes(attribute.Int("member.id", params.MemberID))
	if params.Type != nil {
		span.SetAttributes(attribute.String("type", string(*params.Type)))
	}
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}
}
