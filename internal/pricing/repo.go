package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/squadfit/internal/telemetry/tracing"
	"github.com/2beens/squadfit/pkg"
)

var (
	ErrTrainerPricingNotFound = errors.New("trainer pricing not found")
	ErrTrainerNotFound        = errors.New("trainer not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetTrainerPricing(ctx context.Context, trainerID int) (_ *TrainerPricing, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pricing.get")
	span.SetAttributes(attribute.Int("trainer.id", trainerID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tp := &TrainerPricing{
		TrainerID: trainerID,
	}
	err = r.db.QueryRow(ctx, `
		SELECT base_price_per_hour, prime_time, updated_at
		FROM trainer_pricing
		WHERE trainer_id = $1
	`, trainerID).Scan(&tp.BasePricePerHour, &tp.PrimeTime, &tp.UpdatedAt)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrTrainerPricingNotFound
		}
		return nil, fmt.Errorf("get trainer pricing: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT name, duration_months, sessions_per_month, discount_percent, recommended
		FROM trainer_plan
		WHERE trainer_id = $1
		ORDER BY position
	`, trainerID)
	if err != nil {
		return nil, fmt.Errorf("get trainer plans: %w", err)
	}
	defer rows.Close()

	tp.Plans = make([]PlanConfiguration, 0)
	for rows.Next() {
		var plan PlanConfiguration
		if err := rows.Scan(
			&plan.Name,
			&plan.DurationMonths,
			&plan.SessionsPerMonth,
			&plan.DiscountPercent,
			&plan.Recommended,
		); err != nil {
			return nil, fmt.Errorf("scan trainer plan: %w", err)
		}
		tp.Plans = append(tp.Plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trainer plans rows: %w", err)
	}

	span.SetAttributes(attribute.Int("plans.count", len(tp.Plans)))
	return tp, nil
}

// UpsertTrainerPricing stores the trainer's pricing and replaces the whole plan table.
func (r *Repo) UpsertTrainerPricing(ctx context.Context, tp *TrainerPricing) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pricing.upsert")
	span.SetAttributes(attribute.Int("trainer.id", tp.TrainerID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if tp.UpdatedAt.IsZero() {
		tp.UpdatedAt = time.Now()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO trainer_pricing (trainer_id, base_price_per_hour, prime_time, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (trainer_id) DO UPDATE
		SET base_price_per_hour = EXCLUDED.base_price_per_hour,
		    prime_time = EXCLUDED.prime_time,
		    updated_at = EXCLUDED.updated_at
	`, tp.TrainerID, tp.BasePricePerHour, tp.PrimeTime, tp.UpdatedAt); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrTrainerNotFound
		}
		return fmt.Errorf("upsert trainer pricing: %w", err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM trainer_plan WHERE trainer_id = $1`, tp.TrainerID); err != nil {
		return fmt.Errorf("clear trainer plans: %w", err)
	}

	batch := &pgx.Batch{}
	for i, plan := range tp.Plans {
		batch.Queue(`
			INSERT INTO trainer_plan
				(trainer_id, position, name, duration_months, sessions_per_month, discount_percent, recommended)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, tp.TrainerID, i, plan.Name, plan.DurationMonths, plan.SessionsPerMonth, plan.DiscountPercent, plan.Recommended)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert trainer plans: %w", err)
	}

	return nil
}

func (r *Repo) DeleteTrainerPricing(ctx context.Context, trainerID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pricing.delete")
	span.SetAttributes(attribute.Int("trainer.id", trainerID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// plans are removed by the cascade
	tag, err := r.db.Exec(ctx, `DELETE FROM trainer_pricing WHERE trainer_id = $1`, trainerID)
	if err != nil {
		return fmt.Errorf("delete trainer pricing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainerPricingNotFound
	}
	return nil
}
