package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RatingReadStore aggregates customer feedback stored on appointments.
type RatingReadStore struct {
	db db.DBTX
}

func NewRatingReadStore(db db.DBTX) *RatingReadStore {
	return &RatingReadStore{db: db}
}

// ServiceRatings lists every catalog service, including ones with no ratings yet.
func (r *RatingReadStore) ServiceRatings(ctx context.Context) ([]*queries.ServiceRatingView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name,
		       COUNT(a.feedback_stars)::int,
		       COALESCE(ROUND(AVG(a.feedback_stars), 2), 0)::float8,
		       COUNT(*) FILTER (WHERE a.feedback_stars = 1)::int,
		       COUNT(*) FILTER (WHERE a.feedback_stars = 2)::int,
		       COUNT(*) FILTER (WHERE a.feedback_stars = 3)::int,
		       COUNT(*) FILTER (WHERE a.feedback_stars = 4)::int,
		       COUNT(*) FILTER (WHERE a.feedback_stars = 5)::int
		FROM services s
		LEFT JOIN appointments a ON a.service_id = s.id AND a.feedback_stars IS NOT NULL
		GROUP BY s.id, s.name
		ORDER BY s.name, s.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get service ratings", err)
	}

	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.ServiceRatingView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan service ratings", err)
	}
	return views, nil
}

func (r *RatingReadStore) FeedbackForService(ctx context.Context, serviceID uuid.UUID, limit int32) ([]*queries.FeedbackView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_name, to_char(appointment_date, 'YYYY-MM-DD'), slot,
		       feedback_stars::int, COALESCE(feedback_text, ''), COALESCE(feedback_at, updated_at)
		FROM appointments
		WHERE service_id = $1 AND feedback_stars IS NOT NULL
		ORDER BY feedback_at DESC NULLS LAST, id DESC
		LIMIT $2`, serviceID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get service feedback", err)
	}

	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.FeedbackView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan service feedback", err)
	}
	return views, nil
}
