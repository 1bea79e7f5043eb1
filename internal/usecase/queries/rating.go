package queries

import (
	"context"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRatingsForbidden = errs.Kind("only staff can view ratings", errs.ErrUnauthorized)

type RatingReadStore interface {
	ServiceRatings(ctx context.Context) ([]*ServiceRatingView, error)
	FeedbackForService(ctx context.Context, serviceID uuid.UUID, limit int32) ([]*FeedbackView, error)
}

type RatingQueries interface {
	ServiceRatings(ctx context.Context, actor user.Actor) ([]*ServiceRatingView, error)
	ServiceFeedback(ctx context.Context, actor user.Actor, serviceID uuid.UUID, limit int) ([]*FeedbackView, error)
}

type ratingQueriesImpl struct {
	readStore RatingReadStore
}

func NewRatingQueries(readStore RatingReadStore) RatingQueries {
	return &ratingQueriesImpl{readStore: readStore}
}

func (q *ratingQueriesImpl) ServiceRatings(ctx context.Context, actor user.Actor) ([]*ServiceRatingView, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrRatingsForbidden
	}
	return q.readStore.ServiceRatings(ctx)
}

func (q *ratingQueriesImpl) ServiceFeedback(ctx context.Context, actor user.Actor, serviceID uuid.UUID, limit int) ([]*FeedbackView, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrRatingsForbidden
	}
	return q.readStore.FeedbackForService(ctx, serviceID, int32(ValidateLimit(limit)))
}
