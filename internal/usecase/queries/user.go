package queries

import "context"

type UserReadStore interface {
	ProfileByEmail(ctx context.Context, email string) (*UserProfileView, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, email string) (*UserProfileView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, email string) (*UserProfileView, error) {
	return q.store.ProfileByEmail(ctx, email)
}
