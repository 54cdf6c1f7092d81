package repository

import (
	"context"
	"time"

	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/infra"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	UpsertUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserParams) (sqlc.User, error)
	GetUser(ctx context.Context, db sqlc.DBTX, studentID int64) (sqlc.User, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Upsert(ctx context.Context, id user.StudentID, now time.Time) (*user.Student, error) {
	row, err := r.queries.UpsertUser(ctx, r.db, sqlc.UpsertUserParams{
		StudentID:    id.Int64(),
		LastActiveAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert user", err)
	}
	return toStudent(row), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id user.StudentID) (*user.Student, error) {
	row, err := r.queries.GetUser(ctx, r.db, id.Int64())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return toStudent(row), nil
}

func toStudent(row sqlc.User) *user.Student {
	return &user.Student{
		ID:           user.StudentID(row.StudentID),
		LastActiveAt: pgconv.TimeFromPgtype(row.LastActiveAt),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
