//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/infra"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpsertUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserParams) (sqlc.User, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.User), args.Error(1)
}

func (m *MockUserWriteQueries) GetUser(ctx context.Context, db sqlc.DBTX, studentID int64) (sqlc.User, error) {
	args := m.Called(ctx, db, studentID)
	return args.Get(0).(sqlc.User), args.Error(1)
}

func TestUpsert(t *testing.T) {
	now := time.Date(2025, 3, 4, 3, 0, 0, 0, time.UTC)
	id := user.StudentID(202300001)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:      "success",
			mockError: nil,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
		{
			name:      "check violation",
			mockError: &pgconn.PgError{Code: pgconv.CodeCheckViolation},
			wantKind:  infra.KindCheckViolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpsertUser", mock.Anything, mock.Anything, sqlc.UpsertUserParams{
				StudentID:    202300001,
				LastActiveAt: pgconv.TimeToPgtype(now),
			}).Return(sqlc.User{
				StudentID:    202300001,
				LastActiveAt: pgconv.TimeToPgtype(now),
				CreatedAt:    pgconv.TimeToPgtype(now),
			}, tt.mockError)

			repo := NewUserRepository(mockQueries, nil)

			got, err := repo.Upsert(context.Background(), id, now)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, got.ID)
				assert.Equal(t, now, got.LastActiveAt)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUser", mock.Anything, mock.Anything, int64(202300001)).Return(sqlc.User{}, pgx.ErrNoRows)

		repo := NewUserRepository(mockQueries, nil)
		_, err := repo.FindByID(context.Background(), 202300001)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})

	t.Run("serialization failure is retryable", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUser", mock.Anything, mock.Anything, int64(202300001)).
			Return(sqlc.User{}, &pgconn.PgError{Code: pgconv.CodeSerializationFailure})

		repo := NewUserRepository(mockQueries, nil)
		_, err := repo.FindByID(context.Background(), 202300001)

		assert.True(t, infra.IsKind(err, infra.KindRetryable))
	})
}
