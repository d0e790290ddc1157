package readingrepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/soulcross/soulcross/internal/domain"
	"github.com/stretchr/testify/assert"
)

var readingCols = []string{
	"id", "mode", "person_a", "person_b", "preview_result", "full_result", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func readingFixture(now time.Time) *domain.ReadingRequest {
	return &domain.ReadingRequest{
		ID:   "reading-1",
		Mode: domain.ReadingModePreview,
		PersonA: domain.PersonInput{
			Name: "Alice", Birthday: "1990-01-01", Gender: "female", Birthplace: "Prague",
		},
		PersonB: domain.PersonInput{
			Name: "Bob", Birthday: "1991-02-02", Gender: "male", Birthplace: "Oslo",
		},
		PreviewResult: &domain.PreviewResult{Title: "Alice & Bob: Relationship Preview"},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reading := readingFixture(now)

	t.Run("Reading saved", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reading_requests")).
			WithArgs(reading.ID, reading.Mode, pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), reading.CreatedAt, reading.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Save(context.Background(), reading)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reading_requests")).
			WithArgs(reading.ID, reading.Mode, pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), reading.CreatedAt, reading.UpdatedAt).
			WillReturnError(errors.New("database error"))

		err := repo.Save(context.Background(), reading)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reading := readingFixture(now)

	personA, _ := json.Marshal(reading.PersonA)
	personB, _ := json.Marshal(reading.PersonB)
	preview, _ := json.Marshal(reading.PreviewResult)

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.ReadingRequest
	}{
		{
			name: "Reading exists",
			id:   "reading-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(readingCols).
					AddRow("reading-1", domain.ReadingModePreview, personA, personB, preview, nil, now, now)
				mock.ExpectQuery(regexp.QuoteMeta("FROM reading_requests")).
					WithArgs("reading-1").
					WillReturnRows(rows)
			},
			result: reading,
		},
		{
			name: "Reading does not exist",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM reading_requests")).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   "reading-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM reading_requests")).
					WithArgs("reading-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AttachFullResult(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reading := readingFixture(now)
	reading.Mode = domain.ReadingModeFull
	reading.FullResult = &domain.FullResult{Title: "Alice & Bob: Full Relationship Reading"}

	t.Run("Full result attached", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE reading_requests")).
			WithArgs(domain.ReadingModeFull, pgxmock.AnyArg(), pgxmock.AnyArg(), reading.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.AttachFullResult(context.Background(), reading)
		assert.NoError(t, err)
		assert.True(t, reading.UpdatedAt.After(now) || reading.UpdatedAt.Equal(now))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE reading_requests")).
			WithArgs(domain.ReadingModeFull, pgxmock.AnyArg(), pgxmock.AnyArg(), reading.ID).
			WillReturnError(errors.New("database error"))

		err := repo.AttachFullResult(context.Background(), reading)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
