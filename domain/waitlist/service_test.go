package waitlist

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/intake"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/log"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/metrics"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	"github.com/Orbtrix-Space/Orbtrix-website/internal/store"
	apperrors "github.com/Orbtrix-Space/Orbtrix-website/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (WaitlistService, *store.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockStore, intake.NewValidator(), nil)

	return service, mockStore
}

func TestWaitlistService_Join(t *testing.T) {
	t.Run("new email", func(t *testing.T) {
		service, mockStore := newTestService(t)

		mockStore.EXPECT().
			AddToWaitlist(gomock.Any(), models.WaitlistInput{Email: "A@B.com"}).
			Return(models.WaitlistEntry{ID: "entry-1", Email: "A@B.com"}, nil)

		result, err := service.Join(context.Background(), map[string]any{"email": "A@B.com"})

		require.NoError(t, err)
		assert.Equal(t, "entry-1", result.ID)
		assert.False(t, result.AlreadySubscribed)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, mockStore := newTestService(t)

		mockStore.EXPECT().
			AddToWaitlist(gomock.Any(), gomock.Any()).
			Return(models.WaitlistEntry{}, apperrors.NewAlreadyExistsError("email already on waitlist", nil))

		result, err := service.Join(context.Background(), map[string]any{"email": "a@b.com"})

		require.NoError(t, err)
		assert.True(t, result.AlreadySubscribed)
		assert.Empty(t, result.ID)
	})

	t.Run("invalid email never reaches the store", func(t *testing.T) {
		service, _ := newTestService(t)

		result, err := service.Join(context.Background(), map[string]any{"email": "not-an-email"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "email", apperrors.ValidationFields(err)[0].Field)
	})

	t.Run("nil payload", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Join(context.Background(), nil)

		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("store failure", func(t *testing.T) {
		service, mockStore := newTestService(t)

		mockStore.EXPECT().
			AddToWaitlist(gomock.Any(), gomock.Any()).
			Return(models.WaitlistEntry{}, apperrors.NewDatabaseError("database error", nil))

		result, err := service.Join(context.Background(), map[string]any{"email": "a@b.com"})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeDatabaseError, apperrors.GetErrorType(err))
	})
}

func TestWaitlistService_JoinRecordsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	reg := prometheus.NewRegistry()
	service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockStore, intake.NewValidator(), metrics.NewIntakeMetrics(reg))

	gomock.InOrder(
		mockStore.EXPECT().AddToWaitlist(gomock.Any(), gomock.Any()).Return(models.WaitlistEntry{ID: "1"}, nil),
		mockStore.EXPECT().AddToWaitlist(gomock.Any(), gomock.Any()).Return(models.WaitlistEntry{}, apperrors.NewAlreadyExistsError("dup", nil)),
	)

	_, _ = service.Join(context.Background(), map[string]any{"email": "a@b.com"})
	_, _ = service.Join(context.Background(), map[string]any{"email": "A@B.com"})
	_, _ = service.Join(context.Background(), map[string]any{"email": "nope"})

	expected := `
# HELP intake_submissions_total Total number of contact and waitlist submissions by outcome.
# TYPE intake_submissions_total counter
intake_submissions_total{kind="waitlist",outcome="created"} 1
intake_submissions_total{kind="waitlist",outcome="duplicate"} 1
intake_submissions_total{kind="waitlist",outcome="invalid"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "intake_submissions_total"))
}

func TestWaitlistService_IsSubscribed(t *testing.T) {
	service, mockStore := newTestService(t)

	mockStore.EXPECT().IsOnWaitlist(gomock.Any(), "A@B.COM").Return(true, nil)
	mockStore.EXPECT().IsOnWaitlist(gomock.Any(), "c@d.com").Return(false, nil)

	found, err := service.IsSubscribed(context.Background(), "A@B.COM")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = service.IsSubscribed(context.Background(), "c@d.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWaitlistService_GetAllEntries(t *testing.T) {
	t.Run("maps entries in order", func(t *testing.T) {
		service, mockStore := newTestService(t)
		created := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

		mockStore.EXPECT().ListWaitlistEntries(gomock.Any()).Return([]models.WaitlistEntry{
			{ID: "1", Email: "one@x.io", EmailKey: "one@x.io", CreatedAt: created},
			{ID: "2", Email: "Two@x.io", EmailKey: "two@x.io", CreatedAt: created.Add(time.Minute)},
		}, nil)

		entries, err := service.GetAllEntries(context.Background())

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, WaitlistEntryResponse{ID: "1", Email: "one@x.io", CreatedAt: "2026-03-01T12:30:00.000Z"}, entries[0])
		assert.Equal(t, "Two@x.io", entries[1].Email)
	})

	t.Run("empty store gives an empty slice", func(t *testing.T) {
		service, mockStore := newTestService(t)

		mockStore.EXPECT().ListWaitlistEntries(gomock.Any()).Return(nil, nil)

		entries, err := service.GetAllEntries(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("store failure", func(t *testing.T) {
		service, mockStore := newTestService(t)

		mockStore.EXPECT().ListWaitlistEntries(gomock.Any()).Return(nil, apperrors.NewDatabaseError("boom", nil))

		_, err := service.GetAllEntries(context.Background())
		assert.Error(t, err)
	})
}

func TestToWaitlistEntryResponse_KeepsMilliseconds(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	first := ToWaitlistEntryResponse(models.WaitlistEntry{ID: "1", CreatedAt: base.Add(123456789 * time.Nanosecond)})
	second := ToWaitlistEntryResponse(models.WaitlistEntry{ID: "2", CreatedAt: base.Add(124 * time.Millisecond)})

	assert.Equal(t, "2026-03-01T12:30:00.123Z", first.CreatedAt)
	assert.Equal(t, "2026-03-01T12:30:00.124Z", second.CreatedAt)
}
