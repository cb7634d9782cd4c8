package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/shenikar/tourist_safety_system/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTripService(t *testing.T, now time.Time) (TripService, *mocks.MockTripRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockTripRepository(ctrl)

	return NewTripService(repoMock, clock.NewFake(now), newTestLogger()), repoMock
}

func validTripInput() *models.TripInput {
	return &models.TripInput{
		Name:        "  Kerala backwaters ",
		Destination: "Alappuzha",
		StartDate:   "2025-03-10",
		EndDate:     "2025-03-15",
		Members: []models.TripMember{{
			Name:           "Asha",
			DocumentNumber: "1234-5678",
			PhoneNumbers:   []models.PhoneNumber{{Number: "+911234567890"}},
		}},
		Itinerary: []models.ItineraryDay{
			{Date: "2025-03-10", Location: "Alappuzha", Activities: []string{"houseboat", "  "}},
			{Date: "2025-03-11", Location: ""},
		},
	}
}

func storedTrip(status models.TripStatus) *models.Trip {
	return &models.Trip{
		ID:          uuid.New(),
		UserID:      "user-1",
		Name:        "Kerala backwaters",
		Destination: "Alappuzha",
		StartDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Members:     []models.TripMember{},
		Itinerary:   []models.ItineraryDay{},
		Status:      status,
	}
}

func TestCreateTrip_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t, time.Now())
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) error {
			trip.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	trip, err := service.CreateTrip(ctx, "user-1", validTripInput())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.TripPlanned, trip.Status)
	assert.Equal(t, "Kerala backwaters", trip.Name)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), trip.StartDate)

	require.Len(t, trip.Members, 1)
	member := trip.Members[0]
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, 18, member.Age)
	assert.Equal(t, "aadhar", member.DocumentType)
	require.Len(t, member.PhoneNumbers, 1)
	assert.Equal(t, "primary", member.PhoneNumbers[0].Type)
	assert.NotEmpty(t, member.PhoneNumbers[0].ID)

	// день без места отброшен, пустая активность тоже
	require.Len(t, trip.Itinerary, 1)
	assert.Equal(t, []string{"houseboat"}, trip.Itinerary[0].Activities)
}

func TestCreateTrip_ValidationBlocksStore(t *testing.T) {
	// Подготовка
	service, _ := newTestTripService(t, time.Now())
	input := validTripInput()
	input.EndDate = input.StartDate

	// Действие
	_, err := service.CreateTrip(context.Background(), "user-1", input)

	// Проверки: Create не ожидается, gomock упадет при вызове
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"End date must be after start date"}, ve.Messages)
}

func TestGetTrip_Forbidden(t *testing.T) {
	service, repoMock := newTestTripService(t, time.Now())
	trip := storedTrip(models.TripPlanned)
	trip.UserID = "user-2"

	repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := service.GetTrip(context.Background(), "user-1", trip.ID)

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestListTrips_NormalizesPage(t *testing.T) {
	service, repoMock := newTestTripService(t, time.Now())

	repoMock.EXPECT().
		ListByUser(gomock.Any(), "user-1", models.TripFilter{Status: "planned", Page: 1, Limit: 20}).
		Return([]*models.Trip{storedTrip(models.TripPlanned)}, 21, nil)

	page, err := service.ListTrips(context.Background(), "user-1", models.TripFilter{Status: "planned", Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestUpdateTrip_AppliesAndRevalidates(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t, time.Now())
	trip := storedTrip(models.TripActive)
	name := "Munnar hills"

	// Ожидания
	repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)
	repoMock.EXPECT().Update(gomock.Any(), trip).Return(nil)

	// Действие
	updated, err := service.UpdateTrip(context.Background(), "user-1", trip.ID, models.TripUpdate{Name: &name})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Munnar hills", updated.Name)
	assert.Equal(t, "Alappuzha", updated.Destination)
}

func TestUpdateTrip_InvalidDatesRejected(t *testing.T) {
	service, repoMock := newTestTripService(t, time.Now())
	trip := storedTrip(models.TripPlanned)
	end := "2025-03-01"

	repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := service.UpdateTrip(context.Background(), "user-1", trip.ID, models.TripUpdate{EndDate: &end})

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"End date must be after start date"}, ve.Messages)
}

func TestUpdateTrip_ClosedTrip(t *testing.T) {
	service, repoMock := newTestTripService(t, time.Now())
	trip := storedTrip(models.TripCompleted)

	repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := service.UpdateTrip(context.Background(), "user-1", trip.ID, models.TripUpdate{})

	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestActivateTrip_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestTripService(t, time.Now())
	trip := storedTrip(models.TripPlanned)

	// Ожидания
	repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)
	repoMock.EXPECT().GetActive(gomock.Any(), "user-1").Return(nil, models.ErrNotFound)
	repoMock.EXPECT().UpdateStatus(gomock.Any(), trip.ID, models.TripPlanned, models.TripActive).Return(nil)

	// Действие
	activated, err := service.ActivateTrip(context.Background(), "user-1", trip.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.TripActive, activated.Status)
}

func TestActivateTrip_AnotherActive(t *testing.T) {
	service, repoMock := newTestTripService(t, time.Now())
	trip := storedTrip(models.TripPlanned)

	repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)
	repoMock.EXPECT().GetActive(gomock.Any(), "user-1").Return(storedTrip(models.TripActive), nil)

	_, err := service.ActivateTrip(context.Background(), "user-1", trip.ID)

	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestTripTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    models.TripStatus
		action  func(TripService, uuid.UUID) (*models.Trip, error)
		to      models.TripStatus
		allowed bool
	}{
		{"complete active", models.TripActive, completeTrip, models.TripCompleted, true},
		{"complete planned", models.TripPlanned, completeTrip, models.TripCompleted, false},
		{"cancel planned", models.TripPlanned, cancelTrip, models.TripCancelled, true},
		{"cancel active", models.TripActive, cancelTrip, models.TripCancelled, true},
		{"cancel completed", models.TripCompleted, cancelTrip, models.TripCancelled, false},
		{"cancel cancelled", models.TripCancelled, cancelTrip, models.TripCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, repoMock := newTestTripService(t, time.Now())
			trip := storedTrip(tc.from)

			repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)
			if tc.allowed {
				repoMock.EXPECT().UpdateStatus(gomock.Any(), trip.ID, tc.from, tc.to).Return(nil)
			}

			result, err := tc.action(service, trip.ID)

			if !tc.allowed {
				assert.ErrorIs(t, err, models.ErrInvalidState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, result.Status)
		})
	}
}

func completeTrip(s TripService, id uuid.UUID) (*models.Trip, error) {
	return s.CompleteTrip(context.Background(), "user-1", id)
}

func cancelTrip(s TripService, id uuid.UUID) (*models.Trip, error) {
	return s.CancelTrip(context.Background(), "user-1", id)
}

func TestArchiveTrip(t *testing.T) {
	t.Run("completed trip", func(t *testing.T) {
		service, repoMock := newTestTripService(t, time.Now())
		trip := storedTrip(models.TripCompleted)

		repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)
		repoMock.EXPECT().Archive(gomock.Any(), trip.ID).Return(nil)

		archived, err := service.ArchiveTrip(context.Background(), "user-1", trip.ID)

		require.NoError(t, err)
		assert.True(t, archived.IsArchived)
	})

	t.Run("active trip", func(t *testing.T) {
		service, repoMock := newTestTripService(t, time.Now())
		trip := storedTrip(models.TripActive)

		repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)

		_, err := service.ArchiveTrip(context.Background(), "user-1", trip.ID)

		assert.ErrorIs(t, err, models.ErrInvalidState)
	})

	t.Run("already archived", func(t *testing.T) {
		service, repoMock := newTestTripService(t, time.Now())
		trip := storedTrip(models.TripCancelled)
		trip.IsArchived = true

		repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)

		_, err := service.ArchiveTrip(context.Background(), "user-1", trip.ID)

		assert.ErrorIs(t, err, models.ErrInvalidState)
	})
}

func TestDeleteTrip_ActiveRejected(t *testing.T) {
	service, repoMock := newTestTripService(t, time.Now())
	trip := storedTrip(models.TripActive)

	repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)

	err := service.DeleteTrip(context.Background(), "user-1", trip.ID)

	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestDeleteTrip_Success(t *testing.T) {
	service, repoMock := newTestTripService(t, time.Now())
	trip := storedTrip(models.TripPlanned)

	repoMock.EXPECT().GetByID(gomock.Any(), trip.ID).Return(trip, nil)
	repoMock.EXPECT().Delete(gomock.Any(), trip.ID).Return(nil)

	assert.NoError(t, service.DeleteTrip(context.Background(), "user-1", trip.ID))
}

func TestGetCurrentTrip_UsesClockDay(t *testing.T) {
	// Подготовка: 02:30 по Москве, в UTC еще 11 марта
	moscow := time.FixedZone("MSK", 3*60*60)
	now := time.Date(2025, 3, 12, 2, 30, 0, 0, moscow)
	service, repoMock := newTestTripService(t, now)
	trip := storedTrip(models.TripActive)

	// Ожидания
	repoMock.EXPECT().
		GetCurrent(gomock.Any(), "user-1", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)).
		Return(trip, nil)

	// Действие
	current, err := service.GetCurrentTrip(context.Background(), "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, trip.ID, current.ID)
}

func TestCheckActiveTrip(t *testing.T) {
	service, repoMock := newTestTripService(t, time.Now())
	trip := storedTrip(models.TripActive)

	gomock.InOrder(
		repoMock.EXPECT().GetActive(gomock.Any(), "user-1").Return(nil, models.ErrNotFound),
		repoMock.EXPECT().GetActive(gomock.Any(), "user-1").Return(trip, nil),
		repoMock.EXPECT().GetActive(gomock.Any(), "user-1").Return(nil, errors.New("db down")),
	)

	none, err := service.CheckActiveTrip(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, none.HasActiveTrip)
	assert.Nil(t, none.ActiveTrip)

	found, err := service.CheckActiveTrip(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, found.HasActiveTrip)
	assert.Equal(t, trip.ID, found.ActiveTrip.ID)

	_, err = service.CheckActiveTrip(context.Background(), "user-1")
	assert.Error(t, err)
}

func TestGetActiveTrip_NotFound(t *testing.T) {
	service, repoMock := newTestTripService(t, time.Now())

	repoMock.EXPECT().GetActive(gomock.Any(), "user-1").Return(nil, models.ErrNotFound)

	_, err := service.GetActiveTrip(context.Background(), "user-1")

	assert.ErrorIs(t, err, models.ErrNotFound)
}
