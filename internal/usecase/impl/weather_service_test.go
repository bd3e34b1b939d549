package impl

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tablenow/config"
	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	mockRepo "tablenow/internal/mocks/repository"
	mockSvc "tablenow/internal/mocks/service"
	"tablenow/internal/usecase"
)

type weatherServiceFixtures struct {
	service   usecase.WeatherUsecase
	txManager *mockRepo.MockTransactionManager
	provider  *mockSvc.MockForecastProvider
}

func createTestWeatherService(t *testing.T) weatherServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	provider := mockSvc.NewMockForecastProvider(t)

	service := NewWeatherService(WeatherServiceParams{
		TxManager: txManager,
		Provider:  provider,
		Config: &config.Config{
			Weather: &config.WeatherConfig{
				APIKey:     "test_api_key",
				DefaultLat: "25.0330",
				DefaultLon: "121.5654",
			},
		},
		Logger: newDiscardLogger(),
	})

	return weatherServiceFixtures{
		service:   service,
		txManager: txManager,
		provider:  provider,
	}
}

func (f weatherServiceFixtures) expectTransaction(ctx context.Context, factory repository.RepositoryFactory) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func forecastDay(offset int) time.Time {
	return time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestWeatherService_GetForecast_NotFound(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WeatherRepo().Return(weatherRepo)
	f.expectTransaction(ctx, factory)

	date := forecastDay(0)
	weatherRepo.EXPECT().FindByDate(ctx, date).Return(nil, repository.ErrForecastNotFound)

	record, err := f.service.GetForecast(ctx, date)
	assert.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrForecastNotFound))
}

func TestWeatherService_ListForecasts_WithRange(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	from := forecastDay(0)
	to := forecastDay(3)
	expected := []*entity.WeatherRecord{
		{ForecastDate: from, Condition: "Clear", Low: 22, High: 30},
	}

	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WeatherRepo().Return(weatherRepo)
	f.expectTransaction(ctx, factory)

	weatherRepo.EXPECT().List(ctx, from, to).Return(expected, nil)

	records, err := f.service.ListForecasts(ctx, &from, &to)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestWeatherService_CreateForecast_Success(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	date := forecastDay(0)

	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WeatherRepo().Return(weatherRepo)
	f.expectTransaction(ctx, factory)

	weatherRepo.EXPECT().FindByDate(ctx, date).Return(nil, repository.ErrForecastNotFound)
	weatherRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.WeatherRecord) bool {
			return record.ForecastDate.Equal(date) && record.Condition == "Rain"
		})).
		Return(nil)

	record, err := f.service.CreateForecast(ctx, &usecase.CreateForecastInput{
		ForecastDate: date,
		Condition:    "Rain",
		Low:          21.5,
		High:         28.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rain", record.Condition)
}

func TestWeatherService_CreateForecast_Duplicate(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	date := forecastDay(0)
	existing := &entity.WeatherRecord{ForecastDate: date, Condition: "Clear"}

	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WeatherRepo().Return(weatherRepo)
	f.expectTransaction(ctx, factory)

	weatherRepo.EXPECT().FindByDate(ctx, date).Return(existing, nil)

	record, err := f.service.CreateForecast(ctx, &usecase.CreateForecastInput{
		ForecastDate: date,
		Condition:    "Rain",
	})
	assert.Error(t, err)
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateForecast))
	weatherRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWeatherService_UpdateForecast_Success(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	date := forecastDay(0)
	existing := &entity.WeatherRecord{ForecastDate: date, Condition: "Clear", Low: 22, High: 30}
	newCondition := "Thunderstorm"
	newHigh := 27.5

	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WeatherRepo().Return(weatherRepo)
	f.expectTransaction(ctx, factory)

	weatherRepo.EXPECT().FindByDate(ctx, date).Return(existing, nil)
	weatherRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(record *entity.WeatherRecord) bool {
			return record.Condition == newCondition && record.High == newHigh && record.Low == 22
		})).
		Return(nil)

	record, err := f.service.UpdateForecast(ctx, &usecase.UpdateForecastInput{
		ForecastDate: date,
		Condition:    &newCondition,
		High:         &newHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, newCondition, record.Condition)
}

func TestWeatherService_DeleteForecast_NotFound(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WeatherRepo().Return(weatherRepo)
	f.expectTransaction(ctx, factory)

	date := forecastDay(0)
	weatherRepo.EXPECT().FindByDate(ctx, date).Return(nil, repository.ErrForecastNotFound)

	err := f.service.DeleteForecast(ctx, date)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForecastNotFound))
	weatherRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestWeatherService_FetchFromAPI_UpsertCounts(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	dayNew := forecastDay(0)
	dayExisting := forecastDay(1)
	forecasts := []*entity.Forecast{
		{Date: dayNew, Condition: "Rain", Low: 21, High: 27},
		{Date: dayExisting, Condition: "Clouds", Low: 22, High: 29},
	}

	// No coordinates on the input, so the configured defaults apply.
	f.provider.EXPECT().FetchDaily(ctx, "25.0330", "121.5654").Return(forecasts, nil)

	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WeatherRepo().Return(weatherRepo)
	f.expectTransaction(ctx, factory)

	weatherRepo.EXPECT().FindByDate(ctx, dayNew).Return(nil, repository.ErrForecastNotFound)
	weatherRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.WeatherRecord) bool {
			return record.ForecastDate.Equal(dayNew) && record.Condition == "Rain"
		})).
		Return(nil)
	weatherRepo.EXPECT().
		FindByDate(ctx, dayExisting).
		Return(&entity.WeatherRecord{ForecastDate: dayExisting, Condition: "Clear"}, nil)

	out, err := f.service.FetchFromAPI(ctx, &usecase.FetchForecastsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Inserted)
	assert.Equal(t, 0, out.Updated)
	assert.Equal(t, 1, out.Skipped)
	assert.Empty(t, out.Errors)
}

func TestWeatherService_FetchFromAPI_Overwrite(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	day := forecastDay(0)
	forecasts := []*entity.Forecast{{Date: day, Condition: "Rain", Low: 21, High: 27}}

	f.provider.EXPECT().FetchDaily(ctx, "40.7128", "-74.0060").Return(forecasts, nil)

	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WeatherRepo().Return(weatherRepo)
	f.expectTransaction(ctx, factory)

	existing := &entity.WeatherRecord{ForecastDate: day, Condition: "Clear", Low: 18, High: 25}
	weatherRepo.EXPECT().FindByDate(ctx, day).Return(existing, nil)
	weatherRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(record *entity.WeatherRecord) bool {
			return record.Condition == "Rain" && record.Low == 21 && record.High == 27
		})).
		Return(nil)

	out, err := f.service.FetchFromAPI(ctx, &usecase.FetchForecastsInput{
		Lat:       "40.7128",
		Lon:       "-74.0060",
		Overwrite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Updated)
	assert.Equal(t, 0, out.Inserted)
}

func TestWeatherService_FetchFromAPI_ProviderError(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	f.provider.EXPECT().
		FetchDaily(ctx, "25.0330", "121.5654").
		Return(nil, errors.New("weather api returned status 500"))

	out, err := f.service.FetchFromAPI(ctx, &usecase.FetchForecastsInput{})
	assert.Error(t, err)
	assert.Nil(t, out)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestWeatherService_FetchFromAPI_PerDayErrorIsCollected(t *testing.T) {
	f := createTestWeatherService(t)
	ctx := context.Background()

	dayBroken := forecastDay(0)
	dayGood := forecastDay(1)
	forecasts := []*entity.Forecast{
		{Date: dayBroken, Condition: "Rain", Low: 21, High: 27},
		{Date: dayGood, Condition: "Clear", Low: 20, High: 26},
	}

	f.provider.EXPECT().FetchDaily(ctx, "25.0330", "121.5654").Return(forecasts, nil)

	weatherRepo := mockRepo.NewMockWeatherRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().WeatherRepo().Return(weatherRepo)
	f.expectTransaction(ctx, factory)

	weatherRepo.EXPECT().FindByDate(ctx, dayBroken).Return(nil, repository.ErrForecastNotFound)
	weatherRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.WeatherRecord) bool {
			return record.ForecastDate.Equal(dayBroken)
		})).
		Return(errors.New("insert failed"))
	weatherRepo.EXPECT().FindByDate(ctx, dayGood).Return(nil, repository.ErrForecastNotFound)
	weatherRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.WeatherRecord) bool {
			return record.ForecastDate.Equal(dayGood)
		})).
		Return(nil)

	out, err := f.service.FetchFromAPI(ctx, &usecase.FetchForecastsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Inserted)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], "2026-08-31")
}
