package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/geolocation"
	locationDomain "github.com/allisson/places/internal/location/domain"
	"github.com/allisson/places/internal/location/http/dto"
	locationUseCase "github.com/allisson/places/internal/location/usecase"
	"github.com/allisson/places/internal/result"
	userHTTP "github.com/allisson/places/internal/user/http"
)

type mockSearchExecutor struct {
	mock.Mock
}

func (m *mockSearchExecutor) Execute(
	ctx context.Context,
	input locationUseCase.SearchLocationsInput,
) result.Result[[]*locationDomain.Location] {
	args := m.Called(ctx, input)
	return args.Get(0).(result.Result[[]*locationDomain.Location])
}

type mockNearbyExecutor struct {
	mock.Mock
}

func (m *mockNearbyExecutor) Execute(
	ctx context.Context,
	input locationUseCase.GetNearbyLocationsInput,
) ([]*locationDomain.Location, error) {
	args := m.Called(ctx, input)
	if locations := args.Get(0); locations != nil {
		return locations.([]*locationDomain.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDetailExecutor struct {
	mock.Mock
}

func (m *mockDetailExecutor) Execute(
	ctx context.Context,
	id uuid.UUID,
) result.Result[*locationDomain.Location] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[*locationDomain.Location])
}

type mockCreateExecutor struct {
	mock.Mock
}

func (m *mockCreateExecutor) Execute(
	ctx context.Context,
	input locationUseCase.CreateLocationInput,
) result.Result[*locationDomain.Location] {
	args := m.Called(ctx, input)
	return args.Get(0).(result.Result[*locationDomain.Location])
}

type locationHandlerMocks struct {
	search *mockSearchExecutor
	nearby *mockNearbyExecutor
	detail *mockDetailExecutor
	create *mockCreateExecutor
}

// setupTestHandler creates a test handler with mocked use cases and a static
// geolocation provider pinned to Sao Paulo.
func setupTestHandler(t *testing.T) (*LocationHandler, *locationHandlerMocks) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mocks := &locationHandlerMocks{
		search: &mockSearchExecutor{},
		nearby: &mockNearbyExecutor{},
		detail: &mockDetailExecutor{},
		create: &mockCreateExecutor{},
	}

	origin, err := locationDomain.NewCoordinates(-23.5505, -46.6333)
	require.NoError(t, err)
	provider := geolocation.NewStaticProvider(origin, time.Second)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewLocationHandler(
		mocks.search,
		mocks.nearby,
		mocks.detail,
		mocks.create,
		provider,
		logger,
	)

	return handler, mocks
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func testLocation(t *testing.T, name string) *locationDomain.Location {
	t.Helper()

	coordinates, err := locationDomain.NewCoordinates(-23.5505, -46.6333)
	require.NoError(t, err)

	location, err := locationDomain.NewLocation(locationDomain.NewLocationInput{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        name,
		Category:    "restaurant",
		Coordinates: coordinates,
		City:        "Sao Paulo",
		Country:     "Brazil",
		CreatedBy:   uuid.Must(uuid.NewV7()),
	})
	require.NoError(t, err)
	return location
}

func TestLocationHandler_SearchHandler(t *testing.T) {
	t.Run("Success_WithFilters", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		locations := []*locationDomain.Location{testLocation(t, "Pizza Place")}
		mocks.search.On("Execute", mock.Anything, locationUseCase.SearchLocationsInput{
			Query:     "pizza",
			Category:  "restaurant",
			City:      "Sao Paulo",
			MinRating: 4.0,
			Page:      1,
			Limit:     20,
		}).Return(result.Ok(locations))

		c, w := createTestContext(
			http.MethodGet,
			"/v1/locations/search?q=pizza&category=restaurant&city=Sao+Paulo&min_rating=4.0",
			nil,
		)

		handler.SearchHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListLocationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "Pizza Place", response.Data[0].Name)
		assert.Equal(t, 1, response.Page)
		assert.Equal(t, 20, response.Limit)
	})

	t.Run("Error_InvalidMinRating", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/locations/search?min_rating=abc", nil)

		handler.SearchHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mocks.search.AssertNotCalled(t, "Execute")
	})

	t.Run("Error_QueryTooShort", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		mocks.search.On("Execute", mock.Anything, mock.Anything).
			Return(result.Fail[[]*locationDomain.Location](apperrors.Validation(
				apperrors.CodeQueryTooShort, "Search query must be at least 2 characters",
			)))

		c, w := createTestContext(http.MethodGet, "/v1/locations/search?q=a", nil)

		handler.SearchHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestLocationHandler_NearbyHandler(t *testing.T) {
	t.Run("Success_ExplicitOrigin", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		locations := []*locationDomain.Location{testLocation(t, "Near Cafe")}
		mocks.nearby.On("Execute", mock.Anything, locationUseCase.GetNearbyLocationsInput{
			Latitude:  -23.5614,
			Longitude: -46.6559,
			RadiusKm:  2.5,
			Limit:     10,
		}).Return(locations, nil)

		c, w := createTestContext(
			http.MethodGet,
			"/v1/locations/nearby?latitude=-23.5614&longitude=-46.6559&radius_km=2.5&limit=10",
			nil,
		)

		handler.NearbyHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mocks.nearby.AssertExpectations(t)
	})

	t.Run("Success_FallsBackToGeolocationProvider", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		mocks.nearby.On("Execute", mock.Anything, locationUseCase.GetNearbyLocationsInput{
			Latitude:  -23.5505,
			Longitude: -46.6333,
			RadiusKm:  defaultRadiusKm,
			Limit:     defaultNearbyLimit,
		}).Return([]*locationDomain.Location{}, nil)

		c, w := createTestContext(http.MethodGet, "/v1/locations/nearby", nil)

		handler.NearbyHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mocks.nearby.AssertExpectations(t)
	})

	t.Run("Error_InvalidLatitude", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		c, w := createTestContext(
			http.MethodGet,
			"/v1/locations/nearby?latitude=abc&longitude=-46.6559",
			nil,
		)

		handler.NearbyHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mocks.nearby.AssertNotCalled(t, "Execute")
	})

	t.Run("Error_NegativeRadius", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		c, w := createTestContext(
			http.MethodGet,
			"/v1/locations/nearby?latitude=-23.5614&longitude=-46.6559&radius_km=-1",
			nil,
		)

		handler.NearbyHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mocks.nearby.AssertNotCalled(t, "Execute")
	})
}

func TestLocationHandler_DetailHandler(t *testing.T) {
	t.Run("Success_ReturnsLocation", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		location := testLocation(t, "Central Park")
		mocks.detail.On("Execute", mock.Anything, location.ID).
			Return(result.Ok(location))

		c, w := createTestContext(http.MethodGet, "/v1/locations/"+location.ID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: location.ID.String()}}

		handler.DetailHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LocationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, location.ID.String(), response.ID)
		assert.Equal(t, "Central Park", response.Name)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		id := uuid.Must(uuid.NewV7())
		mocks.detail.On("Execute", mock.Anything, id).
			Return(result.Fail[*locationDomain.Location](locationDomain.ErrLocationNotFound))

		c, w := createTestContext(http.MethodGet, "/v1/locations/"+id.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.DetailHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/locations/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		handler.DetailHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mocks.detail.AssertNotCalled(t, "Execute")
	})
}

func TestLocationHandler_CreateHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		userID := uuid.Must(uuid.NewV7())
		location := testLocation(t, "New Bistro")
		mocks.create.On("Execute", mock.Anything, locationUseCase.CreateLocationInput{
			Name:      "New Bistro",
			Category:  "restaurant",
			Latitude:  -23.5505,
			Longitude: -46.6333,
			City:      "Sao Paulo",
			Country:   "Brazil",
			CreatedBy: userID,
		}).Return(result.Ok(location))

		c, w := createTestContext(http.MethodPost, "/v1/locations", dto.CreateLocationRequest{
			Name:      "New Bistro",
			Category:  "restaurant",
			Latitude:  -23.5505,
			Longitude: -46.6333,
			City:      "Sao Paulo",
			Country:   "Brazil",
		})
		c.Request = c.Request.WithContext(userHTTP.WithUserID(c.Request.Context(), userID))

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Error_NotAuthenticated", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/locations", dto.CreateLocationRequest{
			Name:     "New Bistro",
			Category: "restaurant",
			City:     "Sao Paulo",
			Country:  "Brazil",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mocks.create.AssertNotCalled(t, "Execute")
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		handler, mocks := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/locations", dto.CreateLocationRequest{
			Category: "restaurant",
			City:     "Sao Paulo",
			Country:  "Brazil",
		})
		c.Request = c.Request.WithContext(
			userHTTP.WithUserID(c.Request.Context(), uuid.Must(uuid.NewV7())),
		)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mocks.create.AssertNotCalled(t, "Execute")
	})
}
