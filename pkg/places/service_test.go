package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/places/pkg/places/models"
)

// fakePlacesAPI records every request and answers with a fixed status and body.
type fakePlacesAPI struct {
	mu       sync.Mutex
	status   int
	body     string
	requests []*http.Request
}

func (f *fakePlacesAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r)
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakePlacesAPI) lastRequest(t *testing.T) *http.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the server")
	return f.requests[len(f.requests)-1]
}

func (f *fakePlacesAPI) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// newTestService starts a fake API and returns a Service pointed at it.
func newTestService(t *testing.T, status int, body string, opts ...ClientOption) (*Service, *fakePlacesAPI) {
	t.Helper()
	api := &fakePlacesAPI{status: status, body: body}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	opts = append([]ClientOption{
		WithBaseURL(server.URL + "/maps/api/place"),
		WithHTTPClient(server.Client()),
		WithLogger(arbor.NewLogger()),
	}, opts...)
	return NewService(NewClient(opts...)), api
}

func TestService_GetDetails(t *testing.T) {
	service, api := newTestService(t, http.StatusOK, `{
		"status": "OK",
		"result": {"place_id": "abc", "name": "Nyhavn", "business_status": "operational", "utc_offset": -300}
	}`)

	resp, err := service.GetDetails(context.Background(), "abc")
	require.NoError(t, err)

	req := api.lastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/maps/api/place/details/json", req.URL.Path)
	assert.Equal(t, "abc", req.URL.Query().Get("placeid"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.RequestID)
	assert.Contains(t, resp.Response.BodyString(), "Nyhavn")

	require.NotNil(t, resp.Body)
	assert.Equal(t, models.StatusOk, resp.Body.Status)
	require.NotNil(t, resp.Body.Result)
	assert.Equal(t, "Nyhavn", resp.Body.Result.Name)
	assert.Equal(t, models.BusinessStatusOperational, resp.Body.Result.BusinessStatus)
	assert.Equal(t, -5*60*60, int(resp.Body.Result.UTCOffset.Seconds()))
}

func TestService_GetDetails_ValidationBeforeNetwork(t *testing.T) {
	service, api := newTestService(t, http.StatusOK, `{}`)

	_, err := service.GetDetails(context.Background(), " ")
	assert.ErrorIs(t, err, ErrPropertyNotSet)

	_, err = service.GetDetailsWithOptions(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilOptions)

	_, err = service.NearbySearch(context.Background(), 0, 0, 100)
	assert.ErrorIs(t, err, ErrPropertyNotSet)

	_, err = service.TextSearch(context.Background(), "pizza")
	assert.ErrorIs(t, err, ErrPropertyNotSet)

	assert.Equal(t, 0, api.requestCount())
}

func TestService_HTTPError(t *testing.T) {
	service, _ := newTestService(t, http.StatusBadRequest, `{"error":{"code":7,"message":"bad key"}}`)

	resp, err := service.GetDetails(context.Background(), "abc")
	require.Error(t, err)
	assert.Nil(t, resp)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 7, httpErr.Code)
	assert.Equal(t, "bad key", httpErr.Message)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	require.NotNil(t, httpErr.Response)
	assert.Equal(t, http.StatusBadRequest, httpErr.Response.StatusCode)
	assert.True(t, IsHTTPStatus(err, http.StatusBadRequest))
	assert.False(t, IsNotFound(err))
}

func TestService_HTTPError_PlainBody(t *testing.T) {
	service, _ := newTestService(t, http.StatusBadGateway, "upstream down\n")

	_, err := service.NearbySearch(context.Background(), 1, 2, 10)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 0, httpErr.Code)
	assert.Equal(t, "upstream down", httpErr.Message)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
}

func TestService_HTTPError_EmptyBody(t *testing.T) {
	service, _ := newTestService(t, http.StatusNotFound, "")

	_, err := service.GetDetails(context.Background(), "abc")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), http.StatusText(http.StatusNotFound))
}

func TestService_InvalidBody(t *testing.T) {
	service, _ := newTestService(t, http.StatusOK, `<html>oops</html>`)

	_, err := service.GetDetails(context.Background(), "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidBody)
}

func TestService_EndpointStatusIsNotAnError(t *testing.T) {
	service, _ := newTestService(t, http.StatusOK, `{"status":"ZERO_RESULTS","results":[]}`)

	resp, err := service.NearbySearch(context.Background(), 55.6761, 12.5683, 500)
	require.NoError(t, err)
	assert.Equal(t, models.StatusZeroResults, resp.Body.Status)
	assert.Empty(t, resp.Body.Results)
	assert.False(t, resp.Body.HasNextPageToken())
}

func TestService_NearbySearch_PassesLatitudeAndLongitude(t *testing.T) {
	service, api := newTestService(t, http.StatusOK, `{"status":"OK","results":[]}`)

	_, err := service.NearbySearch(context.Background(), 10.5, 20.25, 300)
	require.NoError(t, err)

	q := api.lastRequest(t).URL.Query()
	assert.Equal(t, "10.5,20.25", q.Get("location"))
	assert.Equal(t, "300", q.Get("radius"))
	assert.Equal(t, "prominence", q.Get("rankby"))
}

func TestService_NearbySearch_Pages(t *testing.T) {
	service, api := newTestService(t, http.StatusOK, `{
		"status": "OK",
		"results": [{"place_id": "1"}, {"place_id": "2"}],
		"next_page_token": "page-2"
	}`, WithLanguage("da"))

	first, err := service.NearbySearchPoint(context.Background(), models.NewLocation(55.6761, 12.5683), 500)
	require.NoError(t, err)
	require.True(t, first.Body.HasNextPageToken())
	require.Len(t, first.Body.Results, 2)
	assert.Equal(t, "1", first.Body.Results[0].PlaceID)
	assert.Equal(t, "da", api.lastRequest(t).URL.Query().Get("language"))

	_, err = service.NearbySearchPage(context.Background(), first.Body.NextPageToken)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"pagetoken": {"page-2"}}, api.lastRequest(t).URL.Query())
}

func TestService_TextSearch(t *testing.T) {
	service, api := newTestService(t, http.StatusOK, `{
		"status": "OK",
		"results": [{"place_id": "p", "name": "Pizza Place", "price_level": 2, "rating": 4.1}]
	}`, WithAPIKey("secret-key"))

	resp, err := service.TextSearchAt(context.Background(), "pizza", 40.7128, -74.006, 1000)
	require.NoError(t, err)

	q := api.lastRequest(t).URL.Query()
	assert.Equal(t, "pizza", q.Get("query"))
	assert.Equal(t, "40.7128,-74.006", q.Get("location"))
	assert.Equal(t, "secret-key", q.Get("key"))
	assert.NotContains(t, resp.URL, "secret-key")
	assert.Contains(t, resp.URL, "***REDACTED***")

	require.Len(t, resp.Body.Results, 1)
	place := resp.Body.Results[0]
	assert.Equal(t, models.PriceLevelModerate, place.PriceLevel)
	assert.True(t, place.HasRating())
}

func TestService_TextSearchWithOptions(t *testing.T) {
	service, api := newTestService(t, http.StatusOK, `{"status":"OK","results":[]}`, WithLanguage("en"))

	options := NewTextSearchOptionsFromPoint("museum", models.NewLocation(48.8566, 2.3522), 0)
	options.Language = "fr"
	options.MinPrice = models.PriceLevelFree

	_, err := service.TextSearchWithOptions(context.Background(), options)
	require.NoError(t, err)

	q := api.lastRequest(t).URL.Query()
	assert.Equal(t, "fr", q.Get("language"))
	assert.Equal(t, "0", q.Get("minprice"))

	_, err = service.TextSearchWithOptions(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilOptions)
}

func TestService_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	service := NewService(NewClient(WithBaseURL(baseURL)))
	_, err := service.GetDetails(context.Background(), "abc")
	require.Error(t, err)

	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestService_ContextCancelled(t *testing.T) {
	service, _ := newTestService(t, http.StatusOK, `{"status":"OK"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.GetDetails(ctx, "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
