package bookingservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newBookingServer(t *testing.T, status int, body string, captured *BookRequest) *httptest.Server {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/book", func(w http.ResponseWriter, req *http.Request) {
		if captured != nil {
			assert.NoError(t, json.NewDecoder(req.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}).Methods(http.MethodPost)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func sampleRequest() *BookRequest {
	return &BookRequest{
		CourtType: "indoor",
		Date:      "2024-06-01",
		StartTime: "18:00",
		Hours:     2,
		Equipment: []string{"racket"},
		Coach:     true,
	}
}

func TestBook_Confirmed(t *testing.T) {
	var captured BookRequest
	srv := newBookingServer(t, http.StatusCreated,
		`{"message":"Booking confirmed","coach_assigned":"coach_1","total_price":2300}`, &captured)
	client := NewClient(srv.URL, time.Second, nopLogger{})

	resp, err := client.Book(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, "Booking confirmed", resp.Message)
	assert.Empty(t, resp.Error)
	require.NotNil(t, resp.CoachAssigned)
	assert.Equal(t, "coach_1", *resp.CoachAssigned)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, 2300.0, *resp.TotalPrice)
	assert.Equal(t, *sampleRequest(), captured)
}

func TestBook_ConflictBodyIsDecoded(t *testing.T) {
	srv := newBookingServer(t, http.StatusConflict, `{"error":"Court already booked"}`, nil)
	client := NewClient(srv.URL, time.Second, nopLogger{})

	resp, err := client.Book(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Message)
	assert.Equal(t, "Court already booked", resp.Error)
}

func TestBook_EmptyObject(t *testing.T) {
	srv := newBookingServer(t, http.StatusOK, `{}`, nil)
	client := NewClient(srv.URL, time.Second, nopLogger{})

	resp, err := client.Book(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Message)
	assert.Empty(t, resp.Error)
}

func TestBook_InvalidBody(t *testing.T) {
	srv := newBookingServer(t, http.StatusInternalServerError, `<html>oops</html>`, nil)
	client := NewClient(srv.URL, time.Second, nopLogger{})

	resp, err := client.Book(context.Background(), sampleRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestBook_TransportError(t *testing.T) {
	srv := newBookingServer(t, http.StatusOK, `{}`, nil)
	srv.Close()
	client := NewClient(srv.URL, time.Second, nopLogger{})

	resp, err := client.Book(context.Background(), sampleRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}
