package form

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-CourtBookingForm/internal/usecase/commit_booking"
	"github.com/m04kA/SMC-CourtBookingForm/internal/usecase/refresh_quote"
	"github.com/m04kA/SMC-CourtBookingForm/pkg/metrics"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*Service, *fakeClock, *fakeMetrics, *fakePricingClient) {
	t.Helper()

	var noMetrics *metrics.Metrics
	pricing := &fakePricingClient{respond: fixedQuote(350)}
	booking := &fakeBookingClient{resp: &bookingservice.BookResponse{Message: "Booking confirmed"}}
	m := &fakeMetrics{}

	svc := NewService(
		refresh_quote.NewUseCase(pricing, noMetrics, nopLogger{}),
		commit_booking.NewUseCase(booking, noMetrics, nopLogger{}),
		m,
		nopLogger{},
		Options{
			SessionTTL:      30 * time.Minute,
			CleanupInterval: time.Minute,
		},
	)
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc.timeProvider = clock
	t.Cleanup(svc.Shutdown)

	return svc, clock, m, pricing
}

func TestService_CreateSession(t *testing.T) {
	svc, _, m, _ := newTestService(t)

	state := svc.CreateSession()

	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, 1, state.Draft.Hours)
	assert.Nil(t, state.Quote)
	assert.False(t, state.CanCommit)
	assert.Equal(t, 1, m.active)

	other := svc.CreateSession()
	assert.NotEqual(t, state.SessionID, other.SessionID)
	assert.Equal(t, 2, m.active)
}

func TestService_SessionNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.GetState(context.Background(), "missing", false)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.ChangeHours("missing", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Commit(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.DeleteSession("missing"), ErrSessionNotFound)
}

func TestService_FullFlow(t *testing.T) {
	svc, _, _, pricing := newTestService(t)
	id := svc.CreateSession().SessionID

	_, err := svc.UpdateDraft(id, completePatch())
	require.NoError(t, err)
	_, err = svc.ChangeEquipment(id, domain.EquipmentRacket, 1)
	require.NoError(t, err)

	state, err := svc.GetState(context.Background(), id, true)
	require.NoError(t, err)
	require.NotNil(t, state.Quote)
	assert.False(t, state.QuotePending)
	assert.Equal(t, []string{"racket"}, state.Manifest)
	assert.NotEmpty(t, pricing.Requests())

	state, err = svc.Commit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Booking confirmed", state.BookingResult.Text())
}

func TestService_DeleteSession(t *testing.T) {
	svc, _, m, _ := newTestService(t)
	id := svc.CreateSession().SessionID

	require.NoError(t, svc.DeleteSession(id))

	_, err := svc.GetState(context.Background(), id, false)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, m.active)
}

func TestService_EvictExpired(t *testing.T) {
	svc, clock, m, _ := newTestService(t)
	idle := svc.CreateSession().SessionID
	active := svc.CreateSession().SessionID

	clock.Advance(20 * time.Minute)
	_, err := svc.GetState(context.Background(), active, false)
	require.NoError(t, err)

	clock.Advance(15 * time.Minute)
	evicted := svc.EvictExpired()

	assert.Equal(t, 1, evicted)
	_, err = svc.GetState(context.Background(), idle, false)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.GetState(context.Background(), active, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, m.active)
}

func TestService_RunStopsOnCancel(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	svc.opts.CleanupInterval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
