package refresh_quote

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/integrations/pricingservice"
	"github.com/m04kA/SMC-CourtBookingForm/pkg/metrics"
)

// --- Mocks ---

type mockPricingClient struct {
	getQuoteFn func(ctx context.Context, req *pricingservice.QuoteRequest) (*pricingservice.Quote, error)
	calls      []*pricingservice.QuoteRequest
}

func (m *mockPricingClient) GetQuote(ctx context.Context, req *pricingservice.QuoteRequest) (*pricingservice.Quote, error) {
	m.calls = append(m.calls, req)
	return m.getQuoteFn(ctx, req)
}

type fakeMetrics struct {
	outcomes []string
}

func (f *fakeMetrics) ObserveQuote(outcome string) {
	f.outcomes = append(f.outcomes, outcome)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func quoteOf(base, equipment, coach, total float64) *mockPricingClient {
	return &mockPricingClient{
		getQuoteFn: func(ctx context.Context, req *pricingservice.QuoteRequest) (*pricingservice.Quote, error) {
			return &pricingservice.Quote{
				BaseHourPrice: base,
				EquipmentCost: equipment,
				CoachCost:     coach,
				TotalPrice:    total,
			}, nil
		},
	}
}

func scenarioDraft(t *testing.T) domain.Draft {
	t.Helper()
	d := domain.NewDraft()
	d.CourtType = domain.CourtTypeIndoor
	d.Date = "2024-06-01"
	d.StartTime = "18:00"
	d.ChangeHours(1)
	require.NoError(t, d.ChangeEquipment(domain.EquipmentRacket, 1))
	d.Coach = true
	return d
}

// --- Tests ---

func TestExecute_Scenario(t *testing.T) {
	client := quoteOf(200, 50, 100, 350)
	m := &fakeMetrics{}
	uc := NewUseCase(client, m, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Draft: scenarioDraft(t), Generation: 1})

	require.NoError(t, err)
	require.Len(t, client.calls, 1)
	assert.Equal(t, []string{"racket"}, client.calls[0].Equipment)
	assert.True(t, client.calls[0].Coach)
	assert.Equal(t, 2, client.calls[0].Hours)
	assert.Equal(t, "indoor", client.calls[0].CourtType)

	assert.Equal(t, &domain.Quote{BaseHourPrice: 200, EquipmentCost: 50, CoachCost: 100, TotalPrice: 350}, resp.Quote)
	assert.Equal(t, []string{metrics.OutcomeSuccess}, m.outcomes)
}

func TestExecute_IncompleteDraftSkipsRequest(t *testing.T) {
	for _, unset := range []func(d *domain.Draft){
		func(d *domain.Draft) { d.CourtType = domain.CourtTypeUnset },
		func(d *domain.Draft) { d.Date = "" },
		func(d *domain.Draft) { d.StartTime = "" },
	} {
		client := quoteOf(1, 1, 1, 3)
		m := &fakeMetrics{}
		uc := NewUseCase(client, m, nopLogger{})

		draft := scenarioDraft(t)
		unset(&draft)

		resp, err := uc.Execute(context.Background(), &Request{Draft: draft})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrDraftIncomplete)
		assert.Empty(t, client.calls)
		assert.Equal(t, []string{metrics.OutcomeSkipped}, m.outcomes)
	}
}

func TestExecute_InvalidCourtType(t *testing.T) {
	client := quoteOf(1, 1, 1, 3)
	uc := NewUseCase(client, &fakeMetrics{}, nopLogger{})

	draft := scenarioDraft(t)
	draft.CourtType = domain.CourtType("clay")

	_, err := uc.Execute(context.Background(), &Request{Draft: draft})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, client.calls)
}

func TestExecute_Rejected(t *testing.T) {
	client := &mockPricingClient{
		getQuoteFn: func(ctx context.Context, req *pricingservice.QuoteRequest) (*pricingservice.Quote, error) {
			return nil, fmt.Errorf("%w: Bookings allowed only between 06:00 and 23:00", pricingservice.ErrQuoteRejected)
		},
	}
	m := &fakeMetrics{}
	uc := NewUseCase(client, m, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Draft: scenarioDraft(t)})

	assert.ErrorIs(t, err, ErrQuoteRejected)
	assert.Contains(t, err.Error(), "06:00")
	assert.Equal(t, []string{metrics.OutcomeError}, m.outcomes)
}

func TestExecute_Unavailable(t *testing.T) {
	client := &mockPricingClient{
		getQuoteFn: func(ctx context.Context, req *pricingservice.QuoteRequest) (*pricingservice.Quote, error) {
			return nil, fmt.Errorf("%w: connection refused", pricingservice.ErrInternal)
		},
	}
	uc := NewUseCase(client, &fakeMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Draft: scenarioDraft(t)})

	assert.ErrorIs(t, err, ErrPricingUnavailable)
}

func TestExecute_Canceled(t *testing.T) {
	client := &mockPricingClient{
		getQuoteFn: func(ctx context.Context, req *pricingservice.QuoteRequest) (*pricingservice.Quote, error) {
			return nil, fmt.Errorf("%w: %v", pricingservice.ErrInternal, ctx.Err())
		},
	}
	uc := NewUseCase(client, &fakeMetrics{}, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, &Request{Draft: scenarioDraft(t)})

	assert.ErrorIs(t, err, ErrPricingUnavailable)
	assert.Contains(t, err.Error(), context.Canceled.Error())
}
