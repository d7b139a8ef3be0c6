package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form/models"
	"github.com/m04kA/SMC-CourtBookingForm/internal/usecase/commit_booking"
	"github.com/m04kA/SMC-CourtBookingForm/internal/usecase/refresh_quote"
)

// SessionOptions настройки поведения сессии
type SessionOptions struct {
	// QuoteDebounce задержка перед запросом расчёта, 0 - запрос сразу
	QuoteDebounce time.Duration
	// KeepStaleQuote оставляет последний расчёт, когда черновик перестаёт быть полным
	KeepStaleQuote bool
}

// Session состояние одной формы бронирования
//
// Каждое изменение отслеживаемого поля увеличивает поколение черновика.
// Запрос расчёта несет номер поколения; ответ применяется, только если
// поколение не изменилось, иначе отбрасывается. Новое поколение отменяет
// запланированный и выполняющийся запросы.
type Session struct {
	id       string
	quoteUC  RefreshQuoteUseCase
	commitUC CommitBookingUseCase
	metrics  MetricsRecorder
	logger   Logger
	opts     SessionOptions

	mu         sync.Mutex
	draft      domain.Draft
	quote      *domain.Quote
	quoteErr   error
	result     *domain.BookingResult
	generation uint64
	timer      *time.Timer
	cancel     context.CancelFunc
	pending    int
	idle       chan struct{} // закрыт, когда pending == 0
	lastActive time.Time
	closed     bool
}

func newSession(
	id string,
	quoteUC RefreshQuoteUseCase,
	commitUC CommitBookingUseCase,
	metrics MetricsRecorder,
	logger Logger,
	opts SessionOptions,
	now time.Time,
) *Session {
	idle := make(chan struct{})
	close(idle)

	return &Session{
		id:         id,
		quoteUC:    quoteUC,
		commitUC:   commitUC,
		metrics:    metrics,
		logger:     logger,
		opts:       opts,
		draft:      domain.NewDraft(),
		idle:       idle,
		lastActive: now,
	}
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string {
	return s.id
}

// State возвращает снимок состояния формы
func (s *Session) State() *models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// UpdateDraft применяет изменения полей даты, времени, типа корта и тренера
func (s *Session) UpdateDraft(patch domain.DraftPatch) (*models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}

	changed, err := patch.Apply(&s.draft)
	if err != nil {
		return nil, err
	}

	if changed {
		s.scheduleRefreshLocked()
	}

	return s.stateLocked(), nil
}

// ChangeHours меняет длительность на delta часов в пределах [MinHours, MaxHours]
func (s *Session) ChangeHours(delta int) (*models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	if err := domain.ValidateCounterDelta(delta); err != nil {
		return nil, err
	}

	before := s.draft.Hours
	s.draft.ChangeHours(delta)
	if s.draft.Hours != before {
		s.scheduleRefreshLocked()
	}

	return s.stateLocked(), nil
}

// ChangeEquipment меняет количество инвентаря на delta в пределах [0, MaxEquipmentCount]
func (s *Session) ChangeEquipment(item domain.EquipmentItem, delta int) (*models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	if err := domain.ValidateCounterDelta(delta); err != nil {
		return nil, err
	}

	before := s.draft.EquipmentCount(item)
	if err := s.draft.ChangeEquipment(item, delta); err != nil {
		return nil, err
	}
	if s.draft.EquipmentCount(item) != before {
		s.scheduleRefreshLocked()
	}

	return s.stateLocked(), nil
}

// Commit отправляет текущий черновик на бронирование
// Без расчёта стоимости возвращает commit_booking.ErrQuoteRequired и ничего не отправляет
func (s *Session) Commit(ctx context.Context) (*models.SessionState, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	req := &commit_booking.Request{
		Draft:    s.draft.Clone(),
		HasQuote: s.quote != nil,
	}
	s.mu.Unlock()

	resp, err := s.commitUC.Execute(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if errors.Is(err, commit_booking.ErrBookingUnavailable) {
			s.result = &domain.BookingResult{Error: domain.BookingFallbackMessage}
			s.logger.Warn("Session %s: booking failed: %v", s.id, err)
		}
		return s.stateLocked(), err
	}

	result := resp.Result
	s.result = &result

	return s.stateLocked(), nil
}

// Wait блокируется, пока есть запланированные или выполняющиеся запросы расчёта
func (s *Session) Wait(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close отменяет запросы и запрещает дальнейшие изменения
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopRefreshLocked()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}

// scheduleRefreshLocked начинает новое поколение черновика
func (s *Session) scheduleRefreshLocked() {
	s.generation++
	s.stopRefreshLocked()

	if !s.draft.IsQuotable() {
		if !s.opts.KeepStaleQuote {
			s.quote = nil
		}
		s.quoteErr = nil
		return
	}

	gen := s.generation
	draft := s.draft.Clone()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.addPendingLocked()

	if s.opts.QuoteDebounce <= 0 {
		go s.refresh(ctx, gen, draft)
		return
	}

	s.timer = time.AfterFunc(s.opts.QuoteDebounce, func() {
		s.refresh(ctx, gen, draft)
	})
}

// stopRefreshLocked отменяет запланированный запрос и контекст выполняющегося
func (s *Session) stopRefreshLocked() {
	if s.timer != nil {
		if s.timer.Stop() {
			s.donePendingLocked()
		}
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) refresh(ctx context.Context, gen uint64, draft domain.Draft) {
	resp, err := s.quoteUC.Execute(ctx, &refresh_quote.Request{Draft: draft, Generation: gen})

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.donePendingLocked()

	if s.closed || gen != s.generation {
		s.metrics.IncQuoteDiscarded()
		s.logger.Info("Session %s: discarded quote for generation=%d, current=%d", s.id, gen, s.generation)
		return
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.timer = nil

	if err != nil {
		if errors.Is(err, refresh_quote.ErrDraftIncomplete) {
			return
		}
		// Предыдущий расчёт остаётся, ошибка видна в состоянии формы
		s.quoteErr = err
		return
	}

	s.quote = resp.Quote
	s.quoteErr = nil
}

func (s *Session) addPendingLocked() {
	if s.pending == 0 {
		s.idle = make(chan struct{})
	}
	s.pending++
}

func (s *Session) donePendingLocked() {
	s.pending--
	if s.pending == 0 {
		close(s.idle)
	}
}

func (s *Session) stateLocked() *models.SessionState {
	state := &models.SessionState{
		SessionID:    s.id,
		Draft:        s.draft.Clone(),
		Manifest:     s.draft.Manifest(),
		QuotePending: s.pending > 0,
		CanCommit:    s.quote != nil,
		Generation:   s.generation,
	}

	if s.quote != nil {
		quote := *s.quote
		state.Quote = &quote
	}
	if s.quoteErr != nil {
		state.QuoteError = s.quoteErr.Error()
	}
	if s.result != nil {
		result := *s.result
		state.BookingResult = &result
	}

	return state
}
