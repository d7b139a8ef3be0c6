package form

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingForm/internal/domain"
	"github.com/m04kA/SMC-CourtBookingForm/internal/service/form/models"
)

// Options настройки сервиса форм
type Options struct {
	Session         SessionOptions
	SessionTTL      time.Duration // Сессия без обращений дольше TTL удаляется
	CleanupInterval time.Duration
}

// Service сервис для работы с сессиями формы бронирования
// Сессии хранятся только в памяти процесса
type Service struct {
	quoteUC      RefreshQuoteUseCase
	commitUC     CommitBookingUseCase
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
	opts         Options

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService создает новый экземпляр сервиса форм
func NewService(
	quoteUC RefreshQuoteUseCase,
	commitUC CommitBookingUseCase,
	metrics MetricsRecorder,
	logger Logger,
	opts Options,
) *Service {
	return &Service{
		quoteUC:      quoteUC,
		commitUC:     commitUC,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		opts:         opts,
		sessions:     make(map[string]*Session),
	}
}

// CreateSession создает новую сессию с пустым черновиком
func (s *Service) CreateSession() *models.SessionState {
	id := uuid.NewString()
	session := newSession(id, s.quoteUC, s.commitUC, s.metrics, s.logger, s.opts.Session, s.timeProvider.Now())

	s.mu.Lock()
	s.sessions[id] = session
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(count)
	s.logger.Info("CreateSession: session=%s created, active=%d", id, count)

	return session.State()
}

// Session возвращает сессию по ID и отмечает обращение к ней
func (s *Service) Session(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	session.touch(s.timeProvider.Now())
	return session, nil
}

// GetState возвращает состояние формы
// При wait=true дожидается завершения запросов расчёта или отмены ctx
func (s *Service) GetState(ctx context.Context, id string, wait bool) (*models.SessionState, error) {
	session, err := s.Session(id)
	if err != nil {
		return nil, err
	}

	if wait {
		if err := session.Wait(ctx); err != nil {
			s.logger.Warn("GetState: session=%s wait interrupted: %v", id, err)
		}
	}

	return session.State(), nil
}

// UpdateDraft применяет изменения полей черновика
func (s *Service) UpdateDraft(id string, patch domain.DraftPatch) (*models.SessionState, error) {
	session, err := s.Session(id)
	if err != nil {
		return nil, err
	}
	return session.UpdateDraft(patch)
}

// ChangeHours меняет длительность бронирования
func (s *Service) ChangeHours(id string, delta int) (*models.SessionState, error) {
	session, err := s.Session(id)
	if err != nil {
		return nil, err
	}
	return session.ChangeHours(delta)
}

// ChangeEquipment меняет количество инвентаря
func (s *Service) ChangeEquipment(id string, item domain.EquipmentItem, delta int) (*models.SessionState, error) {
	session, err := s.Session(id)
	if err != nil {
		return nil, err
	}
	return session.ChangeEquipment(item, delta)
}

// Commit отправляет бронирование
func (s *Service) Commit(ctx context.Context, id string) (*models.SessionState, error) {
	session, err := s.Session(id)
	if err != nil {
		return nil, err
	}
	return session.Commit(ctx)
}

// DeleteSession закрывает и удаляет сессию
func (s *Service) DeleteSession(id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	session.Close()
	s.metrics.SetActiveSessions(count)
	s.logger.Info("DeleteSession: session=%s deleted, active=%d", id, count)

	return nil
}

// Run периодически удаляет неактивные сессии, пока ctx не отменён
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.EvictExpired()
		}
	}
}

// EvictExpired удаляет сессии, к которым не обращались дольше SessionTTL
// Возвращает количество удалённых сессий
func (s *Service) EvictExpired() int {
	now := s.timeProvider.Now()

	s.mu.Lock()
	var expired []*Session
	for id, session := range s.sessions {
		if session.idleSince(now) > s.opts.SessionTTL {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}

	if len(expired) > 0 {
		s.metrics.SetActiveSessions(count)
		s.logger.Info("EvictExpired: removed %d sessions, active=%d", len(expired), count)
	}

	return len(expired)
}

// Shutdown закрывает все сессии
func (s *Service) Shutdown() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}

	s.metrics.SetActiveSessions(0)
}
