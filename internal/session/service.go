package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/kosakata/internal/ledger"
	"github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/store"
	"github.com/abhisek/kosakata/internal/vocab"
)

// SessionEventRecorder receives session and answer events. store.EventRepo
// satisfies it.
type SessionEventRecorder interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// Options configures a Service. Vocab is required; everything else has a
// usable default.
type Options struct {
	Vocab   *vocab.Store
	Ledger  *ledger.Ledger
	Repo    ledger.Repo
	Events  SessionEventRecorder
	Sampler *quiz.Sampler
	Limits  Limits
	Logger  *zap.Logger
	Now     func() time.Time
}

// Service owns the state shared by all quizzes of one process.
type Service struct {
	vocab   *vocab.Store
	ledger  *ledger.Ledger
	repo    ledger.Repo
	events  SessionEventRecorder
	sampler *quiz.Sampler
	grader  *quiz.Grader
	limits  Limits
	logger  *zap.Logger
	now     func() time.Time

	// mu serializes grading and the ledger rewrite that follows it.
	mu sync.Mutex
}

// NewService creates a Service. Vocabulary words missing from the ledger
// get zero records so the next save lists them.
func NewService(opts Options) *Service {
	if opts.Vocab == nil {
		opts.Vocab = vocab.Default()
	}
	if opts.Ledger == nil {
		opts.Ledger = ledger.New()
	}
	if opts.Sampler == nil {
		opts.Sampler = quiz.NewSampler(nil)
	}
	if opts.Limits == (Limits{}) {
		opts.Limits = DefaultLimits
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.Ledger.Ensure(opts.Vocab.Words()...)

	return &Service{
		vocab:   opts.Vocab,
		ledger:  opts.Ledger,
		repo:    opts.Repo,
		events:  opts.Events,
		sampler: opts.Sampler,
		grader:  quiz.NewGrader(opts.Ledger),
		limits:  opts.Limits,
		logger:  opts.Logger,
		now:     opts.Now,
	}
}

// Vocab returns the vocabulary store.
func (s *Service) Vocab() *vocab.Store { return s.vocab }

// Ledger returns the live attempt ledger.
func (s *Service) Ledger() *ledger.Ledger { return s.ledger }

// Limits returns the question count limits.
func (s *Service) Limits() Limits { return s.limits }

// DefaultSettings returns settings selecting every current category.
func (s *Service) DefaultSettings() Settings {
	return DefaultSettings(s.limits, s.vocab.Categories())
}

// Start samples a new session. An empty category selection produces an
// empty session rather than an error.
func (s *Service) Start(ctx context.Context, settings Settings) *Session {
	settings = settings.Normalize(s.limits)
	items := s.sampler.Sample(s.vocab, settings.Categories, settings.Count, s.ledger.Snapshot())
	sess := newSession(uuid.NewString(), items, settings, s.now())

	s.logger.Info("session started",
		zap.String("session_id", sess.ID),
		zap.String("direction", string(settings.Direction)),
		zap.Strings("categories", settings.Categories),
		zap.Int("requested", settings.Count),
		zap.Int("items", len(items)),
	)
	s.appendSession(ctx, store.SessionEventData{
		SessionID:  sess.ID,
		Action:     store.ActionStart,
		Direction:  string(settings.Direction),
		Categories: settings.Categories,
		Questions:  len(items),
	})
	return sess
}

// Restart discards old and starts a new session with settings. Items already
// graded in old stay counted in the ledger.
func (s *Service) Restart(ctx context.Context, old *Session, settings Settings) *Session {
	if old != nil && !old.Submitted() {
		correct, _ := old.Score()
		s.appendSession(ctx, store.SessionEventData{
			SessionID:  old.ID,
			Action:     store.ActionRestart,
			Direction:  string(old.Direction),
			Categories: old.Settings.Categories,
			Questions:  len(old.Items),
			Correct:    correct,
			Duration:   s.now().Sub(old.StartedAt),
		})
	}
	return s.Start(ctx, settings)
}

// Submit grades every item of sess that has not been graded yet. Blank
// answers count as wrong. Calling Submit again grades nothing and records
// nothing. The returned error reports a failed ledger save; the grading
// itself always stands.
func (s *Service) Submit(ctx context.Context, sess *Session) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.Submitted() {
		return sess.Summarize(), nil
	}

	var graded []int
	for i, item := range sess.Items {
		if sess.IsGraded(i) {
			continue
		}
		res := s.grader.Grade(item, sess.Answers[i], sess.Direction)
		sess.Results[i] = &res
		graded = append(graded, i)
	}
	sess.submittedAt = s.now()
	sum := sess.Summarize()

	var saveErr error
	if len(graded) > 0 && s.repo != nil {
		if err := s.repo.Save(ctx, s.ledger); err != nil {
			s.logger.Error("save ledger failed", zap.String("session_id", sess.ID), zap.Error(err))
			saveErr = fmt.Errorf("save ledger: %w", err)
		}
	}

	for _, i := range graded {
		res := sess.Results[i]
		s.appendAnswer(ctx, store.AnswerEventData{
			SessionID: sess.ID,
			Word:      sess.Items[i].Source,
			Category:  sess.Items[i].Category,
			Direction: string(sess.Direction),
			Prompt:    sess.Prompt(i),
			Expected:  res.Expected,
			Given:     res.Given,
			Correct:   res.Correct,
		})
	}
	s.appendSession(ctx, store.SessionEventData{
		SessionID:  sess.ID,
		Action:     store.ActionEnd,
		Direction:  string(sess.Direction),
		Categories: sess.Settings.Categories,
		Questions:  sum.Total,
		Correct:    sum.Correct,
		Duration:   sum.Duration,
	})

	s.logger.Info("session submitted",
		zap.String("session_id", sess.ID),
		zap.Int("correct", sum.Correct),
		zap.Int("total", sum.Total),
		zap.Duration("duration", sum.Duration),
	)
	return sum, saveErr
}

// AddWord inserts a word into the vocabulary for the rest of this run.
func (s *Service) AddWord(source, gloss string) (vocab.Entry, bool, error) {
	entry, replaced, err := s.vocab.Add(source, gloss)
	if err != nil {
		return vocab.Entry{}, false, err
	}
	s.logger.Info("word added",
		zap.String("word", entry.Source),
		zap.String("category", entry.Category),
		zap.Bool("replaced", replaced),
	)
	return entry, replaced, nil
}

func (s *Service) appendSession(ctx context.Context, data store.SessionEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendSessionEvent(ctx, data); err != nil {
		s.logger.Warn("append session event failed", zap.String("action", data.Action), zap.Error(err))
	}
}

func (s *Service) appendAnswer(ctx context.Context, data store.AnswerEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendAnswerEvent(ctx, data); err != nil {
		s.logger.Warn("append answer event failed", zap.String("word", data.Word), zap.Error(err))
	}
}
