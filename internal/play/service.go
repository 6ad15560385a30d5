package play

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/studylens/internal/config"
	"github.com/saulo-duarte/studylens/internal/history"
	"github.com/saulo-duarte/studylens/internal/quizgen"
	"github.com/saulo-duarte/studylens/internal/session"
)

var (
	ErrNoActiveQuiz = errors.New("no active quiz")
	// ErrStaleCursor means the client acted on a state that is no longer current.
	ErrStaleCursor = errors.New("quiz state changed, reload the current question")
)

type Result struct {
	View   View
	Cursor Cursor
}

type Service interface {
	Start(ctx context.Context, text string, count int) (*Result, error)
	// View returns the current state even for an outdated cursor.
	View(ctx context.Context, cur Cursor) (*Result, error)
	Select(ctx context.Context, cur Cursor, option int) (*Result, error)
	Submit(ctx context.Context, cur Cursor) (*Result, error)
	Advance(ctx context.Context, cur Cursor) (*Result, error)
}

type service struct {
	generator quizgen.Service
	repo      Repository
	history   history.Service
}

func NewService(generator quizgen.Service, repo Repository, hist history.Service) Service {
	return &service{
		generator: generator,
		repo:      repo,
		history:   hist,
	}
}

func (s *service) Start(ctx context.Context, text string, count int) (*Result, error) {
	log := config.WithContext(ctx)

	qz, err := s.generator.GenerateQuiz(ctx, text, count)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(qz)
	if err != nil {
		return nil, err
	}

	stored, err := newStoredQuiz(history.TitleFrom(text), qz, sess)
	if err != nil {
		return nil, fmt.Errorf("encode quiz: %w", err)
	}
	stored.UserID = config.DefaultUser

	if err := s.repo.Save(ctx, stored); err != nil {
		log.WithError(err).Error("Failed to store quiz")
		return nil, fmt.Errorf("store quiz: %w", err)
	}

	log.WithFields(logrus.Fields{"quiz_id": stored.ID, "questions": len(qz)}).Info("Play session started")
	return s.result(stored, sess), nil
}

func (s *service) View(ctx context.Context, cur Cursor) (*Result, error) {
	stored, sess, err := s.load(ctx, cur)
	if err != nil {
		return nil, err
	}
	return s.result(stored, sess), nil
}

func (s *service) Select(ctx context.Context, cur Cursor, option int) (*Result, error) {
	stored, sess, err := s.loadCurrent(ctx, cur)
	if err != nil {
		return nil, err
	}

	next, err := sess.Select(option)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, stored, next)
}

func (s *service) Submit(ctx context.Context, cur Cursor) (*Result, error) {
	stored, sess, err := s.loadCurrent(ctx, cur)
	if err != nil {
		return nil, err
	}

	next, g, err := sess.Submit()
	if err != nil {
		return nil, err
	}

	res, err := s.commit(ctx, stored, next)
	if err != nil {
		return nil, err
	}

	config.WithContext(ctx).WithFields(logrus.Fields{
		"quiz_id":  stored.ID,
		"index":    next.Progress().Index,
		"correct":  g.Correct,
		"revealed": g.Revealed,
	}).Debug("Answer submitted")
	return res, nil
}

func (s *service) Advance(ctx context.Context, cur Cursor) (*Result, error) {
	stored, sess, err := s.loadCurrent(ctx, cur)
	if err != nil {
		return nil, err
	}

	next, err := sess.Advance()
	if err != nil {
		return nil, err
	}

	res, err := s.commit(ctx, stored, next)
	if err != nil {
		return nil, err
	}

	if next.State() == session.Finished {
		score := next.Progress().Score
		entry := history.Entry{TopicTitle: stored.TopicTitle, HasQuiz: true, QuizScore: &score}
		go s.history.Record(context.WithoutCancel(ctx), entry)

		config.WithContext(ctx).WithFields(logrus.Fields{
			"quiz_id": stored.ID,
			"score":   score,
			"total":   next.Progress().Total,
		}).Info("Play session finished")
	}
	return res, nil
}

func (s *service) load(ctx context.Context, cur Cursor) (*StoredQuiz, session.Session, error) {
	stored, err := s.repo.Get(ctx, cur.QuizID)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			return nil, session.Session{}, ErrNoActiveQuiz
		}
		return nil, session.Session{}, err
	}

	qz, err := stored.Quiz()
	if err != nil {
		return nil, session.Session{}, err
	}

	sess, err := session.Restore(qz, stored.State.Data())
	if err != nil {
		return nil, session.Session{}, fmt.Errorf("restore play state %s: %w", stored.ID, err)
	}
	return stored, sess, nil
}

// loadCurrent is load for actions: the cursor must match the stored version.
func (s *service) loadCurrent(ctx context.Context, cur Cursor) (*StoredQuiz, session.Session, error) {
	stored, sess, err := s.load(ctx, cur)
	if err != nil {
		return nil, session.Session{}, err
	}
	if stored.Version != cur.Version {
		config.WithContext(ctx).WithFields(logrus.Fields{
			"quiz_id": stored.ID,
			"cursor":  cur.Version,
			"stored":  stored.Version,
		}).Info("Rejected action on an outdated play state")
		return nil, session.Session{}, ErrStaleCursor
	}
	return stored, sess, nil
}

func (s *service) commit(ctx context.Context, stored *StoredQuiz, next session.Session) (*Result, error) {
	if err := s.repo.UpdateState(ctx, stored.ID, stored.Version, next.Snapshot()); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return nil, ErrStaleCursor
		}
		return nil, fmt.Errorf("save play state: %w", err)
	}
	stored.Version++
	return s.result(stored, next), nil
}

func (s *service) result(stored *StoredQuiz, sess session.Session) *Result {
	return &Result{
		View:   newView(stored, sess),
		Cursor: Cursor{QuizID: stored.ID, Version: stored.Version},
	}
}
