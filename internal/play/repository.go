package play

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/saulo-duarte/studylens/internal/session"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrVersionConflict means the stored state moved past the expected version.
	ErrVersionConflict = errors.New("play state version conflict")
)

type Repository interface {
	Save(ctx context.Context, q *StoredQuiz) error
	Get(ctx context.Context, id uuid.UUID) (*StoredQuiz, error)
	// UpdateState stores snap as version+1 only if the quiz is still at version.
	UpdateState(ctx context.Context, id uuid.UUID, version int, snap session.Snapshot) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Save(ctx context.Context, q *StoredQuiz) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quizRepository) Get(ctx context.Context, id uuid.UUID) (*StoredQuiz, error) {
	var q StoredQuiz
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) UpdateState(ctx context.Context, id uuid.UUID, version int, snap session.Snapshot) error {
	res := r.db.WithContext(ctx).
		Model(&StoredQuiz{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"state":   datatypes.NewJSONType(snap),
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

type memoryRepository struct {
	mu      sync.Mutex
	quizzes map[uuid.UUID]StoredQuiz
}

// NewMemoryRepository keeps quizzes for the lifetime of the process.
func NewMemoryRepository() Repository {
	return &memoryRepository{quizzes: make(map[uuid.UUID]StoredQuiz)}
}

func (r *memoryRepository) Save(_ context.Context, q *StoredQuiz) error {
	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.quizzes[q.ID] = *q
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id uuid.UUID) (*StoredQuiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.quizzes[id]
	if !ok {
		return nil, ErrQuizNotFound
	}
	return &q, nil
}

func (r *memoryRepository) UpdateState(_ context.Context, id uuid.UUID, version int, snap session.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.quizzes[id]
	if !ok {
		return ErrQuizNotFound
	}
	if q.Version != version {
		return ErrVersionConflict
	}

	q.State = datatypes.NewJSONType(snap)
	q.Version++
	q.UpdatedAt = time.Now().UTC()
	r.quizzes[id] = q
	return nil
}
