package quizgen

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type generation struct {
	id     uuid.UUID
	cancel context.CancelCauseFunc
}

// Tracker gives each quiz generation an id and cancels the in-flight
// generation of the same owner when a newer one begins.
type Tracker struct {
	mu       sync.Mutex
	inflight map[string]*generation
}

func NewTracker() *Tracker {
	return &Tracker{inflight: make(map[string]*generation)}
}

// Begin registers a new generation for owner. The returned context is
// cancelled with ErrSuperseded if another generation begins first; done
// must be called when the generation ends.
func (t *Tracker) Begin(ctx context.Context, owner string) (context.Context, uuid.UUID, func()) {
	ctx, cancel := context.WithCancelCause(ctx)
	gen := &generation{id: uuid.New(), cancel: cancel}

	t.mu.Lock()
	if prev, ok := t.inflight[owner]; ok {
		prev.cancel(ErrSuperseded)
	}
	t.inflight[owner] = gen
	t.mu.Unlock()

	done := func() {
		t.mu.Lock()
		if cur, ok := t.inflight[owner]; ok && cur == gen {
			delete(t.inflight, owner)
		}
		t.mu.Unlock()
		cancel(nil)
	}
	return ctx, gen.id, done
}

// Active returns the id of the owner's in-flight generation.
func (t *Tracker) Active(owner string) (uuid.UUID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	gen, ok := t.inflight[owner]
	if !ok {
		return uuid.Nil, false
	}
	return gen.id, true
}

// LogSuperseded records that genID lost to the owner's newer generation.
func (t *Tracker) LogSuperseded(log logrus.FieldLogger, owner string, genID uuid.UUID) {
	fields := logrus.Fields{"generation_id": genID}
	if newer, ok := t.Active(owner); ok {
		fields["superseded_by"] = newer
	}
	log.WithFields(fields).Info("Quiz generation superseded")
}

func Superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), ErrSuperseded)
}
