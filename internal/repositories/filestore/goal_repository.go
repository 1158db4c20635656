package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
)

type goalsDocument struct {
	Goals []domain.Goal `json:"goals"`
}

// JSONGoalRepository keeps savings goals in goals.json with an in-memory copy.
type JSONGoalRepository struct {
	mu     sync.Mutex
	file   jsonFile
	opts   options
	goals  []domain.Goal
	loaded bool
}

// newJSONGoalRepository creates a new repository for savings goals.
func newJSONGoalRepository(fs afero.Fs, dir string, opts ...Option) *JSONGoalRepository {
	r := &JSONGoalRepository{opts: buildOptions(opts)}
	r.file = jsonFile{fs: fs, path: filepath.Join(dir, GoalsFile), opts: &r.opts}
	return r
}

var _ portsrepo.GoalRepositoryFacade = (*JSONGoalRepository)(nil)

// Initialize (re)loads goals.json, creating it if absent.
func (r *JSONGoalRepository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.load()
}

func (r *JSONGoalRepository) load() error {
	doc := goalsDocument{Goals: []domain.Goal{}}
	if err := r.file.loadOrCreate(&doc, func() { doc.Goals = []domain.Goal{} }); err != nil {
		return err
	}
	if doc.Goals == nil {
		doc.Goals = []domain.Goal{}
	}
	r.goals = doc.Goals
	r.loaded = true
	return nil
}

func (r *JSONGoalRepository) ensureLoaded() error {
	if r.loaded {
		return nil
	}
	return r.load()
}

func (r *JSONGoalRepository) persist(goals []domain.Goal) error {
	if err := r.file.save(goalsDocument{Goals: goals}); err != nil {
		return err
	}
	r.goals = goals
	return nil
}

// ListGoals returns a copy of every goal.
func (r *JSONGoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]domain.Goal{}, r.goals...), nil
}

// FindGoalByID returns the goal with the given id or apperrors.ErrNotFound.
func (r *JSONGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	for _, g := range r.goals {
		if g.ID == goalID {
			return &g, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// TotalAllocated sums the allocations of every goal, active and completed.
func (r *JSONGoalRepository) TotalAllocated(ctx context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, g := range r.goals {
		total = total.Add(g.AllocatedAmount)
	}
	return total, nil
}

// AddGoal creates an active goal with nothing allocated.
func (r *JSONGoalRepository) AddGoal(ctx context.Context, draft domain.GoalDraft) (*domain.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	goal := domain.NewGoal(r.opts.newID(), draft, r.opts.now())
	for _, existing := range r.goals {
		if existing.ID == goal.ID {
			return nil, fmt.Errorf("%w: goal id %s", apperrors.ErrDuplicate, goal.ID)
		}
	}

	next := append(append([]domain.Goal{}, r.goals...), goal)
	if err := r.persist(next); err != nil {
		return nil, err
	}
	return &goal, nil
}

// mutate applies fn to a copy of the goal with the given id and persists the result when fn
// reports a change.
func (r *JSONGoalRepository) mutate(ctx context.Context, goalID string, fn func(g *domain.Goal) bool) (*domain.Goal, domain.MutationResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if err := r.ensureLoaded(); err != nil {
		return nil, "", err
	}

	next := append([]domain.Goal{}, r.goals...)
	for i := range next {
		if next[i].ID != goalID {
			continue
		}
		if !fn(&next[i]) {
			g := next[i]
			return &g, domain.MutationUnchanged, nil
		}
		if err := r.persist(next); err != nil {
			return nil, "", err
		}
		g := next[i]
		return &g, domain.MutationUpdated, nil
	}
	return nil, domain.MutationNotFound, nil
}

// UpdateGoal merges the editable fields over the goal.
func (r *JSONGoalRepository) UpdateGoal(ctx context.Context, goalID string, update domain.GoalUpdate) (*domain.Goal, domain.MutationResult, error) {
	return r.mutate(ctx, goalID, func(g *domain.Goal) bool {
		before := *g
		update.ApplyTo(g)
		return before.Name != g.Name || !before.TargetAmount.Equal(g.TargetAmount) || before.Deadline != g.Deadline
	})
}

// AllocateFunds adds delta to the goal's allocation, clamped at zero.
func (r *JSONGoalRepository) AllocateFunds(ctx context.Context, goalID string, delta decimal.Decimal) (*domain.Goal, domain.MutationResult, error) {
	return r.mutate(ctx, goalID, func(g *domain.Goal) bool {
		before := g.AllocatedAmount
		g.Allocate(delta)
		return !before.Equal(g.AllocatedAmount)
	})
}

// CompleteGoal marks the goal completed. An already completed goal is left unchanged.
func (r *JSONGoalRepository) CompleteGoal(ctx context.Context, goalID string) (*domain.Goal, domain.MutationResult, error) {
	return r.mutate(ctx, goalID, func(g *domain.Goal) bool {
		return g.Complete()
	})
}

// DeleteGoal removes the goal with the given id.
func (r *JSONGoalRepository) DeleteGoal(ctx context.Context, goalID string) (domain.MutationResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := r.ensureLoaded(); err != nil {
		return "", err
	}

	next := make([]domain.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		if g.ID != goalID {
			next = append(next, g)
		}
	}
	if len(next) == len(r.goals) {
		return domain.MutationNotFound, nil
	}
	if err := r.persist(next); err != nil {
		return "", err
	}
	return domain.MutationUpdated, nil
}
