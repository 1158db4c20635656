package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

type rulesDocument struct {
	Rules []domain.AutomationRule `json:"rules"`
}

// JSONRuleRepository keeps automation rules in automation.json with an in-memory copy.
// The copy is only replaced once the file has been written.
type JSONRuleRepository struct {
	mu     sync.Mutex
	file   jsonFile
	opts   options
	rules  []domain.AutomationRule
	loaded bool
}

// newJSONRuleRepository creates a new repository for automation rules.
func newJSONRuleRepository(fs afero.Fs, dir string, opts ...Option) *JSONRuleRepository {
	r := &JSONRuleRepository{opts: buildOptions(opts)}
	r.file = jsonFile{fs: fs, path: filepath.Join(dir, RulesFile), opts: &r.opts}
	return r
}

var _ portsrepo.RuleRepositoryFacade = (*JSONRuleRepository)(nil)

// Initialize (re)loads automation.json, creating it if absent.
func (r *JSONRuleRepository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.load()
}

func (r *JSONRuleRepository) load() error {
	doc := rulesDocument{Rules: []domain.AutomationRule{}}
	if err := r.file.loadOrCreate(&doc, func() { doc.Rules = []domain.AutomationRule{} }); err != nil {
		return err
	}
	if doc.Rules == nil {
		doc.Rules = []domain.AutomationRule{}
	}
	r.rules = doc.Rules
	r.loaded = true
	return nil
}

func (r *JSONRuleRepository) ensureLoaded() error {
	if r.loaded {
		return nil
	}
	return r.load()
}

func (r *JSONRuleRepository) persist(rules []domain.AutomationRule) error {
	if err := r.file.save(rulesDocument{Rules: rules}); err != nil {
		return err
	}
	r.rules = rules
	return nil
}

// ListRules returns a copy of every rule.
func (r *JSONRuleRepository) ListRules(ctx context.Context) ([]domain.AutomationRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	return cloneRules(r.rules), nil
}

// FindRuleByID returns the rule with the given id or apperrors.ErrNotFound.
func (r *JSONRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.AutomationRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	for _, rule := range r.rules {
		if rule.ID == ruleID {
			c := cloneRule(rule)
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// AddRule creates an active rule whose cursor is seeded to the current time.
func (r *JSONRuleRepository) AddRule(ctx context.Context, draft domain.RuleDraft) (*domain.AutomationRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	rule := domain.NewAutomationRule(r.opts.newID(), draft, r.opts.now())
	for _, existing := range r.rules {
		if existing.ID == rule.ID {
			return nil, fmt.Errorf("%w: rule id %s", apperrors.ErrDuplicate, rule.ID)
		}
	}

	next := append(cloneRules(r.rules), rule)
	if err := r.persist(next); err != nil {
		return nil, err
	}
	c := cloneRule(rule)
	return &c, nil
}

// UpdateRule replaces the rule with the same id.
func (r *JSONRuleRepository) UpdateRule(ctx context.Context, rule domain.AutomationRule) (domain.MutationResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := r.ensureLoaded(); err != nil {
		return "", err
	}

	next := cloneRules(r.rules)
	for i := range next {
		if next[i].ID == rule.ID {
			next[i] = cloneRule(rule)
			if err := r.persist(next); err != nil {
				return "", err
			}
			return domain.MutationUpdated, nil
		}
	}
	return domain.MutationNotFound, nil
}

// DeleteRule removes the rule with the given id.
func (r *JSONRuleRepository) DeleteRule(ctx context.Context, ruleID string) (domain.MutationResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := r.ensureLoaded(); err != nil {
		return "", err
	}

	next := make([]domain.AutomationRule, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.ID != ruleID {
			next = append(next, cloneRule(rule))
		}
	}
	if len(next) == len(r.rules) {
		return domain.MutationNotFound, nil
	}
	if err := r.persist(next); err != nil {
		return "", err
	}
	return domain.MutationUpdated, nil
}

// UpdateRulesBatch lets fn mutate a copy of every rule under the store lock, then writes the
// collection once if fn reports a change. If fn fails nothing is written.
func (r *JSONRuleRepository) UpdateRulesBatch(ctx context.Context, fn portsrepo.RuleBatchFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.ensureLoaded(); err != nil {
		return err
	}

	work := cloneRules(r.rules)
	changed, err := fn(work)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return r.persist(work)
}

func cloneRule(rule domain.AutomationRule) domain.AutomationRule {
	if rule.ExpiryDate != nil {
		v := *rule.ExpiryDate
		rule.ExpiryDate = &v
	}
	if rule.LastRunDate != nil {
		v := *rule.LastRunDate
		rule.LastRunDate = &v
	}
	return rule
}

func cloneRules(rules []domain.AutomationRule) []domain.AutomationRule {
	out := make([]domain.AutomationRule, len(rules))
	for i, rule := range rules {
		out[i] = cloneRule(rule)
	}
	return out
}
