// Package app ties the builder store, submission log, and renderers
// together behind a single controller with two modes: authoring templates
// and filling out a form generated from one.
package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-formboard/pkg/builder"
	"github.com/goliatone/go-formboard/pkg/schema"
	"github.com/goliatone/go-formboard/pkg/storage"
)

// Mode names the two UI states the controller toggles between.
type Mode string

const (
	ModeBuilder Mode = "builder"
	ModeFill    Mode = "fill"
)

// ErrNotFilling is returned when a submission is attempted outside fill
// mode.
var ErrNotFilling = errors.New("app: no template selected for filling")

// Notifier delivers the blocking acknowledgment after a successful
// submission.
type Notifier interface {
	Notify(message string) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string) error

func (f NotifierFunc) Notify(message string) error { return f(message) }

type nopNotifier struct{}

func (nopNotifier) Notify(string) error { return nil }

// Option configures the controller.
type Option func(*Controller)

// WithNotifier sets the acknowledgment sink.
func WithNotifier(notifier Notifier) Option {
	return func(c *Controller) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

// Controller is the root of the application: it owns the builder store,
// the per-template submission logs, and the fill-mode selection. Toggling
// between modes is pure UI state and never touches persisted data.
type Controller struct {
	mu       sync.Mutex
	store    *builder.Store
	subs     *storage.SubmissionRepository
	notifier Notifier

	fillID string
	draft  schema.Submission
}

// NewController wires a controller from its dependencies.
func NewController(store *builder.Store, subs *storage.SubmissionRepository, options ...Option) *Controller {
	c := &Controller{
		store:    store,
		subs:     subs,
		notifier: nopNotifier{},
		draft:    make(schema.Submission),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Builder exposes the underlying template store for authoring actions.
func (c *Controller) Builder() *builder.Store {
	return c.store
}

// Templates returns the current persisted template set.
func (c *Controller) Templates() []schema.Template {
	return c.store.State().Templates
}

// Mode reports whether the controller is in builder or fill mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fillID == "" {
		return ModeBuilder
	}
	return ModeFill
}

// StartFill switches to fill mode for the named template and resets the
// draft answers.
func (c *Controller) StartFill(templateID string) error {
	if _, ok := c.store.State().Template(templateID); !ok {
		return builder.ErrTemplateNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fillID = templateID
	c.draft = make(schema.Submission)
	return nil
}

// CloseFill returns to builder mode, discarding any draft answers.
func (c *Controller) CloseFill() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fillID = ""
	c.draft = make(schema.Submission)
}

// FillTemplate resolves the template currently open for filling from the
// canonical set.
func (c *Controller) FillTemplate() (schema.Template, bool) {
	c.mu.Lock()
	id := c.fillID
	c.mu.Unlock()

	if id == "" {
		return schema.Template{}, false
	}
	return c.store.State().Template(id)
}

// SetAnswer records one field's answer in the in-memory draft.
func (c *Controller) SetAnswer(fieldID string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft[fieldID] = value
}

// Answers returns a copy of the current draft.
func (c *Controller) Answers() schema.Submission {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(schema.Submission, len(c.draft))
	for id, value := range c.draft {
		out[id] = value
	}
	return out
}

// Submit appends the draft answers to the fill template's submission log,
// delivers the acknowledgment, and clears the draft. The submission log
// is read back from storage and rewritten in full.
func (c *Controller) Submit() error {
	c.mu.Lock()
	id := c.fillID
	answers := c.draft
	c.mu.Unlock()

	if id == "" {
		return ErrNotFilling
	}

	tpl, ok := c.store.State().Template(id)
	if !ok {
		return builder.ErrTemplateNotFound
	}

	if err := c.subs.Append(id, answers); err != nil {
		return fmt.Errorf("app: record submission: %w", err)
	}

	c.mu.Lock()
	c.draft = make(schema.Submission)
	c.mu.Unlock()

	return c.notifier.Notify(fmt.Sprintf("Form %q submitted.", tpl.Name))
}

// SubmitAnswers replaces the draft wholesale and submits, for callers
// that collected answers elsewhere (the terminal collector, the HTTP
// handler).
func (c *Controller) SubmitAnswers(answers schema.Submission) error {
	c.mu.Lock()
	c.draft = make(schema.Submission, len(answers))
	for id, value := range answers {
		c.draft[id] = value
	}
	c.mu.Unlock()

	return c.Submit()
}

// Record appends a submission for a template without entering fill mode,
// for transports that carry the template id with every request.
func (c *Controller) Record(templateID string, answers schema.Submission) error {
	if _, ok := c.store.State().Template(templateID); !ok {
		return builder.ErrTemplateNotFound
	}
	if err := c.subs.Append(templateID, answers); err != nil {
		return fmt.Errorf("app: record submission: %w", err)
	}
	return nil
}

// Submissions returns the persisted submission log for a template, empty
// when nothing was recorded.
func (c *Controller) Submissions(templateID string) []schema.Submission {
	return c.subs.Log(templateID)
}
