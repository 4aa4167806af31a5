package storage

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formboard/pkg/schema"
)

// TemplateRepository loads and saves the full template set under the
// templates key. Reads degrade to an empty set when the key is missing or
// the stored payload does not decode; writes always replace the whole set.
type TemplateRepository struct {
	kv KV
}

// NewTemplateRepository wraps a KV store.
func NewTemplateRepository(kv KV) *TemplateRepository {
	return &TemplateRepository{kv: kv}
}

// Load returns the persisted template set, or an empty slice when nothing
// usable is stored.
func (r *TemplateRepository) Load() []schema.Template {
	raw, ok, err := r.kv.Get(TemplatesKey)
	if err != nil || !ok {
		return []schema.Template{}
	}
	var templates []schema.Template
	if err := json.Unmarshal(raw, &templates); err != nil {
		return []schema.Template{}
	}
	return templates
}

// Save rewrites the full template set.
func (r *TemplateRepository) Save(templates []schema.Template) error {
	if templates == nil {
		templates = []schema.Template{}
	}
	raw, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("storage: encode templates: %w", err)
	}
	if err := r.kv.Set(TemplatesKey, raw); err != nil {
		return fmt.Errorf("storage: save templates: %w", err)
	}
	return nil
}

// SubmissionRepository manages the per-template submission logs kept under
// form_data_<template-id> keys.
type SubmissionRepository struct {
	kv KV
}

// NewSubmissionRepository wraps a KV store.
func NewSubmissionRepository(kv KV) *SubmissionRepository {
	return &SubmissionRepository{kv: kv}
}

// Log returns the ordered submission log for a template, empty when none
// exists or the payload is corrupt.
func (r *SubmissionRepository) Log(templateID string) []schema.Submission {
	raw, ok, err := r.kv.Get(SubmissionsKey(templateID))
	if err != nil || !ok {
		return []schema.Submission{}
	}
	var log []schema.Submission
	if err := json.Unmarshal(raw, &log); err != nil {
		return []schema.Submission{}
	}
	return log
}

// Append reads the current log, appends the submission, and rewrites the
// full log.
func (r *SubmissionRepository) Append(templateID string, submission schema.Submission) error {
	log := append(r.Log(templateID), submission)
	raw, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("storage: encode submissions: %w", err)
	}
	if err := r.kv.Set(SubmissionsKey(templateID), raw); err != nil {
		return fmt.Errorf("storage: save submissions: %w", err)
	}
	return nil
}
