// Package tui walks a form template as an interactive terminal session,
// prompting once per field and collecting the answers into a submission.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formboard/pkg/render"
	"github.com/goliatone/go-formboard/pkg/schema"
)

// Option configures the collector.
type Option func(*Collector)

// WithDriver swaps the prompt driver; tests use this to run without a
// terminal.
func WithDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// Collector prompts for every field in a template, in section order, and
// accumulates answers keyed by field id.
type Collector struct {
	driver PromptDriver
}

// NewCollector constructs a collector backed by the survey driver unless
// an option overrides it.
func NewCollector(options ...Option) *Collector {
	c := &Collector{driver: NewSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Collect runs the fill session for a template. Label fields print and
// collect nothing; blank answers are omitted from the submission. The
// returned submission is a fresh map on every call.
func (c *Collector) Collect(ctx context.Context, tpl schema.Template) (schema.Submission, error) {
	answers := make(schema.Submission)

	for _, section := range tpl.Sections {
		if title := strings.TrimSpace(section.Title); title != "" {
			if err := c.driver.Info(ctx, "== "+title+" =="); err != nil {
				return nil, err
			}
		}
		for _, field := range section.Fields {
			if err := c.collectField(ctx, field, answers); err != nil {
				return nil, err
			}
		}
	}
	return answers, nil
}

func (c *Collector) collectField(ctx context.Context, field schema.Field, answers schema.Submission) error {
	message := strings.TrimSpace(field.Label)
	if message == "" {
		message = field.ID
	}

	switch field.Type {
	case schema.FieldTypeLabel:
		return c.driver.Info(ctx, message)

	case schema.FieldTypeText:
		raw, err := c.driver.Input(ctx, InputConfig{Message: message})
		if err != nil {
			return err
		}
		return storeAnswer(field, raw, answers)

	case schema.FieldTypeNumber:
		raw, err := c.driver.Input(ctx, InputConfig{
			Message: message,
			Help:    "enter a number, or leave blank to skip",
			Validator: func(text string) error {
				trimmed := strings.TrimSpace(text)
				if trimmed == "" {
					return nil
				}
				if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
					return fmt.Errorf("%q is not a number", text)
				}
				return nil
			},
		})
		if err != nil {
			return err
		}
		return storeAnswer(field, raw, answers)

	case schema.FieldTypeBoolean:
		value, err := c.driver.Confirm(ctx, ConfirmConfig{Message: message})
		if err != nil {
			return err
		}
		answers[field.ID] = value
		return nil

	case schema.FieldTypeEnum:
		if len(field.Options) == 0 {
			return c.driver.Info(ctx, message+" (no options configured, skipped)")
		}
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message: message,
			Options: field.Options,
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(field.Options) {
			answers[field.ID] = field.Options[idx]
		}
		return nil

	default:
		return fmt.Errorf("tui: field %q has unknown type %q", field.ID, field.Type)
	}
}

// storeAnswer coerces a raw answer and records it when the field produced
// one. The survey driver's validators keep invalid input from reaching
// this point; drivers that skip validation get the error surfaced here.
func storeAnswer(field schema.Field, raw string, answers schema.Submission) error {
	value, ok, err := render.CoerceAnswer(field, raw)
	if err != nil {
		return err
	}
	if ok {
		answers[field.ID] = value
	}
	return nil
}
