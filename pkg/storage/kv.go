// Package storage persists form templates and submission logs to a
// string-keyed key-value store. Values are serialized JSON text and every
// write replaces the stored value wholesale; there is no incremental diff
// and no transaction.
package storage

import "strings"

// Storage keys. Submission logs are keyed per template.
const (
	TemplatesKey         = "templates"
	SubmissionsKeyPrefix = "form_data_"
)

// SubmissionsKey returns the storage key holding the submission log for a
// template.
func SubmissionsKey(templateID string) string {
	return SubmissionsKeyPrefix + strings.TrimSpace(templateID)
}

// KV is the minimal key-value contract the repositories build on. Get
// reports ok=false when the key is absent; implementations never treat a
// missing key as an error.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}
