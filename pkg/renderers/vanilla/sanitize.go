package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// SanitizeText strips any markup from user-authored labels, titles, and
// template names before they reach the HTML output. The result is safe
// text; pongo2's auto-escaping is bypassed for it in the templates.
func SanitizeText(raw string) string {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(policy.Sanitize(raw))
}
