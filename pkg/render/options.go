package render

// RenderOptions describe per-request data renderers can use to customise
// their output without touching the template itself.
type RenderOptions struct {
	// Action overrides the form submit target emitted by HTML renderers.
	Action string
	// Values pre-populates controls keyed by field id.
	Values map[string]any
	// Errors carries messages keyed by field id; the empty key holds
	// form-level messages.
	Errors map[string][]string
	// Notice is a one-shot acknowledgment line, shown after a successful
	// submission.
	Notice string
	// Theme carries resolved theme configuration, when any.
	Theme *ThemeConfig
}
