package tui

import "errors"

// ErrAborted is returned when the user interrupts a prompt flow
// (typically ctrl-c) before the form is complete.
var ErrAborted = errors.New("tui: fill aborted")
