// file: internals/helpers/attachment/slot.go
//
// A Slot tracks the edit state of one file-valued field. The three outcomes
// (keep the original, replace with a new file, remove) are a tagged variant,
// not separate booleans, so a slot can never be "replaced and removed" at
// the same time. Nothing touches storage until the controller translates
// the final slot state at submit time.
package attachment

import (
	"mime/multipart"
	"strconv"
	"strings"
)

type Action int

const (
	ActionKeep Action = iota
	ActionReplace
	ActionRemove
)

func (a Action) String() string {
	switch a {
	case ActionReplace:
		return "replace"
	case ActionRemove:
		return "remove"
	default:
		return "keep"
	}
}

// Slot is one attachment field. The zero value keeps the original file.
type Slot struct {
	action Action
	file   *multipart.FileHeader
}

func (s Slot) Action() Action { return s.action }

// File returns the pending replacement, nil unless Action is ActionReplace.
func (s Slot) File() *multipart.FileHeader {
	if s.action != ActionReplace {
		return nil
	}
	return s.file
}

// Replace selects a new file; any pending removal is cleared.
func (s *Slot) Replace(fh *multipart.FileHeader) {
	if fh == nil || fh.Filename == "" {
		return
	}
	s.action = ActionReplace
	s.file = fh
}

// Remove marks the slot for deletion and drops any pending replacement.
func (s *Slot) Remove() {
	s.action = ActionRemove
	s.file = nil
}

// Restore reverts to the original state, clearing both the pending file and
// the removal mark.
func (s *Slot) Restore() {
	s.action = ActionKeep
	s.file = nil
}

// FromMultipart builds the slot from a submitted form: a file part under
// fileField wins, otherwise a truthy removeField value marks removal, and
// absence of both keeps the original.
func FromMultipart(form *multipart.Form, fileField, removeField string) Slot {
	var s Slot
	if form == nil {
		return s
	}
	if fhs, ok := form.File[fileField]; ok {
		for _, fh := range fhs {
			if fh != nil && fh.Filename != "" {
				s.Replace(fh)
				return s
			}
		}
	}
	if vals, ok := form.Value[removeField]; ok {
		for _, v := range vals {
			if truthy(v) {
				s.Remove()
				return s
			}
		}
	}
	return s
}

func truthy(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v == "on" || v == "yes"
}
