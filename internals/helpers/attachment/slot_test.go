// file: internals/helpers/attachment/slot_test.go
package attachment

import (
	"mime/multipart"
	"testing"
)

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func TestSlotZeroValueKeeps(t *testing.T) {
	var s Slot
	if s.Action() != ActionKeep {
		t.Errorf("zero slot action = %v, want keep", s.Action())
	}
	if s.File() != nil {
		t.Error("zero slot carries a file")
	}
}

// The slot is a tagged variant: each transition lands in exactly one of the
// three states, and File() is only non-nil in the replace state.
func TestSlotTransitions(t *testing.T) {
	fh := fileHeader("photo.jpg")

	tests := []struct {
		name     string
		steps    func(s *Slot)
		want     Action
		wantFile bool
	}{
		{"replace", func(s *Slot) { s.Replace(fh) }, ActionReplace, true},
		{"remove", func(s *Slot) { s.Remove() }, ActionRemove, false},
		{"replace then remove drops the file", func(s *Slot) {
			s.Replace(fh)
			s.Remove()
		}, ActionRemove, false},
		{"remove then replace clears the removal", func(s *Slot) {
			s.Remove()
			s.Replace(fh)
		}, ActionReplace, true},
		{"restore after replace", func(s *Slot) {
			s.Replace(fh)
			s.Restore()
		}, ActionKeep, false},
		{"restore after remove", func(s *Slot) {
			s.Remove()
			s.Restore()
		}, ActionKeep, false},
		{"nil file is ignored", func(s *Slot) { s.Replace(nil) }, ActionKeep, false},
		{"anonymous file is ignored", func(s *Slot) { s.Replace(fileHeader("")) }, ActionKeep, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Slot
			tt.steps(&s)
			if s.Action() != tt.want {
				t.Errorf("action = %v, want %v", s.Action(), tt.want)
			}
			if got := s.File() != nil; got != tt.wantFile {
				t.Errorf("has file = %v, want %v", got, tt.wantFile)
			}
		})
	}
}

func TestFromMultipart(t *testing.T) {
	tests := []struct {
		name string
		form *multipart.Form
		want Action
	}{
		{"nil form keeps", nil, ActionKeep},
		{
			"file part wins",
			&multipart.Form{
				File:  map[string][]*multipart.FileHeader{"image": {fileHeader("a.png")}},
				Value: map[string][]string{"remove_image": {"1"}},
			},
			ActionReplace,
		},
		{
			"truthy remove flag",
			&multipart.Form{
				File:  map[string][]*multipart.FileHeader{},
				Value: map[string][]string{"remove_image": {"true"}},
			},
			ActionRemove,
		},
		{
			"falsy remove flag keeps",
			&multipart.Form{
				File:  map[string][]*multipart.FileHeader{},
				Value: map[string][]string{"remove_image": {"0"}},
			},
			ActionKeep,
		},
		{
			"neither field keeps",
			&multipart.Form{
				File:  map[string][]*multipart.FileHeader{},
				Value: map[string][]string{},
			},
			ActionKeep,
		},
		{
			"empty file part falls through to remove",
			&multipart.Form{
				File:  map[string][]*multipart.FileHeader{"image": {fileHeader("")}},
				Value: map[string][]string{"remove_image": {"on"}},
			},
			ActionRemove,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromMultipart(tt.form, "image", "remove_image")
			if s.Action() != tt.want {
				t.Errorf("action = %v, want %v", s.Action(), tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true}, {"true", true}, {"TRUE", true}, {"on", true}, {"yes", true},
		{" yes ", true},
		{"0", false}, {"false", false}, {"", false}, {"off", false}, {"no", false},
	}
	for _, tt := range tests {
		if got := truthy(tt.in); got != tt.want {
			t.Errorf("truthy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
