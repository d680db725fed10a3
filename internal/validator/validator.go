// Package validator collects per-field input errors.
package validator

import (
	"strings"
)

type Validator struct {
	keys   []string
	errors map[string]string
}

func New() *Validator {
	return &Validator{
		errors: make(map[string]string),
	}
}

// Valid reports whether no check has failed.
func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

// Check records msg under key when cond is false. Only the first failure per
// key is kept.
func (v *Validator) Check(cond bool, key, msg string) {
	if cond {
		return
	}
	if _, ok := v.errors[key]; !ok {
		v.keys = append(v.keys, key)
		v.errors[key] = msg
	}
}

func (v *Validator) Errors() map[string]string {
	return v.errors
}

// String joins the recorded messages in the order they were added.
func (v *Validator) String() string {
	msgs := make([]string, 0, len(v.keys))
	for _, k := range v.keys {
		msgs = append(msgs, v.errors[k])
	}
	return strings.Join(msgs, " ")
}

func Provided(s *string) bool {
	return s != nil && *s != ""
}
