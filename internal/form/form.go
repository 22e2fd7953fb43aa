// Package form maps submitted form values onto records and back.  Each
// record type has an explicit field table; decoding walks the table and
// overwrites every field, so a field missing from the submission ends
// up empty (or false) rather than keeping its previous value.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Field binds one form field name to a record attribute.
type Field[T any] struct {
	Name string
	Get  func(*T) []string
	Set  func(*T, []string) error
}

// Decode overwrites dst with the values of every field in fields.  All
// fields are processed even if one fails to parse; the returned error
// joins every parse failure.
func Decode[T any](values url.Values, fields []Field[T], dst *T) error {
	var errs []error
	for _, f := range fields {
		if err := f.Set(dst, values[f.Name]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Encode returns the form values describing src, used to pre-fill edit
// forms.
func Encode[T any](src *T, fields []Field[T]) url.Values {
	out := url.Values{}
	for _, f := range fields {
		if vs := f.Get(src); len(vs) > 0 {
			out[f.Name] = vs
		}
	}
	return out
}

func first(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return strings.TrimSpace(vs[0])
}

func text[T any](name string, ptr func(*T) *string) Field[T] {
	return Field[T]{
		Name: name,
		Get:  func(r *T) []string { return []string{*ptr(r)} },
		Set: func(r *T, vs []string) error {
			*ptr(r) = first(vs)
			return nil
		},
	}
}

// checkbox fields are set only by an explicit truthy value; a missing
// field clears the flag.
func checkbox[T any](name string, ptr func(*T) *bool) Field[T] {
	return Field[T]{
		Name: name,
		Get: func(r *T) []string {
			if *ptr(r) {
				return []string{"y"}
			}
			return nil
		},
		Set: func(r *T, vs []string) error {
			*ptr(r) = Checked(first(vs))
			return nil
		},
	}
}

func list[T any](name string, ptr func(*T) *[]string) Field[T] {
	return Field[T]{
		Name: name,
		Get:  func(r *T) []string { return append([]string(nil), *ptr(r)...) },
		Set: func(r *T, vs []string) error {
			out := []string{}
			for _, v := range vs {
				out = append(out, SplitGenres(v)...)
			}
			*ptr(r) = out
			return nil
		},
	}
}

// Checked reports whether a checkbox value means "on".
func Checked(v string) bool {
	switch strings.ToLower(v) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}

// SplitGenres splits a comma separated genre string, dropping blanks.
func SplitGenres(s string) []string {
	out := []string{}
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// JoinGenres renders a genre list for display.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ", ")
}
