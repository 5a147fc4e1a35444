// Copyright 2026 The Inet Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package envflag fills a struct of options from a comma-separated
// environment variable such as INET_DEBUG=strict,logsubst=1.
package envflag

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Init uses Parse with the contents of the given environment variable as input.
func Init[T any](flags *T, envVar string) error {
	if err := Parse(flags, os.Getenv(envVar)); err != nil {
		return fmt.Errorf("cannot parse %s: %w", envVar, err)
	}
	return nil
}

// A Flag describes one field of an options struct.
type Flag struct {
	Name    string // lower-cased field name
	Kind    reflect.Kind
	Default string // as written in the struct tag; "" for the zero value
	index   int
}

// Flags returns the flags described by the fields of T, in field order.
//
// A field may carry a tag such as `envflag:"default:true"` to select a
// default other than the zero value. Only bool, int and string fields are
// supported.
func Flags[T any]() ([]Flag, error) {
	var zero T
	ft := reflect.TypeOf(zero)
	if ft.Kind() != reflect.Struct {
		return nil, fmt.Errorf("envflag: %v is not a struct", ft)
	}
	flags := make([]Flag, 0, ft.NumField())
	for i := 0; i < ft.NumField(); i++ {
		field := ft.Field(i)
		f := Flag{
			Name:  strings.ToLower(field.Name),
			Kind:  field.Type.Kind(),
			index: i,
		}
		switch f.Kind {
		case reflect.Bool, reflect.Int, reflect.String:
		default:
			return nil, fmt.Errorf("envflag: field %s has unsupported kind %s", field.Name, f.Kind)
		}
		if tag, ok := field.Tag.Lookup("envflag"); ok {
			key, value, _ := strings.Cut(tag, ":")
			if key != "default" {
				return nil, fmt.Errorf("envflag: unknown tag %q", tag)
			}
			f.Default = value
		}
		flags = append(flags, f)
	}
	return flags, nil
}

// Parse sets the fields of flags to their defaults and then applies the
// comma-separated name=value pairs in env.
//
// Names are matched case-insensitively. A bool flag given without a value
// is set to true, so that "strict" means "strict=true". Empty elements are
// ignored, which allows joining variables like
//
//	os.Setenv("INET_DEBUG", os.Getenv("INET_DEBUG")+",strict")
//
// All malformed elements are reported, joined in a single error.
func Parse[T any](flags *T, env string) error {
	desc, err := Flags[T]()
	if err != nil {
		return err
	}
	fv := reflect.ValueOf(flags).Elem()
	byName := make(map[string]Flag, len(desc))
	for _, f := range desc {
		byName[f.Name] = f
		if f.Default == "" {
			fv.Field(f.index).Set(reflect.Zero(fv.Field(f.index).Type()))
			continue
		}
		v, err := parseValue(f.Name, f.Kind, f.Default)
		if err != nil {
			return err
		}
		fv.Field(f.index).Set(reflect.ValueOf(v))
	}

	var errs []error
	for _, elem := range strings.Split(env, ",") {
		if elem == "" {
			continue
		}
		name, str, hasValue := strings.Cut(elem, "=")
		f, ok := byName[strings.ToLower(name)]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown flag %q", elem))
			continue
		}
		var v any
		switch {
		case hasValue:
			if v, err = parseValue(f.Name, f.Kind, str); err != nil {
				errs = append(errs, err)
				continue
			}
		case f.Kind == reflect.Bool:
			v = true
		default:
			errs = append(errs, fmt.Errorf("value needed for %s flag %q", f.Kind, f.Name))
			continue
		}
		fv.Field(f.index).Set(reflect.ValueOf(v))
	}
	return errors.Join(errs...)
}

// Format returns the flags of flags that differ from their defaults, in
// field order and in the syntax accepted by Parse. A true bool flag is
// written by its name alone.
func Format[T any](flags *T) (string, error) {
	desc, err := Flags[T]()
	if err != nil {
		return "", err
	}
	fv := reflect.ValueOf(flags).Elem()
	var elems []string
	for _, f := range desc {
		v := fv.Field(f.index).Interface()
		def := reflect.Zero(fv.Field(f.index).Type()).Interface()
		if f.Default != "" {
			if def, err = parseValue(f.Name, f.Kind, f.Default); err != nil {
				return "", err
			}
		}
		switch {
		case v == def:
		case v == true:
			elems = append(elems, f.Name)
		default:
			elems = append(elems, fmt.Sprintf("%s=%v", f.Name, v))
		}
	}
	return strings.Join(elems, ","), nil
}

func parseValue(name string, kind reflect.Kind, str string) (v any, err error) {
	switch kind {
	case reflect.Bool:
		v, err = strconv.ParseBool(str)
	case reflect.Int:
		v, err = strconv.Atoi(str)
	case reflect.String:
		v = str
	}
	if err != nil {
		return nil, errInvalid{fmt.Errorf("invalid %s value for %s: %v", kind, name, err)}
	}
	return v, nil
}

// ErrInvalid indicates a malformed value in the input string.
var ErrInvalid = errors.New("invalid value")

type errInvalid struct{ error }

func (errInvalid) Is(err error) bool {
	return err == ErrInvalid
}
