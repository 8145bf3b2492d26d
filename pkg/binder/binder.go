// Package binder decodes HTTP request data into structs.
package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

// Binder decodes request data into v.
type Binder func(r *http.Request, v any) error

var (
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrInvalidBody          = errors.New("binder: invalid request body")
	ErrInvalidTarget        = errors.New("binder: target must be a non-nil struct pointer")
)

// MaxBodySize caps JSON and form bodies.
const MaxBodySize = 1 << 20

// JSON decodes a JSON request body. Unknown fields are ignored.
func JSON() Binder {
	return func(r *http.Request, v any) error {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			mt, _, err := mime.ParseMediaType(ct)
			if err != nil || (mt != "application/json" && !strings.HasSuffix(mt, "+json")) {
				return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, ct)
			}
		}
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrInvalidBody)
		}
		dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodySize))
		if err := dec.Decode(v); err != nil {
			return errors.Join(ErrInvalidBody, err)
		}
		return nil
	}
}

// Form decodes url-encoded or multipart form values using `form` tags.
func Form() Binder {
	return func(r *http.Request, v any) error {
		r.Body = http.MaxBytesReader(nil, r.Body, MaxBodySize)
		var err error
		if ct := r.Header.Get("Content-Type"); strings.HasPrefix(ct, "multipart/form-data") {
			err = r.ParseMultipartForm(MaxBodySize)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return errors.Join(ErrInvalidBody, err)
		}
		return bindValues(r.Form, v, "form")
	}
}

func bindValues(values url.Values, v any, tagName string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get(tagName), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(sf.Name)
		}
		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}
		fv := rv.Field(i)
		switch {
		case fv.Kind() == reflect.String:
			fv.SetString(vals[0])
		case fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.String:
			fv.Set(reflect.ValueOf(append([]string(nil), vals...)).Convert(fv.Type()))
		}
	}
	return nil
}
