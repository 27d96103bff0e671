// Package forms validates submitted HTML forms before anything reaches the
// backend. Each form reports problems as Errors keyed by input name.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps an input name to the message shown next to it.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// messages is keyed by "<input>.<tag>", then by "<input>" as a catch-all.
type messages map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

func check(s any, msgs messages) Errors {
	errs := Errors{}

	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("form", err.Error())
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()

		msg, ok := msgs[field+"."+fe.Tag()]
		if !ok {
			msg, ok = msgs[field]
		}
		if !ok {
			msg = fmt.Sprintf("%s is not valid", field)
		}

		errs.Add(field, msg)
	}

	return errs
}

func value(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}
