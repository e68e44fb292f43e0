package adminclient

import (
	"context"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/pkg/validation"
)

// FormState is where a create/edit screen currently is.
type FormState int

const (
	FormBlank FormState = iota
	FormLoading
	FormPopulated
	FormSubmitting
	FormSucceeded
	FormFailed
)

// crossValidator is implemented by payloads with rules spanning several
// fields, such as the company license checks.
type crossValidator interface {
	Validate() []model.FieldError
}

// FormController drives one create or edit form. Validation runs fully
// client-side before any network call; a failed submit keeps the entered
// values and the server's message.
type FormController[T any] struct {
	res      *Resource[T]
	validate *validator.Validate

	state    FormState
	record   *T
	message  string
	redirect bool
}

func NewFormController[T any](res *Resource[T]) *FormController[T] {
	return &FormController[T]{
		res:      res,
		validate: validation.New(),
		state:    FormBlank,
	}
}

// Load populates the form for edit mode. A record that cannot be fetched
// surfaces its message and flags a redirect back to the list.
func (f *FormController[T]) Load(ctx context.Context, id int64) {
	f.state = FormLoading

	result, err := f.res.Get(ctx, id)
	if err != nil {
		f.state = FormFailed
		f.message = err.Error()
		f.redirect = true
		return
	}
	if failure := result.Failure(); failure != nil {
		f.state = FormFailed
		f.message = failure.Message
		f.redirect = true
		return
	}

	value, _ := result.Ok()
	f.record = &value
	f.state = FormPopulated
}

// Submit validates and sends the form. id zero means create. It reports
// whether the caller should navigate to the list route.
func (f *FormController[T]) Submit(ctx context.Context, id int64, payload any, files map[string]Attachment) bool {
	ApplyPresenterGate(payload)

	if cv, ok := payload.(crossValidator); ok {
		if errs := cv.Validate(); len(errs) > 0 {
			f.state = FormFailed
			f.message = errs[0].Message
			return false
		}
	}
	if err := f.validate.Struct(payload); err != nil {
		f.state = FormFailed
		f.message = validation.Message(err)
		return false
	}

	f.state = FormSubmitting

	var (
		result Result[T]
		err    error
	)
	if id == 0 {
		result, err = f.res.Create(ctx, payload, files)
	} else {
		result, err = f.res.Update(ctx, id, payload, files)
	}

	if err != nil {
		f.state = FormFailed
		f.message = err.Error()
		return false
	}
	if failure := result.Failure(); failure != nil {
		f.state = FormFailed
		f.message = failure.Message
		return false
	}

	value, _ := result.Ok()
	f.record = &value
	f.state = FormSucceeded
	f.message = ""
	return true
}

func (f *FormController[T]) State() FormState {
	return f.state
}

func (f *FormController[T]) Record() *T {
	return f.record
}

func (f *FormController[T]) Message() string {
	return f.message
}

// ShouldRedirect reports that an edit load failed and the caller should go
// back to the list route.
func (f *FormController[T]) ShouldRedirect() bool {
	return f.redirect
}

// PresenterFieldsEnabled reports whether the presenter name fields are
// editable: only once a presenter national code has been entered.
func PresenterFieldsEnabled(payload any) bool {
	return presenterCode(payload) != ""
}

// ApplyPresenterGate clears the presenter name fields when the gating
// national code is empty, so stale names never reach the server.
func ApplyPresenterGate(payload any) {
	v := reflect.ValueOf(payload)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	if presenterCode(payload) != "" {
		return
	}
	for _, name := range []string{"PresenterFirstName", "PresenterLastName"} {
		field := v.FieldByName(name)
		if field.IsValid() && field.CanSet() {
			field.Set(reflect.Zero(field.Type()))
		}
	}
}

func presenterCode(payload any) string {
	v := reflect.ValueOf(payload)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	field := v.FieldByName("PresenterNationalCode")
	if !field.IsValid() {
		return ""
	}
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return ""
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return ""
	}
	return field.String()
}
