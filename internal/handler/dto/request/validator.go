package request

import (
	"reflect"

	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the student_id and hhmm tags on gin's binding
// engine. Call once before serving.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("student_id", validStudentID); err != nil {
		return errs.Wrap(err, "register student_id validator")
	}
	if err := v.RegisterValidation("hhmm", validTimeOfDay); err != nil {
		return errs.Wrap(err, "register hhmm validator")
	}
	return nil
}

func validStudentID(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.String:
		_, err := user.ParseStudentID(f.String())
		return err == nil
	case reflect.Int, reflect.Int32, reflect.Int64:
		_, err := user.NewStudentID(f.Int())
		return err == nil
	default:
		return false
	}
}

func validTimeOfDay(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := timeslot.ParseTimeOfDay(fl.Field().String())
	return err == nil
}
