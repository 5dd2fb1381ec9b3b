package validators

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
)

// Register adds the domain tags to gin's validator engine:
//
//	priority    Low/Medium/High/Critical, any casing, empty allowed
//	event_type  maintenance, booking, training, inspection, meeting, other
//	recurrence  none/daily/weekly/monthly, empty allowed
//	task_status a storable task status (never Overdue)
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validators: gin binding engine is not go-playground/validator")
	}

	rules := map[string]validator.Func{
		"priority":    isPriority,
		"event_type":  isEventType,
		"recurrence":  isRecurrence,
		"task_status": isTaskStatus,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func isPriority(fl validator.FieldLevel) bool {
	_, err := maintenance.ParsePriority(fl.Field().String())
	return err == nil
}

func isEventType(fl validator.FieldLevel) bool {
	_, err := calendar.ParseEventType(fl.Field().String())
	return err == nil
}

func isRecurrence(fl validator.FieldLevel) bool {
	_, err := calendar.ParsePattern(fl.Field().String())
	return err == nil
}

func isTaskStatus(fl validator.FieldLevel) bool {
	if fl.Field().String() == "" {
		return true
	}
	_, err := maintenance.ParseStoredStatus(fl.Field().String())
	return err == nil
}
