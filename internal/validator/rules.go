package validator

import (
	"github.com/go-playground/validator/v10"
)

// Custom rules for domain enums. Registered once in New.

var jobTypes = map[string]bool{
	"full-time":  true,
	"part-time":  true,
	"contract":   true,
	"internship": true,
}

var jobStatuses = map[string]bool{
	"open":   true,
	"closed": true,
	"draft":  true,
}

var applicationStatuses = map[string]bool{
	"pending":     true,
	"reviewed":    true,
	"shortlisted": true,
	"rejected":    true,
	"interviewed": true,
	"offered":     true,
	"accepted":    true,
	"declined":    true,
}

var studentStatuses = map[string]bool{
	"applying":     true,
	"interviewing": true,
	"placed":       true,
}

var registerRoles = map[string]bool{
	"student":   true,
	"recruiter": true,
}

func registerCustomRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"is-user-role":          enumRule(registerRoles),
		"is-job-type":           enumRule(jobTypes),
		"is-job-status":         enumRule(jobStatuses),
		"is-application-status": enumRule(applicationStatuses),
		"is-student-status":     enumRule(studentStatuses),
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func enumRule(allowed map[string]bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true // omitempty handles absence
		}
		return allowed[value]
	}
}
