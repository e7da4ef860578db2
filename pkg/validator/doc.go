// Package validator provides declarative request payload validation built
// from composable rules with per-field error reporting.
//
// A validation is a flat list of rules applied together; every failed rule
// contributes one field error, so the client sees all problems at once
// instead of fixing them one by one.
//
//	err := validator.Apply(
//	    validator.RequiredString("email", req.Email),
//	    validator.ValidEmail("email", req.Email),
//	    validator.Between("age", req.Age, 0, 150),
//	    validator.InList("plan", req.Plan, []string{"free", "pro"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs is a []ValidationError with Field and Message per failure
//	}
//
// Custom checks slot in through Custom:
//
//	validator.Custom("password", "must differ from email", func() bool {
//	    return req.Password != req.Email
//	})
package validator
