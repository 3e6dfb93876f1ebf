package gbm

// InvalidParameterError reports which parameter constraint was violated.
// Field is one of "S0", "sigma", or "T_or_n" (the horizon and step count
// are checked jointly).
type InvalidParameterError struct {
	Field string
}

func (e *InvalidParameterError) Error() string {
	return "gbm: invalid parameter: " + e.Field
}
