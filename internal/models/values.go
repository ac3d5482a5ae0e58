package models

// Float returns a pointer to v. Required and optional numeric fields are
// pointers so that an omitted value can be told apart from zero.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}
