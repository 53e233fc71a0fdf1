package models

// CardView is the display model of one alumni card. Empty optional fields
// are left out by the card component.
type CardView struct {
	Name          string
	PhotoURL      string
	FallbackPhoto string
	Heading       string
	Designation   string
	Company       string
	Package       string
	FeedbackLines []string
}

// FilterView is one filter button.
type FilterView struct {
	Label  string
	Active bool
}

// ShowcaseView is the filter bar plus the first page of cards.
type ShowcaseView struct {
	Filters  []FilterView
	Category string
	Page     PageView
	// LoadError is set when the dataset could not be fetched.
	LoadError bool
}

// PageView is a batch of cards and the state of the "show more" control.
type PageView struct {
	Category string
	Cards    []CardView
	Rendered int
	Total    int
	ShowMore bool
	Empty    bool
}

// RegistrationForm holds submitted form values so the form can be
// re-rendered after a failed validation.
type RegistrationForm struct {
	Departments []string
	Errors      []FieldError
}

// FieldError is a validation message for one form field.
type FieldError struct {
	Field   string
	Message string
}

// Notification is a transient message shown after a form action.
type Notification struct {
	Kind    string // success or error
	Message string
	Details []string
}
