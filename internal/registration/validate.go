package registration

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const photoTooLarge = "Profile photo size must be less than 1MB."

var requiredFields = []struct {
	name  string
	label string
	get   func(Input) string
}{
	{"name", "name", func(in Input) string { return in.Name }},
	{"email", "email", func(in Input) string { return in.Email }},
	{"department", "department", func(in Input) string { return in.Department }},
	{"passingYear", "passing year", func(in Input) string { return in.PassingYear }},
	{"address", "address", func(in Input) string { return in.Address }},
	{"designation", "designation", func(in Input) string { return in.Designation }},
	{"company", "company", func(in Input) string { return in.Company }},
}

// Validate checks a submission against the registration rules and returns
// the normalized registration fields. now bounds the passing year.
func Validate(in Input, now time.Time) (Registration, error) {
	in = trimInput(in)

	var errs ValidationErrors
	for _, f := range requiredFields {
		if f.get(in) == "" {
			errs = append(errs, FieldError{Field: f.name, Message: "Please fill in the " + f.label + " field."})
		}
	}

	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email address."})
	}

	department := in.Department
	if department == OtherDepartment {
		department = in.CustomDepartment
		if department == "" {
			errs = append(errs, FieldError{Field: "customDepartment", Message: "Please enter your department name."})
		}
	}

	var year int
	if in.PassingYear != "" {
		y, err := strconv.Atoi(in.PassingYear)
		if err != nil || y < MinPassingYear || y > now.Year()+5 {
			errs = append(errs, FieldError{Field: "passingYear", Message: "Please enter a valid passing year."})
		}
		year = y
	}

	if in.PhotoSize > MaxPhotoSize {
		errs = append(errs, FieldError{Field: "photo", Message: photoTooLarge})
	}

	if len(errs) > 0 {
		return Registration{}, errs
	}

	photo := PhotoNotUploaded
	if in.PhotoSize > 0 {
		photo = PhotoUploaded
	}
	return Registration{
		Name:        in.Name,
		Email:       in.Email,
		Department:  department,
		PassingYear: year,
		Address:     in.Address,
		Designation: in.Designation,
		Company:     in.Company,
		Package:     in.Package,
		Feedback:    in.Feedback,
		PhotoStatus: photo,
	}, nil
}

func trimInput(in Input) Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Department = strings.TrimSpace(in.Department)
	in.CustomDepartment = strings.TrimSpace(in.CustomDepartment)
	in.PassingYear = strings.TrimSpace(in.PassingYear)
	in.Address = strings.TrimSpace(in.Address)
	in.Designation = strings.TrimSpace(in.Designation)
	in.Company = strings.TrimSpace(in.Company)
	in.Package = strings.TrimSpace(in.Package)
	in.Feedback = strings.TrimSpace(in.Feedback)
	return in
}
