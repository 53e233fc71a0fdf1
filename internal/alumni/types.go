package alumni

import "errors"

var (
	ErrDatasetUnavailable = errors.New("alumni dataset unavailable")
)

// Column names used by the dataset header row.
const (
	ColName             = "Student_Name"
	ColEmail            = "Email"
	ColDepartment       = "Department"
	ColPassingYear      = "Passing_Year"
	ColAddress          = "Current_Address"
	ColDesignation      = "Designation"
	ColCompany          = "Company_or_Business"
	ColPackage          = "Current_Package"
	ColFeedback         = "Feedback"
	ColPhotoStatus      = "Photo_Status"
	ColRegistrationDate = "Registration_Date"
	ColRegistrationTime = "Registration_Time"
)

// Columns lists the dataset columns in their canonical order.
var Columns = []string{
	ColName,
	ColEmail,
	ColDepartment,
	ColPassingYear,
	ColAddress,
	ColDesignation,
	ColCompany,
	ColPackage,
	ColFeedback,
	ColPhotoStatus,
	ColRegistrationDate,
	ColRegistrationTime,
}

// Record is one alumnus row. Any field may be empty.
type Record struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Department       string `json:"department"`
	PassingYear      string `json:"passingYear"`
	Address          string `json:"address"`
	Designation      string `json:"designation"`
	Company          string `json:"company"`
	Package          string `json:"package"`
	Feedback         string `json:"feedback"`
	PhotoStatus      string `json:"photoStatus"`
	RegistrationDate string `json:"registrationDate"`
	RegistrationTime string `json:"registrationTime"`
}

// field returns a pointer to the struct field bound to a header column,
// or nil for columns the record does not carry.
func (r *Record) field(column string) *string {
	switch column {
	case ColName:
		return &r.Name
	case ColEmail:
		return &r.Email
	case ColDepartment:
		return &r.Department
	case ColPassingYear:
		return &r.PassingYear
	case ColAddress:
		return &r.Address
	case ColDesignation:
		return &r.Designation
	case ColCompany:
		return &r.Company
	case ColPackage:
		return &r.Package
	case ColFeedback:
		return &r.Feedback
	case ColPhotoStatus:
		return &r.PhotoStatus
	case ColRegistrationDate:
		return &r.RegistrationDate
	case ColRegistrationTime:
		return &r.RegistrationTime
	}
	return nil
}

// Values returns the record's fields in Columns order.
func (r Record) Values() []string {
	return []string{
		r.Name,
		r.Email,
		r.Department,
		r.PassingYear,
		r.Address,
		r.Designation,
		r.Company,
		r.Package,
		r.Feedback,
		r.PhotoStatus,
		r.RegistrationDate,
		r.RegistrationTime,
	}
}

// Dataset is the parsed snapshot of one load. Err is set when the
// underlying fetch failed; Records is then empty.
type Dataset struct {
	Records []Record
	Err     error
}

// Failed reports whether the dataset could not be fetched.
func (d Dataset) Failed() bool {
	return d.Err != nil
}

// PageQuery selects a window of a filtered view.
type PageQuery struct {
	Category string
	Offset   int
	Limit    int
}
