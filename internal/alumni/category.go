package alumni

import "slices"

// AllCategory selects every record.
const AllCategory = "All"

// Category is a top-level school code and the department names it groups.
type Category struct {
	Code          string   `json:"code"`
	Subcategories []string `json:"subcategories"`
}

var categoryTable = []Category{
	{Code: "SOET", Subcategories: []string{
		"Computer Science",
		"Information Technology",
		"Electronics & Communication",
		"Mechanical Engineering",
		"Civil Engineering",
		"Electrical Engineering",
		"Electronics Engineering",
	}},
	{Code: "LAW", Subcategories: []string{"Law", "LLB", "LLM", "Legal Studies", "Judiciary"}},
	{Code: "SOPS", Subcategories: []string{"Pharmacy", "Pharmaceutical Sciences", "Pharm.D"}},
	{Code: "SASH", Subcategories: []string{"MBBS", "BDS", "Nursing", "Physiotherapy", "Medical", "Healthcare"}},
	{Code: "SBMC", Subcategories: []string{"MBA", "Management Studies", "Business Administration", "Marketing", "Finance", "HR"}},
	{Code: "SOSAH", Subcategories: []string{"Agriculture", "Horticulture", "Agricultural Engineering", "Food Technology"}},
	{Code: "SOA", Subcategories: []string{"Architecture", "Interior Design", "Planning", "Building Technology"}},
}

// Categories returns a copy of the category table in display order.
func Categories() []Category {
	out := make([]Category, len(categoryTable))
	for i, c := range categoryTable {
		out[i] = Category{Code: c.Code, Subcategories: slices.Clone(c.Subcategories)}
	}
	return out
}

// Subcategories returns the department names grouped under code.
func Subcategories(code string) ([]string, bool) {
	for _, c := range categoryTable {
		if c.Code == code {
			return slices.Clone(c.Subcategories), true
		}
	}
	return nil, false
}

// IsCategory reports whether code is a key of the category table.
func IsCategory(code string) bool {
	_, ok := Subcategories(code)
	return ok
}

// FilterOptions returns the filter labels shown to users: All followed by
// every category code.
func FilterOptions() []string {
	opts := make([]string, 0, len(categoryTable)+1)
	opts = append(opts, AllCategory)
	for _, c := range categoryTable {
		opts = append(opts, c.Code)
	}
	return opts
}
