package catalogapimodels

type CategoryView struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	CompanyID   int64  `json:"id_company,omitempty"`
	CompanyName string `json:"company,omitempty"`
}

type AssignableUserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
