package erpapimodels

type LoginRequest struct {
	CompanyDB string `json:"CompanyDB"`
	UserName  string `json:"UserName"`
	Password  string `json:"Password"`
}

type LoginResponse struct {
	SessionID string `json:"SessionId"`
	Version   string `json:"Version"`
}

type Draft struct {
	DocEntry     int64   `json:"DocEntry"`
	DocNum       int64   `json:"DocNum"`
	DocDate      string  `json:"DocDate"`
	CardCode     string  `json:"CardCode"`
	CardName     string  `json:"CardName"`
	DocTotal     float64 `json:"DocTotal"`
	Comments     string  `json:"Comments"`
	DocumentType string  `json:"DocObjectCode"`
}

type DraftListResponse struct {
	Value []Draft `json:"value"`
}
