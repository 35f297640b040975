package apimodels

type Response struct {
	Status    string      `json:"status"`              //fail/success
	Message   string      `json:"message,omitempty"`   //user-safe error message
	Technical string      `json:"technical,omitempty"` //internal detail, 500s only
	Data      interface{} `json:"data,omitempty"`      //response payload
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewTechError(message, technical string) Response {
	return Response{
		Status:    "fail",
		Message:   message,
		Technical: technical,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // rows per page
	Page  int `json:"page"`  // page number (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
