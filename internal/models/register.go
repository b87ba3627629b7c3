package models

import (
	"github.com/goccy/go-json"
)

// RegisterRequest carries the registration form. Fields beyond the three
// validated ones are forwarded untouched in Extra.
type RegisterRequest struct {
	Username string
	Password string
	Phone    string
	Extra    map[string]string
}

func NewRegisterRequest(fields map[string]string) *RegisterRequest {
	req := &RegisterRequest{Extra: make(map[string]string)}
	for k, v := range fields {
		switch k {
		case "username":
			req.Username = v
		case "password":
			req.Password = v
		case "phone":
			req.Phone = v
		default:
			req.Extra[k] = v
		}
	}
	return req
}

func (r RegisterRequest) MarshalJSON() ([]byte, error) {
	body := make(map[string]string, len(r.Extra)+3)
	for k, v := range r.Extra {
		body[k] = v
	}
	body["username"] = r.Username
	body["password"] = r.Password
	body["phone"] = r.Phone
	return json.Marshal(body)
}
