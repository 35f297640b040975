package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginData) Validate() error {
	if strings.TrimSpace(d.Email) == "" {
		return errors.New("email is required")
	}
	if d.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type JWTResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Name        string `json:"name"`
}

type ChangePasswordData struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (d ChangePasswordData) Validate() error {
	if d.OldPassword == "" {
		return errors.New("current password is required")
	}
	if len(d.NewPassword) < 8 {
		return errors.New("new password must be at least 8 characters")
	}
	return nil
}
