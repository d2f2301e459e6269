package auth

import "fmt"

type (
	UserNotFound struct {
		Username string
		ID       uint
	}
)

func (u UserNotFound) Error() string {
	if u.Username != "" {
		return fmt.Sprintf("user %v not found", u.Username)
	}
	return fmt.Sprintf("user id %v not found", u.ID)
}
