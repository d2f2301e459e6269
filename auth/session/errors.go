package session

type (
	NotFound struct {
		ID string
	}
)

func (NotFound) Error() string {
	return "session not found or expired"
}
