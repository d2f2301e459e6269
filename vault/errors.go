package vault

import "fmt"

type (
	ArtifactMissing struct {
		Path string
	}
)

func (a ArtifactMissing) Error() string {
	return fmt.Sprintf("artifact %v is missing", a.Path)
}
