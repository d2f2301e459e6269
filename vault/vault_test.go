package vault

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/require"
)

func TestReadFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flag.txt"), []byte("FLAG{demo}"), 0644))

	buf, err := Open(dir).ReadFlag()
	require.NoError(t, err)
	require.Equal(t, []byte("FLAG{demo}"), buf)
}

func TestReadFlagMissing(t *testing.T) {
	_, err := Open(t.TempDir()).ReadFlag()
	var missing ArtifactMissing
	if !errors.As(err, &missing) {
		t.Fatalf("unexpected error for missing artifact: %v", err)
	}
}

func TestServeFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flag.txt"), []byte("FLAG{demo}"), 0644))

	apitest.Handler(http.HandlerFunc(Open(dir).ServeFlag)).
		Get("/flag").
		Expect(t).
		Status(http.StatusOK).
		Header("Content-Disposition", `attachment; filename="flag.txt"`).
		Body("FLAG{demo}").
		End()
}

func TestServeFlagMissing(t *testing.T) {
	apitest.Handler(http.HandlerFunc(Open(t.TempDir()).ServeFlag)).
		Get("/flag").
		Expect(t).
		Status(http.StatusNotFound).
		End()
}
