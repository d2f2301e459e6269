// Package vault serves the protected artifact of the training scenario,
// a single flag file kept on local storage.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lmoreau/intranet/internal/logutil"
)

const flagFile = "flag.txt"

type (
	V struct {
		root string
	}
)

func Open(root string) *V {
	return &V{root: root}
}

// ReadFlag buffers the whole artifact before anything is written to the
// network, so a failing disk read can still be reported as a clean server
// error instead of a truncated download.
func (v *V) ReadFlag() ([]byte, error) {
	buf, err := os.ReadFile(filepath.Join(v.root, flagFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ArtifactMissing{Path: filepath.Join(v.root, flagFile)}
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read flag artifact, cause %w", err)
	}
	return buf, nil
}

// ServeFlag streams the artifact as an attachment: 404 when it is absent,
// 500 when the read fails, 200 with the exact bytes otherwise.
func (v *V) ServeFlag(w http.ResponseWriter, r *http.Request) {
	buf, err := v.ReadFlag()
	if err != nil {
		var missing ArtifactMissing
		if errors.As(err, &missing) {
			http.Error(w, "Flag not found (place flag.txt in the data directory).", http.StatusNotFound)
			return
		}
		log := logutil.GetOrDefault(r.Context())
		log.Error().Err(err).Msg("unable to read flag artifact")
		http.Error(w, "Unable to read flag", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="flag.txt"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf)
}
