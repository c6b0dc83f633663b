package status

import (
	"errors"
	"io"
	"net/http"

	"github.com/ggbd-labs/finance-server/internal/logging"
)

// LivenessMessage is the plain-text body served at the root route.
const LivenessMessage = "Your Finance API is running smoothly!"

type Handler struct {
}

func NewHandler() Handler {
	return Handler{}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := io.WriteString(w, LivenessMessage)
	return err
}
