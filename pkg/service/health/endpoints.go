package health

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func HandleHealthCheck(logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
			logger.WithError(err).Error("Failed to write response")
		}
	}
}
