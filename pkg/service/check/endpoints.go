package check

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/passgauge/passgauge/pkg/entropy"
	"github.com/passgauge/passgauge/pkg/events"
	"github.com/passgauge/passgauge/pkg/hibp"
	"github.com/passgauge/passgauge/pkg/policy"
	"github.com/passgauge/passgauge/pkg/storage"
	"github.com/sirupsen/logrus"
)

// User-facing message templates. Diagnostics never reach the response body.
const (
	msgBreached   = "This password has appeared in breaches %d times. Do not use it."
	msgClean      = "This password was not found in the breached password database."
	msgCheckError = "Error checking password. Try again later."
)

type strengthRequest struct {
	Password string `json:"password"`
}

type strengthResponse struct {
	policy.Verdict
	Score   int     `json:"score"`
	Guesses float64 `json:"guesses"`
	Summary string  `json:"summary"`
}

type breachRequest struct {
	Password string `json:"password" valid:"required"`
}

type breachResponse struct {
	Breached bool   `json:"breached"`
	Count    int    `json:"count"`
	Message  string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleStrength evaluates a submitted password against the policy. An empty
// password is valid input and yields the empty verdict.
func HandleStrength(logger *logrus.Logger, oracle entropy.Oracle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var data strengthRequest
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		estimate := oracle.Estimate(data.Password)
		verdict := policy.Evaluate(data.Password, estimate)

		resp := strengthResponse{
			Verdict: verdict,
			Score:   estimate.Score,
			Guesses: estimate.Guesses,
		}
		if data.Password != "" {
			resp.Summary = fmt.Sprintf("Strength: %s (zxcvbn score %d/4, guesses ~%s)",
				verdict.Label, estimate.Score, formatGuesses(estimate.Guesses))
		}

		writeJSON(logger, w, http.StatusOK, &resp)
	}
}

// HandleBreach checks a submitted password against the breach corpus and
// records the outcome. Only the hash prefix is recorded or logged.
func HandleBreach(logger *logrus.Logger, checker hibp.Checker, store storage.Driver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var data breachRequest
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if valid, err := govalidator.ValidateStruct(data); !valid || err != nil {
			writeJSON(logger, w, http.StatusBadRequest, &errorResponse{Error: "empty password"})
			return
		}

		prefix := hibp.HashPassword(data.Password)[:5]

		result, err := checker.CheckPassword(r.Context(), data.Password)
		if err != nil {
			logger.WithError(err).WithField("prefix", prefix).Error("breach check failed")
			recordEvent(logger, store, prefix, events.OutcomeFailed, 0)
			writeJSON(logger, w, http.StatusBadGateway, &errorResponse{Error: msgCheckError})
			return
		}

		resp := breachResponse{
			Breached: result.Count > 0,
			Count:    result.Count,
		}

		if resp.Breached {
			resp.Message = fmt.Sprintf(msgBreached, result.Count)
			recordEvent(logger, store, prefix, events.OutcomeBreached, result.Count)
		} else {
			resp.Message = msgClean
			recordEvent(logger, store, prefix, events.OutcomeClean, result.Count)
		}

		writeJSON(logger, w, http.StatusOK, &resp)
	}
}

func recordEvent(logger *logrus.Logger, store storage.Driver, prefix, outcome string, count int) {
	event := events.CheckEvent{
		Timestamp:  time.Now(),
		HashPrefix: prefix,
		Outcome:    outcome,
		Count:      count,
	}

	if err := store.AddCheckEvent(event); err != nil {
		logger.WithError(err).Error("failed to record check event")
	}
}

// formatGuesses renders a guess estimate compactly: plain integers below a
// million, scientific notation above.
func formatGuesses(guesses float64) string {
	if guesses < 1e6 {
		return strconv.FormatFloat(guesses, 'f', 0, 64)
	}
	return strconv.FormatFloat(guesses, 'e', 1, 64)
}

func writeJSON(logger *logrus.Logger, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("Failed to write response")
	}
}
