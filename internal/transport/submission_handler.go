// Package transport exposes the HTTP handlers of the submission server.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/clock"
	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

const (
	SubmissionPath = "/version/v1/diagnosis-keys"

	authorizationHeader    = "cwa-authorization"
	fakeHeader             = "cwa-fake"
	filteredCheckInsHeader = "cwa-filtered-checkins"
	savedCheckInsHeader    = "cwa-saved-checkins"

	requestFake = "fake"
	requestReal = "real"

	maxBodyBytes = 1 << 20
)

// SubmissionHandler accepts diagnosis key submissions. Fake requests only wait
// as long as a real one would take.
type SubmissionHandler struct {
	logger    *zap.Logger
	submitter Submitter
	verifier  Verifier
	delays    DelayManager
	metrics   Metrics
	sleep     func(context.Context, time.Duration) error
}

func NewSubmissionHandler(
	submitter Submitter,
	verifier Verifier,
	delays DelayManager,
	metrics Metrics,
	logger *zap.Logger,
) (*SubmissionHandler, error) {
	if submitter == nil || verifier == nil {
		return nil, errors.New("submitter and verifier are required")
	}
	if delays == nil {
		return nil, errors.New("fake delay manager is required")
	}
	if metrics == nil {
		return nil, errors.New("submission metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionHandler{
		logger:    logger,
		submitter: submitter,
		verifier:  verifier,
		delays:    delays,
		metrics:   metrics,
		sleep:     clock.SleepWithContext,
	}, nil
}

// Register mounts the handler on mux.
func (h *SubmissionHandler) Register(mux *http.ServeMux) {
	mux.Handle(http.MethodPost+" "+SubmissionPath, h)
}

func (h *SubmissionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(fakeHeader) == "1" {
		h.serveFake(w, r)
		return
	}

	started := time.Now()
	h.metrics.ObserveRequest(requestReal)

	payload, ok := h.accept(w, r)
	if !ok {
		h.updateDelay(started)
		return
	}

	type outcome struct {
		result model.SubmissionResult
		err    error
	}
	done := make(chan outcome, 1)
	ctx := context.WithoutCancel(r.Context())
	go func() {
		result, err := h.submitter.Submit(ctx, payload)
		h.updateDelay(started)
		done <- outcome{result: result, err: err}
	}()

	select {
	case <-r.Context().Done():
		h.logger.Debug("submitter went away before the submission finished")
	case out := <-done:
		if out.err != nil {
			h.logger.Error("submission failed", zap.Error(out.err))
			http.Error(w, "submission failed", http.StatusInternalServerError)
			return
		}
		writeCounters(w, out.result)
	}
}

// accept decodes the payload and verifies the TAN. It writes the error
// response itself when the submission is rejected.
func (h *SubmissionHandler) accept(w http.ResponseWriter, r *http.Request) (model.SubmissionPayload, bool) {
	var req submissionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.Debug("malformed submission", zap.Error(err))
		http.Error(w, "malformed submission payload", http.StatusBadRequest)
		return model.SubmissionPayload{}, false
	}

	tan := r.Header.Get(authorizationHeader)
	if tan == "" {
		http.Error(w, "missing tan", http.StatusForbidden)
		return model.SubmissionPayload{}, false
	}
	valid, err := h.verifier.Verify(r.Context(), tan)
	if err != nil {
		h.logger.Error("tan verification failed", zap.Error(err))
		http.Error(w, "tan verification unavailable", http.StatusInternalServerError)
		return model.SubmissionPayload{}, false
	}
	if !valid {
		http.Error(w, "invalid tan", http.StatusForbidden)
		return model.SubmissionPayload{}, false
	}
	return req.toPayload(), true
}

// updateDelay feeds every handled real request, rejected or not, into the fake delay.
func (h *SubmissionHandler) updateDelay(started time.Time) {
	h.delays.Update(time.Since(started))
	h.metrics.ObserveFakeDelay(h.delays.Delay())
}

func (h *SubmissionHandler) serveFake(w http.ResponseWriter, r *http.Request) {
	h.metrics.ObserveRequest(requestFake)
	if err := h.sleep(r.Context(), h.delays.JitteredDelay()); err != nil {
		return
	}
	writeCounters(w, model.SubmissionResult{})
}

func writeCounters(w http.ResponseWriter, result model.SubmissionResult) {
	w.Header().Set(filteredCheckInsHeader, strconv.Itoa(result.FilteredCheckIns))
	w.Header().Set(savedCheckInsHeader, strconv.Itoa(result.SavedCheckIns))
	w.WriteHeader(http.StatusOK)
}
