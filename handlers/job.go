package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/widewildonline-ai/serp-tracker-web/jobs"
	"github.com/widewildonline-ai/serp-tracker-web/models"
)

// JobHandler exposes the local batch jobs and the remote crawler's
// asynchronous job triggers.
type JobHandler struct {
	jobs *jobs.Service
}

func NewJobHandler(jobs *jobs.Service) *JobHandler {
	return &JobHandler{jobs}
}

func (h *JobHandler) RunSerpBatch(w http.ResponseWriter, r *http.Request) Result {
	report, err := h.jobs.CheckSerps(r.Context())
	if err != nil {
		return RemoteError(err)
	}

	return Ok(report)
}

func (h *JobHandler) RunVolumeBatch(w http.ResponseWriter, r *http.Request) Result {
	report, err := h.jobs.RefreshVolumes(r.Context())
	if err != nil {
		return RemoteError(err)
	}

	return Ok(report)
}

func (h *JobHandler) RunAnalyzeBatch(w http.ResponseWriter, r *http.Request) Result {
	report, err := h.jobs.AnalyzeBlogs(r.Context())
	if err != nil {
		return RemoteError(err)
	}

	return Ok(report)
}

// GetHealth polls the crawler's advisory status snapshot. The lock flags are
// informational; nothing locally enforces them.
func (h *JobHandler) GetHealth(w http.ResponseWriter, r *http.Request) Result {
	client, err := h.jobs.Client()
	if err != nil {
		return RemoteError(err)
	}

	health, err := client.GetHealth(r.Context())
	if err != nil {
		return RemoteError(err)
	}

	return Ok(models.JobHealth{
		OK:             health.OK,
		RankLocked:     health.RankLocked,
		VolumeLocked:   health.VolumeLocked,
		AnalysisLocked: health.AnalysisLocked,
	})
}

// RunRemoteRank fires the crawler's weekly rank job; it runs asynchronously
// out of process.
func (h *JobHandler) RunRemoteRank(w http.ResponseWriter, r *http.Request) Result {
	var req struct {
		Mode string `json:"mode"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	client, err := h.jobs.Client()
	if err != nil {
		return RemoteError(err)
	}

	res, err := client.RunRank(r.Context(), req.Mode)
	if err != nil {
		return RemoteError(err)
	}

	return Ok(models.RunJobResponse{OK: res.OK, PID: res.PID})
}

func (h *JobHandler) RunRemoteVolume(w http.ResponseWriter, r *http.Request) Result {
	client, err := h.jobs.Client()
	if err != nil {
		return RemoteError(err)
	}

	res, err := client.RunVolume(r.Context())
	if err != nil {
		return RemoteError(err)
	}

	return Ok(models.RunJobResponse{OK: res.OK, PID: res.PID})
}

func (h *JobHandler) RunRemoteAnalysis(w http.ResponseWriter, r *http.Request) Result {
	client, err := h.jobs.Client()
	if err != nil {
		return RemoteError(err)
	}

	res, err := client.RunAnalysis(r.Context())
	if err != nil {
		return RemoteError(err)
	}

	return Ok(models.RunJobResponse{OK: res.OK, PID: res.PID})
}
