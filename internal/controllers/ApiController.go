package controllers

import (
	"errors"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"ohd/internal/hours"
	"ohd/internal/models"
	"ohd/internal/providers"
	"ohd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const invalidScheduleMessage = "JSON is invalid"

type ApiController struct {
	logger  providers.Logger
	service services.ScheduleServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

type formatResponse struct {
	Display string `json:"display"`
}

type replaceResponse struct {
	Version uint64 `json:"version"`
}

func NewApiController(logger providers.Logger, service services.ScheduleServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (ac *ApiController) respond(w http.ResponseWriter, result any) {
	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, gson)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeJSON(w, http.StatusOK, gson)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	return io.ReadAll(r.Body)
}

// ComputeOpeningTimes runs the pipeline over the posted schedule without
// touching the stored one.
func (ac *ApiController) ComputeOpeningTimes(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	schedule, err := models.ParseWeekSchedule(body)
	if err != nil {
		ac.logger.Debugf(providers.TypePost, "Rejected schedule: %s", err)
		http.Error(w, invalidScheduleMessage, http.StatusBadRequest)
		return
	}
	ac.respond(w, ac.service.Compute(schedule))
}

func (ac *ApiController) FormatInterval(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	interval, err := models.ParseInterval(body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.respond(w, formatResponse{Display: hours.FormatInterval(interval)})
}

func (ac *ApiController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ac.respond(w, ac.service.GetSchedule())
}

// ReplaceSchedule swaps the stored schedule. A body that does not parse is
// rejected and the previous schedule stays in place.
func (ac *ApiController) ReplaceSchedule(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err = ac.service.ReplaceScheduleJSON(body)
	if err != nil {
		ac.metrics.IncScheduleRejected()
		if errors.Is(err, models.ErrInvalidSchedule) {
			ac.logger.Warnf(providers.TypePost, "Schedule update rejected: %s", err)
			http.Error(w, invalidScheduleMessage, http.StatusBadRequest)
			return
		}
		ac.logger.Errorf(providers.TypePost, "Schedule update failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Clear()
	version := ac.service.GetVersion()
	ac.logger.Infof(providers.TypePost, "Schedule replaced, version %d", version)
	ac.respond(w, replaceResponse{Version: version})
}

func (ac *ApiController) GetOpeningTimes(w http.ResponseWriter, r *http.Request) {
	key := providers.CacheKey("opening-times", ac.service.GetVersion())
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.service.GetOpeningTimes(), nil
	})
}

func (ac *ApiController) GetDisplay(w http.ResponseWriter, r *http.Request) {
	today := ac.service.Today()
	key := providers.CacheKey("display", ac.service.GetVersion(), string(today))
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.service.Display(ac.service.GetOpeningTimes(), today), nil
	})
}
