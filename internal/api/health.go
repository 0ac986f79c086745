// Copyright (c) 2026 Manara. All rights reserved.

package api

import (
	"log/slog"
	"net/http"

	"github.com/manaracms/manara/internal/platform/respond"
)

// HealthDependencies holds the pingable backends reported by /ready.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func() error

	// CheckCache pings the Redis client.
	CheckCache func() error
}

type dependencyCheck struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers builds the /health and /ready probe handlers.
//
// Liveness only proves the process is serving. Readiness additionally pings
// every backend, answering 503 with per-dependency detail when any is down,
// so the orchestrator stops routing traffic here without restarting the pod.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	liveness = func(writer http.ResponseWriter, request *http.Request) {
		respond.JSON(writer, http.StatusOK, map[string]string{"status": "ok"})
	}

	checks := []struct {
		name string
		ping func() error
	}{
		{"postgres", deps.CheckDatabase},
		{"redis", deps.CheckCache},
	}

	readiness = func(writer http.ResponseWriter, request *http.Request) {
		results := make([]dependencyCheck, 0, len(checks))
		status, httpStatus := "ready", http.StatusOK

		for _, check := range checks {
			if check.ping == nil {
				continue
			}

			result := dependencyCheck{Name: check.name, IsOK: true}
			if err := check.ping(); err != nil {
				result.IsOK = false
				result.Error = err.Error()
				status, httpStatus = "degraded", http.StatusServiceUnavailable
				logger.Error("readiness_check_failed",
					slog.String("dependency", check.name),
					slog.Any("error", err),
				)
			}
			results = append(results, result)
		}

		respond.JSON(writer, httpStatus, map[string]any{
			"status": status,
			"checks": results,
		})
	}

	return liveness, readiness
}
