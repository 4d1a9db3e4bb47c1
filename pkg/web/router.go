// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/helpdocs/collab-service/internal/authorization"
	"github.com/helpdocs/collab-service/internal/db"
	"github.com/helpdocs/collab-service/internal/identity"
	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/storage"
	"github.com/helpdocs/collab-service/internal/teams"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/pkg/company"
	"github.com/helpdocs/collab-service/pkg/document"
	"github.com/helpdocs/collab-service/pkg/messaging"
	"github.com/helpdocs/collab-service/pkg/metrics"
	"github.com/helpdocs/collab-service/pkg/status"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	teamDirectory teams.ClientInterface,
	inviteLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
	)

	router.Use(middlewares...)

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	companyService := company.NewService(s, authorizer, dbClient, inviteLifetime, tracer, monitor, logger)
	documentService := document.NewService(s, authorizer, dbClient, tracer, monitor, logger)
	messagingService := messaging.NewService(s, authorizer, teamDirectory, dbClient, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	company.NewAPI(companyService, logger).RegisterEndpoints(router)
	document.NewAPI(documentService, logger).RegisterEndpoints(router)
	messaging.NewAPI(messagingService, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
