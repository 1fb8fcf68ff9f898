// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	apirootfeature "github.com/LAULAUtonton/GLOBALISSUES/internal/app/features/apiroot"
	groupsfeature "github.com/LAULAUtonton/GLOBALISSUES/internal/app/features/groups"
	healthfeature "github.com/LAULAUtonton/GLOBALISSUES/internal/app/features/health"
	teacherfeature "github.com/LAULAUtonton/GLOBALISSUES/internal/app/features/teacher"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed; CORS and request limits are applied by
// the WAFFLE layer around the returned handler. Everything the journal
// frontend talks to lives under /api; /health is separate so load
// balancers and orchestrators can probe without touching the API surface.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	api := chi.NewRouter()

	rootHandler := apirootfeature.NewHandler()
	api.Mount("/", apirootfeature.Routes(rootHandler))

	groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
	api.Mount("/groups", groupsfeature.Routes(groupsHandler))

	teacherHandler := teacherfeature.NewHandler(appCfg.TeacherPassword, appCfg.TeacherPasswordHash, logger)
	api.Mount("/teacher", teacherfeature.Routes(teacherHandler))

	r.Mount("/api", api)

	return r, nil
}
