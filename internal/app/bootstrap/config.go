// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the journal service.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, teacher_password, etc.
//   - Environment variables: GLOBALISSUES_MONGO_URI, GLOBALISSUES_TEACHER_PASSWORD, etc.
//   - Command-line flags: --mongo_uri, --teacher_password, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "global_issues", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Teacher gate. The plain password default matches the classroom dev
	// setup; production deployments set teacher_password_hash instead.
	{Name: "teacher_password", Default: "profesor2024", Desc: "Instructor shared secret (plain)"},
	{Name: "teacher_password_hash", Default: "", Desc: "Instructor shared secret (bcrypt hash; overrides teacher_password)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// WAFFLE's config.LoadWithAppConfig handles .env files, config
// files, environment variables (WAFFLE_* for core, GLOBALISSUES_* for
// app), and command-line flags, merging with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GLOBALISSUES", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TeacherPassword:     appValues.String("teacher_password"),
		TeacherPasswordHash: appValues.String("teacher_password_hash"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	// The teacher gate needs some secret to compare against.
	if appCfg.TeacherPassword == "" && appCfg.TeacherPasswordHash == "" {
		return fmt.Errorf("either teacher_password or teacher_password_hash must be set")
	}

	return nil
}
