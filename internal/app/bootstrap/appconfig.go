// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (HTTP/HTTPS ports and TLS, logging level and
// format, CORS allowed origins, request body size limits, database
// connection timeouts); AppConfig is everything specific to this app.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Teacher gate configuration. The shared secret for the instructor
	// views; TeacherPasswordHash (bcrypt) takes precedence when set.
	TeacherPassword     string
	TeacherPasswordHash string
}
