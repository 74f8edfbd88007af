// Package environment names the deployment environments the service runs in
// and parses them from configuration values.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	log := logger.New(logger.WithEnvironment(env, "cardcheck"))
package environment
