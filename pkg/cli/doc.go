// Package cli implements the command-line interface for the ktad test
// application daemon.
//
// # Commands
//
// serve (default) - start the HTTP API server:
//
//	ktad serve [--port 8000]
//
// Starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully. Configuration comes from the environment; --port
// overrides the PORT variable.
//
// config - print the effective configuration:
//
//	ktad config [--format yaml|json]
//
// Resolves the configuration from the environment and prints it. The
// token signing secret is always redacted.
//
// # Environment Variables
//
//	PORT                         HTTP listen port (default: 8000)
//	LOG_LEVEL                    Logging verbosity (debug, info, warn, error)
//	SECRET_KEY                   JWT signing secret
//	TOKEN_ALGORITHM              JWT signing algorithm (HS256, HS384, HS512)
//	ACCESS_TOKEN_EXPIRE_MINUTES  Login token lifetime
//	APP_VERSION                  Advertised application version
//	APP_ENVIRONMENT              Deployment environment name
//	DEPLOYMENT_VERSION           Blue/green routing color
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
package cli
