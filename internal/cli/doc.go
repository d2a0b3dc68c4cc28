// Package cli implements translatectl, a command line front end for the
// translation pipeline. It runs jobs in-process against the same services the
// HTTP server uses, reading configuration from the environment and .env.
package cli
