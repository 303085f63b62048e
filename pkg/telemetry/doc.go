// Package telemetry provides structured logging for planguard built on
// zerolog. Components receive sub-loggers tagged with a component field
// so output from the loader, engine, and runner can be told apart.
package telemetry
