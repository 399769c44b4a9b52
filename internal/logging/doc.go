// Package logging builds the slog loggers used across scoremerge.
//
// Two output formats are supported: a console handler that renders
// level-tagged key=value lines for interactive use, and JSON for captured
// runs. Construction goes through Options or straight from the application
// config. Components attach themselves with NewComponentLogger so every line
// carries a component attribute.
package logging
