// Package logging configures structured logging for confdoc.
//
// It wraps log/slog so the CLI and the configfile editor log the same way:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("saved config file", "path", "server.properties", "format", "properties")
//	logger.Warn("config file opened in raw mode", "path", path, "error", err)
//
// The pure engine packages (confdoc and confdoc/formats) never log; they
// return errors. Components that do log accept a *slog.Logger and fall back
// to Nop when none is given.
//
// Setting Config.Tee duplicates every record as JSON to a second writer,
// which the CLI uses for --log-file.
package logging
