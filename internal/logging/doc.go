// Package logger provides leveled logging for sealpost commands.
//
// Output is prefixed with colored level tags using fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including debug and error details
//
// Without flags only WarnfAlways output is shown; user-facing results are
// printed by the command itself.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfAlways()    // Always shown
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// Passwords and derived keys must never be passed to any of these methods.
package logger
