// Package logging provides the CLI's levelled console logger.
//
// Info and debug lines are only printed when Verbose or Debug is set;
// warnings and errors are always printed. Everything goes to stderr by
// default so that a command's stdout carries only its result.
package logging
