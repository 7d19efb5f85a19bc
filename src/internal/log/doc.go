// Package log provides simple leveled logging for octetpost.
//
// Four levels are supported: DEBUG, INFO, WARN and ERROR. Each line gets a
// colored level prefix. DEBUG lines are only written in verbose mode, ERROR
// lines go to stderr and everything else goes to stdout.
//
// # Example Usage
//
//	log.Infof("Listening on %s", addr)
//	log.Warnf("Configuration file not given, using defaults")
//
//	log.SetVerbose(true)
//	log.Debugf("Decoded query: %+v", params)
//
// Tests can capture output with SetOutput:
//
//	var out, errOut bytes.Buffer
//	log.SetOutput(&out, &errOut)
//
// The package keeps global state guarded by a mutex, so it is safe to call
// from concurrent request handlers.
package log
