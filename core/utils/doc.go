// Package utils provides common utility functions for the pogodata
// application. It mostly contains duck-typed conversion helpers for the
// untyped map[string]any payloads decoded from the game-master dump.
package utils
