// Package env keeps names of environment variables with special significance to
// crush.
package env

// Environment variables with special significance to crush.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	CRUSH_CONFIG          = "CRUSH_CONFIG"
	CRUSH_SESSION         = "CRUSH_SESSION"
	CRUSH_TEST_TIME_SCALE = "CRUSH_TEST_TIME_SCALE"
	HOME                  = "HOME"
	PATH                  = "PATH"
	PATHEXT               = "PATHEXT"
	SHLVL                 = "SHLVL"
)
