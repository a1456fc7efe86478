package context

// Environment is the interface to the process environment. It allows tests to
// run without touching the real environment variables.
type Environment interface {
	Get(key string) string
	Set(key, val string) error
}
