package testutil

// TempDirer is a TB that can also create temporary directories, such as
// [*testing.T].
type TempDirer interface {
	TB
	TempDir() string
}
