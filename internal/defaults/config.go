package defaults

type Backend string

const (
	BackendFile   Backend = "file"
	BackendBadger Backend = "badger"
)

type Config struct {
	Backend Backend
	File    string // Path of the single-line file for BackendFile
}
