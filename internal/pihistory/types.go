package pihistory

import "time"

// Session is one recorded Pi agent transcript on disk.
type Session struct {
	ID           string
	Project      string // encoded project directory name, e.g. Users-foo-my-project
	FilePath     string
	FirstMessage string
	MessageCount int
	ModifiedAt   time.Time
}
