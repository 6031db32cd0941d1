package trainer

import "io"
import "log"
import "os"
import "sync"

var logMut sync.Mutex
var logger *log.Logger
var logFile *os.File

// SetLogger sends progress lines to w. A nil w restores printing to stderr.
func SetLogger(w io.Writer) {
	logMut.Lock()
	defer logMut.Unlock()
	closeLogFile()
	if w == nil {
		logger = nil
		return
	}
	logger = log.New(w, "", log.LstdFlags)
}

// SetLogFile appends progress lines to the file name
func SetLogFile(name string) error {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logMut.Lock()
	defer logMut.Unlock()
	closeLogFile()
	logFile = f
	logger = log.New(f, "", log.LstdFlags)
	return nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func logln(line string) {
	logMut.Lock()
	defer logMut.Unlock()
	if logger == nil {
		println(line)
		return
	}
	logger.Println(line)
}
