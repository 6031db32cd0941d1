package main

import "runtime/pprof"
import "os"
import "os/signal"
import "sync"
import "syscall"

// startProfile collects CPU profile data into name. The returned stop writes
// the profile; SIGINT or SIGTERM stop it too and exit.
func startProfile(name string) (stop func()) {
	f, err := os.Create(name)
	if err != nil {
		println(err.Error())
		return func() {}
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		println(err.Error())
		f.Close()
		return func() {}
	}
	var once sync.Once
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	stop = func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(done)
			pprof.StopCPUProfile()
			f.Close()
		})
	}
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			stop()
			os.Exit(130)
		case <-done:
		}
	}()
	return stop
}
