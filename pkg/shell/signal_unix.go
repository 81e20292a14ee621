//go:build unix

package shell

import (
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"golang.org/x/sys/unix"
)

func notifySignals() chan os.Signal {
	sigCh := make(chan os.Signal, 32)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGUSR1)
	return sigCh
}

func signalName(sig os.Signal) string {
	return unix.SignalName(sig.(syscall.Signal))
}

func handleSignal(sig os.Signal, stderr io.Writer) {
	switch sig {
	case syscall.SIGHUP, syscall.SIGTERM:
		os.Exit(0)
	case syscall.SIGUSR1:
		// Goroutines of jobs are labelled with the job name.
		pprof.Lookup("goroutine").WriteTo(stderr, 1)
	}
}
