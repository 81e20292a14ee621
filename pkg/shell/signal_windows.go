package shell

import (
	"io"
	"os"
	"os/signal"
	"syscall"
)

func notifySignals() chan os.Signal {
	sigCh := make(chan os.Signal, 32)
	signal.Notify(sigCh, syscall.SIGTERM)
	return sigCh
}

func signalName(sig os.Signal) string {
	return sig.String()
}

func handleSignal(sig os.Signal, stderr io.Writer) {
	switch sig {
	case syscall.SIGTERM:
		os.Exit(0)
	}
}
