package shell

import (
	"io"
	"os"
	"os/signal"
	"strconv"

	"src.crush.sh/pkg/env"
)

func incSHLVL() func() {
	oldValue, hadValue := os.LookupEnv(env.SHLVL)
	i, err := strconv.Atoi(oldValue)
	if err != nil {
		i = 0
	}
	os.Setenv(env.SHLVL, strconv.Itoa(i+1))

	if hadValue {
		return func() { os.Setenv(env.SHLVL, oldValue) }
	} else {
		return func() { os.Unsetenv(env.SHLVL) }
	}
}

func initSignal(stderr io.Writer) func() {
	sigCh := notifySignals()
	go func() {
		for sig := range sigCh {
			logger.Println("signal", signalName(sig))
			handleSignal(sig, stderr)
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
