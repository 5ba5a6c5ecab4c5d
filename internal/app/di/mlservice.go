package di

import (
	"os"
	"strings"

	signalshandler "github.com/harshal31718/enma-quant-trading-platform/internal/feature/signals/transport/handler"
	signalsusecase "github.com/harshal31718/enma-quant-trading-platform/internal/feature/signals/usecase"
)

// MLSymbolsFromEnv reads the comma-separated ML_SYMBOLS list. Blank entries are dropped.
func MLSymbolsFromEnv() []string {
	var out []string
	for _, s := range strings.Split(os.Getenv("ML_SYMBOLS"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NewSignalHandler wires the signal usecase behind the ml-service handler.
func NewSignalHandler(symbols []string) *signalshandler.SignalHandler {
	uc := signalsusecase.NewSignalUsecase(signalsusecase.WithSymbols(symbols))
	return signalshandler.NewSignalHandler(uc)
}
