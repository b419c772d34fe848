package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// InterruptHandler turns SIGINT/SIGTERM into context cancellation and tells
// the operator what state the workspace was left in.
type InterruptHandler struct {
	writer        io.Writer
	sigChan       chan os.Signal
	operation     string
	partialOutput bool
}

// NewInterruptHandler creates a new interrupt handler.
func NewInterruptHandler(writer io.Writer) *InterruptHandler {
	if writer == nil {
		writer = os.Stderr
	}
	return &InterruptHandler{
		writer: writer,
	}
}

// HandleInterrupts returns a context canceled on the first interrupt signal.
// operation names what is running ("Extraction", "Prune"); partialOutput
// controls whether the operator is warned that files already written stay
// in place.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context, operation string, partialOutput bool) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	h.operation = operation
	h.partialOutput = partialOutput
	h.sigChan = make(chan os.Signal, 1)
	signal.Notify(h.sigChan, os.Interrupt, syscall.SIGTERM)

	sigChan := h.sigChan
	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			h.showInterruptMessage()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx
}

func (h *InterruptHandler) showInterruptMessage() {
	operation := h.operation
	if operation == "" {
		operation = "Operation"
	}
	msg := "\n\n" + FormatWarning(operation+" interrupted!")

	if h.partialOutput {
		msg += "\n" + FormatInfo("Files already processed were left in place. Re-run to complete.")
	}

	msg += "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
	}
}
