package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"bitnum/internal/batch"
	"bitnum/internal/ui"
)

type batchOutcome struct {
	result batch.Result
	err    error
}

// runBatchWithUI runs req in the background while a Bubble Tea program
// draws its progress. The UI exits once the event channel is closed.
func runBatchWithUI(ctx context.Context, title string, req batch.Request) (batch.Result, error) {
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		req.Progress = batch.ChannelSink{Ch: events}
		res, err := batch.Run(ctx, req)
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, req.Items, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	final, uiErr := program.Run()
	if uiErr != nil || ui.Interrupted(final) {
		// интерфейс закрыт раньше времени: останавливаем вычисления
		cancel()
	}
	// дочитываем события, чтобы воркеры не заблокировались на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
