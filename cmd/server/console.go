package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/config"
	"github.com/KirkDiggler/theta-arc/internal/console"
)

var (
	consoleUser    string
	consoleChannel string
	consoleLogFile string
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play in the terminal",
	Long:  `Run the game in-process and play it from a terminal UI as a single user.`,
	RunE:  runConsole,
}

func init() {
	consoleCmd.Flags().StringVar(&consoleUser, "user", console.DefaultUserID, "user id to play as")
	consoleCmd.Flags().StringVar(&consoleChannel, "channel", console.DefaultChannelID, "channel id to play in")
	consoleCmd.Flags().StringVar(&consoleLogFile, "log-file", "", "write logs here instead of discarding them")
}

func runConsole(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the UI owns the terminal
	var logOut io.Writer = io.Discard
	if consoleLogFile != "" {
		f, err := os.OpenFile(consoleLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	cfg.SetupLogging(logOut)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, err := newGame(ctx, cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	var ui *console.Console
	forward := chat.SinkFunc(func(ctx context.Context, a *chat.Announcement) error {
		if ui == nil {
			return nil
		}
		return ui.Announce(ctx, a)
	})

	dispatcher, announcer, err := g.frontend(forward)
	if err != nil {
		return err
	}

	ui, err = console.New(&console.Config{
		Frames:    dispatcher,
		UserID:    consoleUser,
		ChannelID: consoleChannel,
	})
	if err != nil {
		return err
	}

	announcer.Start()
	defer announcer.Stop()

	done := make(chan error, 1)
	go func() {
		done <- dispatcher.Run(ctx)
	}()

	runErr := ui.Run(ctx)
	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Dispatcher stopped", "error", err)
	}
	return runErr
}
