package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/accounts"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/bot"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/db"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/internal/logutil"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/telegram"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Connect the account and serve owner commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logutil.LoggerFromViper()
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			baseURL := strings.TrimSpace(viper.GetString("telegram.base_url"))
			token := strings.TrimSpace(viper.GetString("telegram.token"))
			session := strings.TrimSpace(viper.GetString("telegram.session"))
			if baseURL == "" || token == "" || session == "" {
				return fmt.Errorf("telegram.base_url, telegram.token and telegram.session are required")
			}

			dbCfg := db.DefaultConfig()
			dbCfg.DSN = viper.GetString("db.dsn")
			gdb, err := db.Open(dbCfg)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			store, err := db.NewStore(gdb)
			if err != nil {
				return err
			}

			client, err := telegram.NewClient(&http.Client{Timeout: 90 * time.Second}, baseURL, token, session)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			me, err := client.GetMe(ctx)
			if err != nil {
				return fmt.Errorf("authenticate: %w", err)
			}
			logger.Info("logged in", "id", me.ID, "first_name", me.FirstName, "username", me.Username)

			registry := accounts.NewRegistry(store, logger)
			accountName := strings.TrimSpace(viper.GetString("bot.account_name"))
			if accountName == "" && me.FirstName != "" {
				accountName = me.FirstName + " (Main)"
			}
			if _, err := registry.Register(ctx, client, session, accountName); err != nil {
				return fmt.Errorf("register primary account: %w", err)
			}

			router, err := bot.NewRouter(bot.Options{
				Log:         logger,
				Transport:   client,
				TypingScale: viper.GetFloat64("bot.typing_scale"),
			})
			if err != nil {
				return err
			}
			router.SetOwner(me.ID)

			rt := &bot.Runtime{
				Log:       logger,
				Transport: client,
				Registry:  registry,
				Store:     store,
				HTTP:      &http.Client{Timeout: 10 * time.Second},
				LogPath:   viper.GetString("logging.file"),
				Restart:   restartProcess,
				Shutdown:  cancel,
			}
			bot.NewHandlers(rt).RegisterAll(router)

			// Startup notification goes to Saved Messages, which is the
			// owner's own chat id.
			_, err = client.SendMessage(ctx, me.ID, fmt.Sprintf(
				"**Kira V1 Started!** ✅\n\n**User:** %s\n**ID:** `%d`\n**Time:** %s\n\nOwner-only mode active • 60+ commands",
				me.FirstName, me.ID, time.Now().Format("15:04:05")))
			if err != nil {
				logger.Warn("startup notification failed", "error", err)
			}

			logger.Info("dispatch loop started", "owner_id", me.ID)
			err = router.Run(ctx, client)

			closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer closeCancel()
			if cerr := client.Close(closeCtx); cerr != nil {
				logger.Warn("close session", "error", cerr)
			}

			if errors.Is(err, context.Canceled) {
				logger.Info("stopped")
				return nil
			}
			return err
		},
	}
	return cmd
}

// restartProcess re-execs the current binary in place with the same
// arguments and environment.
func restartProcess() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	return syscall.Exec(exe, os.Args, os.Environ())
}
