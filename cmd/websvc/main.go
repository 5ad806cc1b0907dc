package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkrupp/catcafe-web/internal/infra/config"
	"github.com/mkrupp/catcafe-web/internal/infra/logging"
	"github.com/mkrupp/catcafe-web/internal/infra/transport/http"
	"github.com/mkrupp/catcafe-web/internal/repo/user"
	"github.com/mkrupp/catcafe-web/internal/svc/accountsvc"
	"github.com/mkrupp/catcafe-web/internal/svc/sessionsvc"
	"github.com/mkrupp/catcafe-web/internal/svc/websvc"
)

const (
	appName = "catcafe"
	svcName = "websvc"
)

type Config struct {
	config.EnvConfig

	Log     logging.LoggerConfig            `envPrefix:"LOG_"`
	HTTP    websvc.HTTPTransportConfig      `envPrefix:"HTTP_"`
	Account accountsvc.AccountConfig        `envPrefix:"ACCOUNT_"`
	Session sessionsvc.SessionConfig        `envPrefix:"SESSION_"`
	User    user.SQLiteUserRepositoryConfig `envPrefix:"USER_"`
}

func main() {
	var (
		cfg Config
		ctx = context.Background()

		configPrefix = strings.ToUpper(strings.Join([]string{appName, svcName}, "_"))
		loggerName   = strings.ToLower(strings.Join([]string{appName, svcName}, "."))
	)

	if err := config.Parse(ctx, &cfg, configPrefix); err != nil {
		panic(err)
	}

	logging.Configure(ctx, cfg.Log, loggerName)

	if err := run(ctx, cfg); err != nil {
		panic(err)
	}
}

func run(ctx context.Context, cfg Config) (err error) {
	log := logging.GetLogger("cmd.websvc")

	defer func() {
		if err != nil {
			log.ErrorContext(ctx, "error", "err", err)

			return
		}

		log.InfoContext(ctx, "shutdown")
	}()

	accountSvc, err := accountsvc.NewAccountService(
		user.SQLiteUserRepositoryFactory(cfg.User),
		cfg.Account,
	)
	if err != nil {
		return fmt.Errorf("new account service: %w", err)
	}
	defer accountSvc.Close()

	sessionSvc := sessionsvc.NewSessionService(accountSvc.UserRepo, cfg.Session)

	httpTransport, err := websvc.NewHTTPTransport(accountSvc, sessionSvc, cfg.HTTP)
	if err != nil {
		return fmt.Errorf("new http transport: %w", err)
	}

	// Resolve the session's user into the request context before the site
	// handlers run; public pages stay reachable for anonymous requests.
	handler := http.CurrentUserMiddleware(httpTransport, sessionSvc, log)

	if err := http.ListenAndServe(ctx, handler, cfg.HTTP.HTTPTransportConfig); err != nil {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}
