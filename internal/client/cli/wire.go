package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/config"
	"github.com/dmitrijs2005/gophblog/internal/client/repositories"
	"github.com/dmitrijs2005/gophblog/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/gophblog/internal/client/services"
	"github.com/dmitrijs2005/gophblog/internal/client/session"
	"github.com/dmitrijs2005/gophblog/internal/logging"
)

// Build wires the client from configuration: local database, session
// storage, HTTP client, session store and services. The returned closer
// releases the database.
func Build(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, func(), error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	db, err := repositories.OpenDatabase(ctx, c.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}

	storage := sessions.NewSQLiteStorage(db)

	opts := []client.Option{client.WithTimeout(c.RequestTimeout), client.WithLogger(logger)}
	if c.InsecureTLS {
		opts = append(opts, client.WithInsecureTLS())
	}
	api := client.NewHTTPClient(c.ServerURL, storage, opts...)

	store := session.NewStore(api, storage, logger)
	if err := store.Bootstrap(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("error restoring session: %w", err)
	}

	app := NewApp(Deps{
		Session:  store,
		Blogs:    services.NewBlogService(api),
		Posts:    services.NewPostService(api, logger),
		Comments: services.NewCommentService(api),
		Likes:    services.NewLikeService(api),
		Users:    services.NewUserService(api, store),
		Logger:   logger,
		In:       in,
		Out:      out,
	})

	logger.Debug(ctx, "client ready", "server", c.ServerURL, "storage", c.StoragePath, "logged_in", store.IsLoggedIn())
	return app, func() { _ = db.Close() }, nil
}
