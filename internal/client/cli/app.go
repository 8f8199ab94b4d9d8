package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/client/guard"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/optimistic"
	"github.com/dmitrijs2005/gophblog/internal/client/services"
	"github.com/dmitrijs2005/gophblog/internal/logging"
)

// SessionStore is what the CLI needs from the session store.
type SessionStore interface {
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
	Register(ctx context.Context, reg models.Registration) (models.Session, error)
	Logout(ctx context.Context) error
	Current() models.Session
	IsLoggedIn() bool
	User() (models.User, bool)
	TokenExpiry() (time.Time, bool)
	Subscribe(fn func(models.Session)) (unsubscribe func())
}

// Deps are the collaborators of App.
type Deps struct {
	Session  SessionStore
	Blogs    services.BlogService
	Posts    services.PostService
	Comments services.CommentService
	Likes    services.LikeService
	Users    services.UserService
	Logger   logging.Logger
	In       io.Reader
	Out      io.Writer
}

type App struct {
	session  SessionStore
	blogs    services.BlogService
	posts    services.PostService
	comments services.CommentService
	likes    services.LikeService
	users    services.UserService
	logger   logging.Logger

	guard   *guard.Guard
	history *guard.History

	reader *bufio.Reader
	out    io.Writer

	mu     sync.Mutex
	status string

	filter    models.PostStatus
	viewing   *optimistic.Cell[models.Post]
	lastEmail string

	unsubscribe func()
}

func NewApp(d Deps) *App {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	g := guard.New(guard.NewRouter(guard.DefaultRoutes), d.Session)
	a := &App{
		session:  d.Session,
		blogs:    d.Blogs,
		posts:    d.Posts,
		comments: d.Comments,
		likes:    d.Likes,
		users:    d.Users,
		logger:   logger.With("component", "cli"),
		guard:    g,
		history:  guard.NewHistory(g),
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
		filter:   models.PostStatusAll,
	}

	a.setStatus(d.Session.Current())
	a.unsubscribe = d.Session.Subscribe(a.setStatus)
	return a
}

// setStatus keeps the prompt in step with the session.
func (a *App) setStatus(s models.Session) {
	status := "guest"
	if s.User != nil {
		status = s.User.UserName
	}
	a.mu.Lock()
	a.status = status
	a.mu.Unlock()
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fmt.Sprintf("(%s)", a.status)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// Run opens the home page (which asks for a login when there is no
// session) and then serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("gbcli (type 'help' for commands)")
	_ = a.Go(ctx, guard.HomePath)
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Close detaches the App from the session store.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.guard.Close()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
