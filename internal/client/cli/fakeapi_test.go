package cli

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

const validToken = "tok123"

// fakeAPI is an in-memory blogging server for end-to-end CLI tests.
type fakeAPI struct {
	mu sync.Mutex

	users  map[int64]models.User
	blogs  []models.Blog
	posts  []models.Post
	nextID int64

	// rejectToken makes every authenticated call answer 401.
	rejectToken bool
	failLike    bool

	hits map[string]int
}

func newFakeAPIState() *fakeAPI {
	alice := models.User{ID: 1, UserName: "alice", Email: "a@b.com", Role: "author"}
	bob := models.User{ID: 2, UserName: "bob", Email: "b@b.com", Role: "author"}
	return &fakeAPI{
		users: map[int64]models.User{1: alice, 2: bob},
		blogs: []models.Blog{
			{ID: 10, Title: "Alice writes", UserID: 1},
			{ID: 20, Title: "Bob writes", UserID: 2},
		},
		posts: []models.Post{
			{ID: 100, Title: "Hello", Content: "first", Slug: "hello", AuthorID: 1, BlogID: 10, Published: true,
				Likes: []models.Like{}, Comments: []models.Comment{}},
			{ID: 200, Title: "Bob draft", Content: "wip", Slug: "bob-draft", AuthorID: 2, BlogID: 20,
				Likes: []models.Like{}, Comments: []models.Comment{}},
		},
		nextID: 1000,
		hits:   map[string]int{},
	}
}

func (f *fakeAPI) hit(name string) {
	f.hits[name]++
}

func (f *fakeAPI) set(fn func(*fakeAPI)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeAPI) hitCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[name]
}

func fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, render.M{"message": msg})
}

func idParam(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func (f *fakeAPI) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f.rejectToken || r.Header.Get("Authorization") != "Bearer "+validToken {
			fail(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeAPI) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})

	r.Post("/User/login", f.login)
	r.Post("/User/register", f.register)

	r.Group(func(r chi.Router) {
		r.Use(f.authenticated)

		r.Get("/User/{id}", func(w http.ResponseWriter, req *http.Request) {
			f.hit("GetUser")
			u, ok := f.users[idParam(req)]
			if !ok {
				fail(w, req, http.StatusNotFound, "User not found")
				return
			}
			render.JSON(w, req, u)
		})
		r.Put("/User/profile/{id}", func(w http.ResponseWriter, req *http.Request) {
			f.hit("UpdateProfile")
			var upd models.ProfileUpdate
			_ = render.DecodeJSON(req.Body, &upd)
			u := f.users[idParam(req)]
			u.Bio, u.ProfileImageURL = upd.Bio, upd.ProfileImageURL
			f.users[u.ID] = u
			render.JSON(w, req, u)
		})

		r.Get("/Blog/all", func(w http.ResponseWriter, req *http.Request) {
			f.hit("ListBlogs")
			render.JSON(w, req, f.blogs)
		})
		r.Get("/Blog/{id}", func(w http.ResponseWriter, req *http.Request) {
			for _, b := range f.blogs {
				if b.ID == idParam(req) {
					render.JSON(w, req, b)
					return
				}
			}
			fail(w, req, http.StatusNotFound, "Blog not found")
		})
		r.Get("/Blog/author/{id}", func(w http.ResponseWriter, req *http.Request) {
			f.hit("BlogsByAuthor")
			out := []models.Blog{}
			for _, b := range f.blogs {
				if b.UserID == idParam(req) {
					out = append(out, b)
				}
			}
			render.JSON(w, req, out)
		})
		r.Post("/Blog", func(w http.ResponseWriter, req *http.Request) {
			var in models.BlogCreate
			_ = render.DecodeJSON(req.Body, &in)
			f.nextID++
			b := models.Blog{ID: f.nextID, Title: in.Title, Description: in.Description, UserID: in.UserID}
			f.blogs = append(f.blogs, b)
			render.Status(req, http.StatusCreated)
			render.JSON(w, req, b)
		})
		r.Delete("/Blog/{id}", func(w http.ResponseWriter, req *http.Request) {
			f.hit("DeleteBlog")
			w.WriteHeader(http.StatusNoContent)
		})

		r.Get("/Post/all", func(w http.ResponseWriter, req *http.Request) {
			f.hit("ListPosts")
			render.JSON(w, req, f.posts)
		})
		r.Get("/Post/slug/{slug}", func(w http.ResponseWriter, req *http.Request) {
			if p := f.postBy(func(p *models.Post) bool { return p.Slug == chi.URLParam(req, "slug") }); p != nil {
				render.JSON(w, req, p)
				return
			}
			fail(w, req, http.StatusNotFound, "Post not found")
		})
		r.Get("/Post/author/{id}", func(w http.ResponseWriter, req *http.Request) {
			out := []models.Post{}
			for _, p := range f.posts {
				if p.AuthorID == idParam(req) {
					out = append(out, p)
				}
			}
			render.JSON(w, req, out)
		})
		r.Post("/Post", func(w http.ResponseWriter, req *http.Request) {
			var in models.PostCreate
			_ = render.DecodeJSON(req.Body, &in)
			f.nextID++
			p := models.Post{ID: f.nextID, Title: in.Title, Content: in.Content, Slug: in.Slug,
				AuthorID: in.AuthorID, BlogID: in.BlogID, Likes: []models.Like{}, Comments: []models.Comment{}}
			f.posts = append(f.posts, p)
			render.Status(req, http.StatusCreated)
			render.JSON(w, req, p)
		})
		r.Post("/Post/{id}/publish", func(w http.ResponseWriter, req *http.Request) {
			p := f.postBy(func(p *models.Post) bool { return p.ID == idParam(req) })
			if p == nil {
				fail(w, req, http.StatusNotFound, "Post not found")
				return
			}
			p.Published = !p.Published
			w.WriteHeader(http.StatusNoContent)
		})
		r.Delete("/Post/{id}", func(w http.ResponseWriter, req *http.Request) {
			f.hit("DeletePost")
			w.WriteHeader(http.StatusNoContent)
		})

		r.Post("/Like", func(w http.ResponseWriter, req *http.Request) {
			if f.failLike {
				fail(w, req, http.StatusInternalServerError, "like failed")
				return
			}
			var in models.LikeCreate
			_ = render.DecodeJSON(req.Body, &in)
			p := f.postBy(func(p *models.Post) bool { return p.ID == in.PostID })
			f.nextID++
			u := f.users[in.UserID]
			l := models.Like{ID: f.nextID, PostID: in.PostID, User: models.UserShort{ID: u.ID, UserName: u.UserName}}
			p.Likes = append(p.Likes, l)
			render.JSON(w, req, l)
		})
		r.Delete("/Like/{id}", func(w http.ResponseWriter, req *http.Request) {
			for i := range f.posts {
				likes := f.posts[i].Likes[:0]
				for _, l := range f.posts[i].Likes {
					if l.ID != idParam(req) {
						likes = append(likes, l)
					}
				}
				f.posts[i].Likes = likes
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Post("/Comment", func(w http.ResponseWriter, req *http.Request) {
			var in models.CommentCreate
			_ = render.DecodeJSON(req.Body, &in)
			p := f.postBy(func(p *models.Post) bool { return p.ID == in.PostID })
			f.nextID++
			u := f.users[in.UserID]
			c := models.Comment{ID: f.nextID, Content: in.Content, PostID: in.PostID, User: models.UserShort{ID: u.ID, UserName: u.UserName}}
			p.Comments = append(p.Comments, c)
			render.JSON(w, req, c)
		})
		r.Delete("/Comment/{id}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
	return r
}

func (f *fakeAPI) postBy(match func(*models.Post) bool) *models.Post {
	for i := range f.posts {
		if match(&f.posts[i]) {
			return &f.posts[i]
		}
	}
	return nil
}

func (f *fakeAPI) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := render.DecodeJSON(r.Body, &creds); err != nil {
		fail(w, r, http.StatusBadRequest, "bad request")
		return
	}
	f.hit("Login")
	for _, u := range f.users {
		if strings.EqualFold(u.Email, creds.Email) && creds.Password == "secret" {
			render.JSON(w, r, models.AuthResponse{Token: validToken, User: u})
			return
		}
	}
	fail(w, r, http.StatusUnauthorized, "Invalid email or password")
}

func (f *fakeAPI) register(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := render.DecodeJSON(r.Body, &reg); err != nil {
		fail(w, r, http.StatusBadRequest, "bad request")
		return
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, reg.Email) {
			fail(w, r, http.StatusBadRequest, "Email already registered")
			return
		}
	}
	f.nextID++
	u := models.User{ID: f.nextID, UserName: reg.UserName, Email: reg.Email, Role: "author"}
	f.users[u.ID] = u
	render.JSON(w, r, models.AuthResponse{Token: validToken, User: u})
}
