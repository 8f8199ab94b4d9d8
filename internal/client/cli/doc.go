// Package cli provides gbcli, the interactive terminal client for the
// blogging platform.
//
// Every screen of the client is a page reached by path (see package guard).
// The REPL turns commands into navigations and actions:
//
//	go <path>            open a page, e.g. go /posts/hello-world
//	back                 return to the previous page
//	login | register     open the login or registration form
//	logout | whoami      end the session, show the logged-in user
//	like <postId>        toggle your like on a post
//	publish <postId>     toggle publication of your post
//	comment <postId>     add a comment
//	uncomment <id>       delete a comment
//	rmblog <id>          delete one of your blogs
//	rmpost <id>          delete one of your posts
//	filter <status>      all | published | unpublished
//	exit | quit          leave the program
//
// Protected pages redirect to /login when there is no session. A 401 from
// any page ends the session and sends the user back to /login.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
