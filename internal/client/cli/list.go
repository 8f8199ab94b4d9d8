package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

func printPosts(w io.Writer, posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSLUG\tSTATUS\tLIKES\tCOMMENTS")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n", p.ID, p.Title, p.Slug, postStatus(p), len(p.Likes), len(p.Comments))
	}
	_ = tw.Flush()
}

func printBlogs(w io.Writer, blogs []models.Blog) {
	if len(blogs) == 0 {
		fmt.Fprintln(w, "No blogs.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDESCRIPTION\tOWNER")
	for _, b := range blogs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", b.ID, b.Title, b.Description, b.UserID)
	}
	_ = tw.Flush()
}

func postStatus(p models.Post) string {
	if p.Published {
		return "published"
	}
	return "draft"
}
