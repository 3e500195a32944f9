package handler

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AdrianaGRO/PyArch.dev/internal/auth"
	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
	"github.com/AdrianaGRO/PyArch.dev/internal/middleware"
	"github.com/AdrianaGRO/PyArch.dev/internal/service"
	"github.com/AdrianaGRO/PyArch.dev/internal/validator"
)

// multipartMemory is how much of a multipart form is kept in memory before
// spilling file parts to disk.
const multipartMemory = 8 << 20

// PostHandler handles blog post pages and the admin post workflow.
type PostHandler struct {
	content service.ContentServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(content service.ContentServiceInterface) *PostHandler {
	return &PostHandler{content: content}
}

// postForm is the form state echoed back into create_post.html and edit_post.html.
type postForm struct {
	Title    string
	Content  string
	Category string
}

// Show handles GET /post/:id
// Drafts are only visible to the admin.
func (h *PostHandler) Show(c *gin.Context) {
	post, err := h.content.GetPost(c.Request.Context(), c.Param("id"), auth.IsAuthenticated(c))
	if err != nil {
		handleError(c, err, PostNotFoundMessage)
		return
	}
	renderPage(c, http.StatusOK, "post.html", post.Title, gin.H{"Post": post})
}

// NewForm handles GET /create
func (h *PostHandler) NewForm(c *gin.Context) {
	renderPage(c, http.StatusOK, "create_post.html", "New post", gin.H{"Form": postForm{}})
}

// Create handles POST /create
func (h *PostHandler) Create(c *gin.Context) {
	in, cleanup, err := readPostInput(c)
	if err != nil {
		h.badForm(c, err)
		return
	}
	defer cleanup()

	post, err := h.content.CreatePost(c.Request.Context(), in)
	if errors.Is(err, domain.ErrValidationRejected) {
		flashValidation(c, err)
		renderPage(c, http.StatusBadRequest, "create_post.html", "New post", gin.H{"Form": formOf(in)})
		return
	}
	if err != nil {
		handleError(c, err, PostNotFoundMessage)
		return
	}

	middleware.RequestLogger(c).Info("Post created", slog.Int("post_id", post.ID))
	auth.AddFlash(c, "success", "Post created successfully!")
	c.Redirect(http.StatusFound, "/")
}

// EditForm handles GET /edit/:id
func (h *PostHandler) EditForm(c *gin.Context) {
	post, err := h.content.GetPost(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		handleError(c, err, PostNotFoundMessage)
		return
	}
	renderPage(c, http.StatusOK, "edit_post.html", "Edit post", gin.H{
		"Post": post,
		"Form": postForm{Title: post.Title, Content: post.Content, Category: post.Category},
	})
}

// Update handles POST /edit/:id
func (h *PostHandler) Update(c *gin.Context) {
	id := c.Param("id")

	in, cleanup, err := readPostInput(c)
	if err != nil {
		h.badForm(c, err)
		return
	}
	defer cleanup()

	post, err := h.content.UpdatePost(c.Request.Context(), id, in)
	if errors.Is(err, domain.ErrValidationRejected) {
		current, getErr := h.content.GetPost(c.Request.Context(), id, true)
		if getErr != nil {
			handleError(c, getErr, PostNotFoundMessage)
			return
		}
		flashValidation(c, err)
		renderPage(c, http.StatusBadRequest, "edit_post.html", "Edit post", gin.H{"Post": current, "Form": formOf(in)})
		return
	}
	if err != nil {
		handleError(c, err, PostNotFoundMessage)
		return
	}

	auth.AddFlash(c, "success", "Post updated successfully!")
	c.Redirect(http.StatusFound, "/post/"+post.IDString())
}

// Delete handles POST /delete/:id
// Unknown ids still redirect home.
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.content.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, PostNotFoundMessage)
		return
	}
	auth.AddFlash(c, "success", "Post deleted successfully!")
	c.Redirect(http.StatusFound, "/")
}

func (h *PostHandler) badForm(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		renderError(c, http.StatusRequestEntityTooLarge, TooLargeMessage)
		return
	}
	middleware.RequestLogger(c).Warn("Unreadable post form", slog.String("error", err.Error()))
	renderError(c, http.StatusBadRequest, "The form could not be read")
}

// readPostInput parses the create/edit form. The returned cleanup closes the
// uploaded file and removes any temporary multipart files.
func readPostInput(c *gin.Context) (domain.PostInput, func(), error) {
	noop := func() {}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
			return domain.PostInput{}, noop, err
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return domain.PostInput{}, noop, err
	}

	in := domain.PostInput{
		Title:    c.Request.PostFormValue("title"),
		Content:  c.Request.PostFormValue("content"),
		Category: c.Request.PostFormValue("category"),
	}

	form := c.Request.MultipartForm
	cleanup := func() {
		if form != nil {
			_ = form.RemoveAll()
		}
	}

	file, header, err := c.Request.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return in, cleanup, nil
	case err != nil:
		return in, cleanup, err
	}

	in.Image = &domain.ImageFile{Filename: header.Filename, Body: file}
	return in, func() {
		closeFile(file)
		cleanup()
	}, nil
}

func closeFile(f multipart.File) {
	if f != nil {
		_ = f.Close()
	}
}

func flashValidation(c *gin.Context, err error) {
	for _, msg := range validator.Messages(err) {
		auth.AddFlash(c, "error", msg)
	}
}

func formOf(in domain.PostInput) postForm {
	return postForm{Title: in.Title, Content: in.Content, Category: in.Category}
}
