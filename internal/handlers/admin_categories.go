package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"blackshop/internal/api"
	"blackshop/internal/category"
	"blackshop/internal/i18n"
	"blackshop/internal/imaging"
	"blackshop/internal/models"
	"blackshop/internal/render"
	"blackshop/internal/storage"
)

const categoriesPath = "/admin/categories"

// allowedImageTypes are the content types accepted for uploaded images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// categoryPage is everything the category manager template shows.
type categoryPage struct {
	form        categoryForm
	editing     bool
	err         string
	fieldErrors map[string]string
	flashes     []render.Flash
}

// Categories renders the category manager: the create form and the tree.
// The "collapsed" query parameter carries the collapsed node ids and
// "edit" selects a category to pre-fill the form with.
func (a *Admin) Categories(w http.ResponseWriter, r *http.Request) {
	loc := a.loc(r)
	page := categoryPage{}

	q := r.URL.Query()
	if q.Get("created") != "" {
		page.flashes = append(page.flashes, render.Flash{Type: "success", Message: loc.T(i18n.CategoryCreated)})
	}
	if q.Get("deleted") != "" {
		page.flashes = append(page.flashes, render.Flash{Type: "info", Message: loc.T(i18n.CategoryDeleteNoop)})
	}

	flat, err := a.loadCategories(r)
	if err != nil {
		page.err = loc.T(i18n.CategoryLoadFailed)
	}

	if id := q.Get("edit"); id != "" {
		if c, ok := category.Find(flat, id); ok {
			page.editing = true
			page.form = categoryForm{
				Name:     c.Name,
				ParentID: c.ParentKey(),
				EditID:   c.ID,
			}
			if c.ImageURL != nil {
				page.form.ImageURL = *c.ImageURL
			}
		}
	}

	a.renderCategories(w, r, http.StatusOK, flat, page)
}

// CategoryCreate validates the form and creates the category through the
// catalog service. On success it redirects to the manager, which fetches
// the list again and shows an empty form.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	loc := a.loc(r)

	r.Body = http.MaxBytesReader(w, r.Body, CategoryBodyLimit)
	if err := r.ParseMultipartForm(imaging.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		slog.Warn("category form parse failed", "error", err)
	}

	page := categoryPage{form: categoryForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		ImageURL: strings.TrimSpace(r.FormValue("image_url")),
		ParentID: strings.TrimSpace(r.FormValue("parent_id")),
		EditID:   strings.TrimSpace(r.FormValue("edit_id")),
	}}
	page.editing = page.form.EditID != ""

	flat, err := a.loadCategories(r)
	if err != nil {
		page.err = loc.T(i18n.CategoryLoadFailed)
		a.renderCategories(w, r, http.StatusBadGateway, flat, page)
		return
	}

	if page.fieldErrors = validateForm(loc, &page.form); page.fieldErrors != nil {
		if _, ok := page.fieldErrors["name"]; ok && page.form.Name == "" {
			page.err = loc.T(i18n.CategoryNameRequired)
		}
		a.renderCategories(w, r, http.StatusUnprocessableEntity, flat, page)
		return
	}

	// Updating is not wired to the catalog service yet.
	if page.editing {
		slog.Info("category edit submitted but not supported", "id", page.form.EditID)
		page.err = loc.T(i18n.CategoryEditUnsupported)
		a.renderCategories(w, r, http.StatusUnprocessableEntity, flat, page)
		return
	}

	if msg := checkParent(loc, flat, page.form.ParentID); msg != "" {
		page.err = msg
		a.renderCategories(w, r, http.StatusUnprocessableEntity, flat, page)
		return
	}

	imageURL, key, err := a.uploadCategoryImage(r, page.form.Name)
	if err != nil {
		slog.Error("category image upload failed", "error", err)
		page.err = loc.T(i18n.CategoryUploadFailed)
		a.renderCategories(w, r, http.StatusUnprocessableEntity, flat, page)
		return
	}
	if imageURL == "" {
		imageURL = page.form.ImageURL
	}

	created, err := a.client.CreateCategory(r.Context(), models.NewCreateCategoryInput(page.form.Name, page.form.ParentID, imageURL))
	if err == nil && created == nil {
		err = errInvalidResponse
	}
	if err != nil {
		if key != "" {
			if delErr := a.storageClient.Delete(r.Context(), key); delErr != nil {
				slog.Warn("orphaned category image", "key", key, "error", delErr)
			}
		}
		page.err = categoryErrorMessage(loc, err)
		a.renderCategories(w, r, http.StatusUnprocessableEntity, flat, page)
		return
	}

	slog.Info("category created", "id", created.ID, "name", created.Name, "parent", created.ParentKey())
	http.Redirect(w, r, categoriesPath+"?created=1", http.StatusSeeOther)
}

// CategoryDelete is a placeholder: the catalog service has no delete
// endpoint yet. It logs the request and redirects back.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	slog.Info("category delete requested but not supported", "id", chi.URLParam(r, "id"))
	http.Redirect(w, r, categoriesPath+"?deleted=1", http.StatusSeeOther)
}

// errInvalidResponse marks a create call that succeeded without returning
// the category.
var errInvalidResponse = errors.New("create category: empty response")

// categoryErrorMessage maps a create failure to a localized message.
func categoryErrorMessage(loc *i18n.Localizer, err error) string {
	if errors.Is(err, errInvalidResponse) {
		return loc.T(i18n.CategoryInvalidResponse)
	}

	e := api.AsError(err)
	switch {
	case errors.Is(e, api.ErrAlreadyExists):
		return loc.T(i18n.CategoryDuplicate)
	case errors.Is(e, api.ErrNotFound):
		return loc.T(i18n.CategoryParentNotFound)
	case errors.Is(e, api.ErrFailedPrecondition):
		msg := strings.ToLower(e.Message)
		switch {
		case strings.Contains(msg, "depth limit exceeded"):
			return loc.T(i18n.CategoryDepthLimit, category.MaxDepth+1)
		case strings.Contains(msg, "contains products"):
			return loc.T(i18n.CategoryHasProducts)
		case e.Message != "":
			return e.Message
		}
		return loc.T(i18n.CategoryPrecondition)
	case errors.Is(e, api.ErrInternal):
		return loc.T(i18n.CategoryInternal)
	}
	return apiMessage(loc, e, i18n.CategoryCreateFailed)
}

// checkParent returns a message when parentID cannot take a child, without
// asking the catalog service.
func checkParent(loc *i18n.Localizer, flat []models.Category, parentID string) string {
	if parentID == "" {
		return ""
	}
	if _, ok := category.Find(flat, parentID); !ok {
		return loc.T(i18n.CategoryParentNotFound)
	}
	if _, ok := category.Find(category.ParentOptions(flat), parentID); !ok {
		return loc.T(i18n.CategoryDepthLimit, category.MaxDepth+1)
	}
	return ""
}

// uploadCategoryImage stores the optional "image" file and returns its
// public URL and object key. Both are empty when no file was sent or
// storage is not configured.
func (a *Admin) uploadCategoryImage(r *http.Request, categoryName string) (string, string, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("read upload: %w", err)
	}
	defer file.Close()

	if header.Size == 0 {
		return "", "", nil
	}
	if a.storageClient == nil {
		slog.Warn("category image ignored, storage not configured", "file", header.Filename)
		return "", "", nil
	}
	if header.Size > imaging.MaxUploadSize {
		return "", "", fmt.Errorf("upload %s too large: %d bytes", header.Filename, header.Size)
	}

	contentType, err := sniffImage(file)
	if err != nil {
		return "", "", err
	}

	key := storage.CategoryImageKey(categoryName, header.Filename)
	url, err := a.storageClient.Upload(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

// sniffImage detects the content type from the first 512 bytes, rejects
// anything but the allowed image types, and rewinds the file.
func sniffImage(file io.ReadSeeker) (string, error) {
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	contentType := http.DetectContentType(sniffBuf[:n])
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("%w: %s", imaging.ErrUnsupported, contentType)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}
	return contentType, nil
}

// loadCategories fetches the list in display order. On error the list is
// empty and the error is logged.
func (a *Admin) loadCategories(r *http.Request) ([]models.Category, error) {
	cats, err := a.client.ListCategories(r.Context())
	if err != nil {
		slog.Error("list categories failed", "error", err)
		return nil, err
	}
	report := category.GroupAndSortReport(category.FlattenList(cats), a.loc(r).Tag())
	logOrphans(report)
	return report.Categories, nil
}

func (a *Admin) renderCategories(w http.ResponseWriter, r *http.Request, status int, flat []models.Category, page categoryPage) {
	collapsed := category.ParseSet(r.URL.Query().Get("collapsed"))
	tree := category.BuildTree(flat)

	var options []category.Option
	for _, o := range category.Flatten(tree) {
		if o.Category.Depth < category.MaxDepth {
			options = append(options, o)
		}
	}

	a.renderer.PageStatus(w, r, status, "admin_categories", &render.PageData{
		Title:   "categories.title",
		Section: "categories",
		Flashes: page.flashes,
		Data: map[string]any{
			"Form":           page.form,
			"Editing":        page.editing,
			"Error":          page.err,
			"FieldErrors":    page.fieldErrors,
			"Rows":           category.Rows(tree, collapsed),
			"Options":        options,
			"Collapsed":      collapsed.Encode(),
			"StorageEnabled": a.storageClient != nil,
		},
	})
}
