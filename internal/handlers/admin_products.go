package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"blackshop/internal/cache"
	"blackshop/internal/category"
	"blackshop/internal/i18n"
	"blackshop/internal/imaging"
	"blackshop/internal/render"
	"blackshop/internal/wizard"
)

const productsPath = "/admin/products"

// Products renders the admin product list.
func (a *Admin) Products(w http.ResponseWriter, r *http.Request) {
	loc := a.loc(r)
	data := map[string]any{}
	products, err := a.client.ListProducts(r.Context())
	if err != nil {
		slog.Error("list products failed", "error", err)
		data["Error"] = loc.T(i18n.ProductsLoadFailed)
	}
	data["Products"] = products

	flashes := flash(r, "submitted", "success", loc.T(i18n.WizardSubmitted))
	flashes = append(flashes, flash(r, "expired", "warning", loc.T(i18n.WizardDraftExpired))...)

	a.renderer.Page(w, r, "admin_products", &render.PageData{
		Title:   "products.title",
		Section: "products",
		Data:    data,
		Flashes: flashes,
	})
}

// WizardNew starts a product draft and opens its first step.
func (a *Admin) WizardNew(w http.ResponseWriter, r *http.Request) {
	d := wizard.New(uuid.NewString(), time.Now().UTC())
	if err := a.drafts.Save(r.Context(), d); err != nil {
		slog.Error("save wizard draft failed", "error", err)
		a.wizardError(w, r, http.StatusInternalServerError)
		return
	}
	slog.Info("product wizard started", "id", d.ID)
	http.Redirect(w, r, wizardPath(d.ID), http.StatusSeeOther)
}

// Wizard renders the current step of a draft.
func (a *Admin) Wizard(w http.ResponseWriter, r *http.Request) {
	d, ok := a.loadDraft(w, r)
	if !ok {
		return
	}
	a.renderWizard(w, r, http.StatusOK, d, "")
}

// WizardAction stores the fields of the current step and any uploaded
// images, then applies the button that was pressed ("action"). Buttons that
// address an item carry its indexes, e.g. "remove_attribute:0:2".
func (a *Admin) WizardAction(w http.ResponseWriter, r *http.Request) {
	loc := a.loc(r)
	d, ok := a.loadDraft(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, WizardBodyLimit)
	if err := r.ParseMultipartForm(imaging.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		slog.Warn("wizard form parse failed", "id", d.ID, "error", err)
		a.renderWizard(w, r, http.StatusRequestEntityTooLarge, d, loc.T(i18n.WizardImageInvalid))
		return
	}

	bindDraft(d, r.Form)

	var message string
	if r.MultipartForm != nil {
		if rejected := attachImages(d, r.MultipartForm.File); rejected > 0 {
			message = loc.T(i18n.WizardImageInvalid)
		}
	}

	name, args, err := parseAction(r.FormValue("action"))
	if err == nil {
		if name == "submit" {
			a.submitDraft(w, r, d)
			return
		}
		err = applyAction(d, name, args)
	}
	if err != nil {
		slog.Warn("invalid wizard action", "id", d.ID, "action", r.FormValue("action"), "error", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := a.drafts.Save(r.Context(), d); err != nil {
		slog.Error("save wizard draft failed", "id", d.ID, "error", err)
		a.wizardError(w, r, http.StatusInternalServerError)
		return
	}
	if message != "" {
		a.renderWizard(w, r, http.StatusUnprocessableEntity, d, message)
		return
	}
	http.Redirect(w, r, wizardPath(d.ID), http.StatusSeeOther)
}

// WizardCancel discards a draft.
func (a *Admin) WizardCancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	a.drafts.Delete(r.Context(), id)
	slog.Info("product wizard cancelled", "id", id)
	http.Redirect(w, r, productsPath, http.StatusSeeOther)
}

// submitDraft finishes the wizard: the draft is logged, optionally created
// in the catalog, and deleted.
func (a *Admin) submitDraft(w http.ResponseWriter, r *http.Request, d *wizard.Draft) {
	if err := d.Submit(); err != nil {
		slog.Warn("wizard submit before the review step", "id", d.ID, "step", d.Step.String())
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if a.publish {
		if msg := a.publishDraft(r, d); msg != "" {
			if err := a.drafts.Save(r.Context(), d); err != nil {
				slog.Error("save wizard draft failed", "id", d.ID, "error", err)
			}
			a.renderWizard(w, r, http.StatusUnprocessableEntity, d, msg)
			return
		}
	}

	slog.Info("product submitted", "draft", d.Summary())
	a.drafts.Delete(r.Context(), d.ID)
	http.Redirect(w, r, productsPath+"?submitted=1", http.StatusSeeOther)
}

// publishDraft creates the product in the catalog. It returns a message for
// the review step, or "" on success.
func (a *Admin) publishDraft(r *http.Request, d *wizard.Draft) string {
	loc := a.loc(r)
	in, err := d.Product()
	if err != nil {
		var fe *wizard.FieldError
		if errors.As(err, &fe) && errors.Is(err, wizard.ErrInvalidStock) {
			return loc.T(i18n.WizardInvalidStock, fe.Variant+1)
		}
		if errors.As(err, &fe) {
			return loc.T(i18n.WizardInvalidPrice, fe.Variant+1)
		}
		return loc.T(i18n.Unexpected)
	}

	product, err := a.client.CreateProduct(r.Context(), in)
	if err != nil {
		return apiMessage(loc, err, i18n.WizardPublishFailed)
	}
	if product != nil {
		slog.Info("product created", "id", product.ID, "draft", d.ID)
	}
	return ""
}

// loadDraft fetches the draft named in the URL. A missing or expired draft
// sends the admin back to the product list.
func (a *Admin) loadDraft(w http.ResponseWriter, r *http.Request) (*wizard.Draft, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	d, err := a.drafts.Get(r.Context(), id)
	if errors.Is(err, cache.ErrDraftNotFound) {
		http.Redirect(w, r, productsPath+"?expired=1", http.StatusSeeOther)
		return nil, false
	}
	if err != nil {
		slog.Error("load wizard draft failed", "id", id, "error", err)
		a.wizardError(w, r, http.StatusInternalServerError)
		return nil, false
	}
	return d, true
}

func (a *Admin) renderWizard(w http.ResponseWriter, r *http.Request, status int, d *wizard.Draft, message string) {
	var options []category.Option
	var label string
	if flat, err := a.loadCategories(r); err == nil {
		options = category.Flatten(category.BuildTree(flat))
		for _, o := range options {
			if o.ID == d.Basic.Category {
				label = o.Category.Name
			}
		}
	}
	if label == "" {
		label = d.Basic.Category
	}

	a.renderer.PageStatus(w, r, status, "wizard", &render.PageData{
		Title:   "wizard.title",
		Section: "products",
		Data: map[string]any{
			"Draft":         d,
			"Categories":    options,
			"CategoryLabel": label,
			"Error":         message,
		},
	})
}

func (a *Admin) wizardError(w http.ResponseWriter, r *http.Request, status int) {
	a.renderer.PageStatus(w, r, status, "error", &render.PageData{
		Title:   "error.title",
		Section: "products",
		Data:    map[string]any{"Message": a.loc(r).T(i18n.Unexpected)},
	})
}

func wizardPath(id string) string {
	return productsPath + "/wizard/" + url.PathEscape(id)
}

// fieldKey builds the form field names the wizard template uses:
// fieldKey("variant", 0, "sku") is "variant_0_sku".
func fieldKey(parts ...any) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return strings.Join(s, "_")
}

// bindDraft copies the fields of the draft's current step from the form.
// Fields missing from the form leave the draft unchanged.
func bindDraft(d *wizard.Draft, form url.Values) {
	set := func(dst *string, key string) {
		if vs, ok := form[key]; ok && len(vs) > 0 {
			*dst = vs[0]
		}
	}

	switch d.Step {
	case wizard.StepBasic:
		set(&d.Basic.Name, "name")
		set(&d.Basic.Description, "description")
		set(&d.Basic.Category, "category")
		set(&d.Basic.Brand, "brand")
	case wizard.StepVariants:
		for i := range d.Variants {
			v := &d.Variants[i]
			set(&v.SKU, fieldKey("variant", i, "sku"))
			set(&v.Price, fieldKey("variant", i, "price"))
			set(&v.Stock, fieldKey("variant", i, "stock"))
			for j := range v.Attributes {
				set(&v.Attributes[j].Name, fieldKey("variant", i, "attr", j, "name"))
				set(&v.Attributes[j].Value, fieldKey("variant", i, "attr", j, "value"))
			}
		}
	}
}

// attachImages turns uploaded files into previews on the draft: the
// "primary_images" field feeds the product, "variant_<i>_images" feeds
// variant i. It returns how many files were rejected.
func attachImages(d *wizard.Draft, files map[string][]*multipart.FileHeader) int {
	rejected := 0
	add := func(variant int, headers []*multipart.FileHeader) {
		for _, fh := range headers {
			img, err := previewImage(fh)
			if err != nil {
				slog.Warn("wizard image rejected", "file", fh.Filename, "error", err)
				rejected++
				continue
			}
			if err := d.AddImages(variant, img); err != nil {
				rejected++
			}
		}
	}

	add(-1, files["primary_images"])
	for i := range d.Variants {
		add(i, files[fieldKey("variant", i, "images")])
	}
	return rejected
}

// previewImage decodes one upload into a draft image. The original bytes
// are not kept.
func previewImage(fh *multipart.FileHeader) (wizard.Image, error) {
	if fh.Size > imaging.MaxUploadSize {
		return wizard.Image{}, fmt.Errorf("%s is too large: %d bytes", fh.Filename, fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return wizard.Image{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	if _, err := sniffImage(f); err != nil {
		return wizard.Image{}, err
	}
	p, err := imaging.GeneratePreview(f, imaging.PreviewWidth)
	if err != nil {
		return wizard.Image{}, err
	}
	return wizard.Image{
		Name:    fh.Filename,
		Width:   p.Width,
		Height:  p.Height,
		Preview: p.DataURL(),
	}, nil
}

// errBadAction is returned for unknown or malformed wizard actions.
var errBadAction = errors.New("bad wizard action")

// parseAction splits "name:1:2" into its name and integer arguments.
func parseAction(raw string) (string, []int, error) {
	name, rest, _ := strings.Cut(raw, ":")
	var args []int
	if rest != "" {
		for _, part := range strings.Split(rest, ":") {
			n, err := strconv.Atoi(part)
			if err != nil {
				return "", nil, fmt.Errorf("%w: %q", errBadAction, raw)
			}
			args = append(args, n)
		}
	}
	return name, args, nil
}

// applyAction performs a wizard button on the draft.
func applyAction(d *wizard.Draft, name string, args []int) error {
	arity := map[string]int{
		"": 0, "upload": 0, "next": 0, "back": 0, "add_variant": 0,
		"remove_variant": 1, "add_attribute": 1,
		"remove_attribute": 2, "remove_image": 2,
	}
	want, ok := arity[name]
	if !ok || len(args) != want {
		return fmt.Errorf("%w: %s with %d arguments", errBadAction, name, len(args))
	}

	switch name {
	case "next":
		d.Next()
	case "back":
		d.Back()
	case "add_variant":
		d.AddVariant()
	case "remove_variant":
		return d.RemoveVariant(args[0])
	case "add_attribute":
		return d.AddAttribute(args[0])
	case "remove_attribute":
		return d.RemoveAttribute(args[0], args[1])
	case "remove_image":
		return d.RemoveImage(args[0], args[1])
	}
	return nil
}
