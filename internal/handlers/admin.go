// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"

	"blackshop/internal/api"
	"blackshop/internal/category"
	"blackshop/internal/i18n"
	"blackshop/internal/imaging"
	"blackshop/internal/render"
	"blackshop/internal/storage"
	"blackshop/internal/wizard"
)

// Request body caps for the admin forms that accept uploads. The router
// applies them before any middleware reads the form.
const (
	// WizardBodyLimit allows four full-size images plus the form fields.
	WizardBodyLimit = 4*imaging.MaxUploadSize + 1<<20

	// CategoryBodyLimit allows one image plus the form fields.
	CategoryBodyLimit = imaging.MaxUploadSize + 64<<10
)

// DraftStore persists product wizard drafts between requests.
// *cache.DraftStore implements it on top of Valkey.
type DraftStore interface {
	Get(ctx context.Context, id string) (*wizard.Draft, error)
	Save(ctx context.Context, d *wizard.Draft) error
	Delete(ctx context.Context, id string)
}

// Admin groups the admin area handlers: category manager, product list and
// the product wizard.
type Admin struct {
	base
	storageClient *storage.Client
	drafts        DraftStore
	publish       bool
}

// NewAdmin creates a new Admin handler group. storageClient may be nil if
// S3 is not configured. When publish is true, a submitted wizard also
// creates the product in the catalog.
func NewAdmin(renderer *render.Renderer, client *api.Client, bundle *i18n.Bundle, storageClient *storage.Client, drafts DraftStore, publish bool) *Admin {
	return &Admin{
		base:          base{renderer: renderer, client: client, bundle: bundle},
		storageClient: storageClient,
		drafts:        drafts,
		publish:       publish,
	}
}

// logOrphans warns about categories that were listed as roots because
// their parent could not be resolved.
func logOrphans(report category.Report) {
	if len(report.Orphans) == 0 {
		return
	}
	ids := make([]string, len(report.Orphans))
	for i, c := range report.Orphans {
		ids[i] = c.ID
	}
	slog.Warn("categories with unresolvable parent listed as roots", "count", len(ids), "ids", ids)
}
