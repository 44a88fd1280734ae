// Package users persists the auth directory of registered users under Key.
package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/document"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/carmarket/internal/logging"
)

const Key = "@users"

type Directory struct {
	doc *document.Document[models.RegisteredUser]
	log logging.Logger
}

func NewDirectory(store kv.Repository, log logging.Logger) *Directory {
	return &Directory{doc: document.New[models.RegisteredUser](store, Key), log: log}
}

// Load returns the registered users. An unparseable value counts as an empty
// directory; store failures are returned wrapping common.ErrStorage.
func (d *Directory) Load(ctx context.Context) ([]models.RegisteredUser, error) {
	list, err := d.doc.Read(ctx)
	if errors.Is(err, document.ErrCorrupt) {
		d.log.Warn(ctx, "users directory is corrupt, treating as empty", "key", d.doc.Key(), logging.Err(err))
		return []models.RegisteredUser{}, nil
	}
	if err != nil {
		return nil, err
	}
	if list == nil {
		return []models.RegisteredUser{}, nil
	}
	return list, nil
}

func (d *Directory) Save(ctx context.Context, list []models.RegisteredUser) error {
	return d.doc.Write(ctx, list)
}
