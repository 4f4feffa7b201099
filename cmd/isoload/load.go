/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/suparena/secschema"
	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
	"github.com/suparena/secschema/registry"
	"github.com/suparena/secschema/secmodels"
)

// refData is the layout of an ISO reference file.
type refData struct {
	Currencies []currencyDef `yaml:"currencies"`
	Countries  []countryDef  `yaml:"countries"`
}

type currencyDef struct {
	ID        int16   `yaml:"id"`
	Code      string  `yaml:"code"`
	Name      string  `yaml:"name"`
	Symbol    *string `yaml:"symbol"`
	Precision int16   `yaml:"precision"`
}

type countryDef struct {
	ID         int16   `yaml:"id"`
	Code       string  `yaml:"code"`
	Name       string  `yaml:"name"`
	Currencies []int16 `yaml:"currencies"`
}

func readRefData(path string) (*refData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}
	var data refData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse reference file: %w", err)
	}
	return &data, nil
}

// loadStats counts the records written by one load.
type loadStats struct {
	Created int
	Updated int
}

type loader struct {
	backing  *secschema.Backing
	schema   *registry.Registry
	loadedBy keys.HashKey
	now      func() time.Time
	out      io.Writer
	logger   *zap.Logger
	stats    loadStats
}

func newLoader(b *secschema.Backing, out io.Writer, logger *zap.Logger) *loader {
	schema := registry.New(registry.WithLogger(logger))
	schema.SetBacking(b)
	return &loader{
		backing:  b,
		schema:   schema,
		loadedBy: keys.HashKeyOf([]byte("isoload")),
		now:      time.Now,
		out:      out,
		logger:   logger,
	}
}

// load writes currencies first so country links can be checked against them.
func (l *loader) load(ctx context.Context, data *refData) error {
	for _, def := range data.Currencies {
		rec := secmodels.ISOCcyFactory{}.NewRec()
		if err := buildCurrency(rec, def); err != nil {
			return fmt.Errorf("currency %d: %w", def.ID, err)
		}
		if err := upsert(ctx, l, secmodels.ClassCodeISOCcy, rec); err != nil {
			return err
		}
	}

	for _, def := range data.Countries {
		rec := secmodels.ISOCtryFactory{}.NewRec()
		if err := buildCountry(rec, def); err != nil {
			return fmt.Errorf("country %d: %w", def.ID, err)
		}
		if err := upsert(ctx, l, secmodels.ClassCodeISOCtry, rec); err != nil {
			return err
		}
		for _, ccyID := range def.Currencies {
			if err := l.link(ctx, def.ID, ccyID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *loader) link(ctx context.Context, ctryID, ccyID int16) error {
	ccys, err := l.schema.ISOCcyTable()
	if err != nil {
		return fmt.Errorf("country %d: %w", ctryID, err)
	}
	ccy, err := ccys.ReadDerived(ctx, ccyID)
	if err != nil {
		return err
	}
	if ccy == nil {
		return errors.NewNotFoundError("ISOCcy", secmodels.ISOCcyStoreKey(ccyID))
	}

	rec := secmodels.ISOCtryCcyFactory{}.NewRec()
	if err := rec.SetPKey(secmodels.ISOCtryCcyPKey{ISOCtryID: ctryID, ISOCcyID: ccyID}); err != nil {
		return err
	}
	return upsert(ctx, l, secmodels.ClassCodeISOCtryCcy, rec)
}

func buildCurrency(rec *secmodels.ISOCcyBuff, def currencyDef) error {
	if err := rec.SetID(def.ID); err != nil {
		return err
	}
	if err := rec.SetISOCode(def.Code); err != nil {
		return err
	}
	if err := rec.SetName(def.Name); err != nil {
		return err
	}
	if err := rec.SetUnitSymbol(def.Symbol); err != nil {
		return err
	}
	return rec.SetPrecis(def.Precision)
}

func buildCountry(rec *secmodels.ISOCtryBuff, def countryDef) error {
	if err := rec.SetID(def.ID); err != nil {
		return err
	}
	if err := rec.SetISOCode(def.Code); err != nil {
		return err
	}
	return rec.SetName(def.Name)
}

type stampable[T any] interface {
	datastore.Entity[T]
	secmodels.Audited
	XMLAttrFragment() string
	SetCreatedByUserID(keys.HashKey)
	SetCreatedAt(time.Time)
	SetUpdatedByUserID(keys.HashKey)
	SetUpdatedAt(time.Time)
	SetRevision(int32)
}

// upsert stamps rec against what is stored under its key and writes it with
// the next revision.
func upsert[T stampable[T]](ctx context.Context, l *loader, code secmodels.ClassCode, rec T) error {
	ds, err := secschema.StoreOf[T](l.backing, code)
	if err != nil {
		return err
	}

	now := l.now().UTC()
	rec.SetUpdatedByUserID(l.loadedBy)
	rec.SetUpdatedAt(now)

	cur, err := ds.GetOne(ctx, rec.StoreKey())
	switch {
	case err == nil:
		rec.SetCreatedByUserID(cur.CreatedByUserID())
		rec.SetCreatedAt(cur.CreatedAt())
		rec.SetRevision(cur.Revision() + 1)
	case errors.IsNotFound(err):
		rec.SetCreatedByUserID(l.loadedBy)
		rec.SetCreatedAt(now)
		rec.SetRevision(1)
	default:
		return err
	}

	if err := ds.Put(ctx, rec); err != nil {
		return fmt.Errorf("failed to store %s %q: %w", code, rec.StoreKey(), err)
	}
	if rec.Revision() == 1 {
		l.stats.Created++
	} else {
		l.stats.Updated++
	}
	l.logger.Debug("record loaded",
		zap.Stringer("kind", code),
		zap.String("key", rec.StoreKey()),
		zap.Int32("revision", rec.Revision()))

	_, err = fmt.Fprintln(l.out, rec.XMLAttrFragment())
	return err
}
