package service

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/validator"
)

func newValidator() validator.Validator {
	v, err := validator.NewDefaultValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// fakeDB runs WithTx inline and records the statements executed through it.
type fakeDB struct {
	db.DB
	execs []string
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	return txFunc(f)
}
