package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotConnected is returned when a collection is resolved before the store
// connection has been established.
var ErrNotConnected = errors.New("database connection not established")

// Resolver binds resource names to live collection handles. Names are
// case-sensitive and map to the collection of the exact same name; handles
// are created lazily and cached for the process lifetime.
type Resolver struct {
	db *mongo.Database

	mu      sync.Mutex
	handles map[string]*mongo.Collection
}

func NewResolver(db *mongo.Database) *Resolver {
	return &Resolver{
		db:      db,
		handles: make(map[string]*mongo.Collection),
	}
}

func (r *Resolver) Resolve(name string) (*mongo.Collection, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConnected
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if col, ok := r.handles[name]; ok {
		return col, nil
	}

	col := r.db.Collection(name)
	r.handles[name] = col
	return col, nil
}

// Ready reports whether the backing deployment currently answers a primary
// ping. Used by the request pipeline to fail resource routes fast instead of
// letting a dead connection surface as an opaque store error.
func (r *Resolver) Ready(ctx context.Context) error {
	if r == nil || r.db == nil {
		return ErrNotConnected
	}

	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return r.db.Client().Ping(checkCtx, readpref.Primary())
}
