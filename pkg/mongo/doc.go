// Package mongo manages the MongoDB connection backing the clinic data
// store: environment-driven configuration, retrying connect, and a
// healthcheck suitable for readiness probes.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "clinic")
//	if err != nil {
//		// fail startup; nothing works without the store
//	}
//
// The returned client owns the connection pool; the rest of the module only
// ever borrows collections from it and never opens or closes connections
// itself.
package mongo
