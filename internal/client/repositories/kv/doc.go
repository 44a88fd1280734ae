// Package kv is the key-value store adapter under the JSON documents of the
// application (car catalog, user directory, settings flags).
//
// # Contract
//
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites the value stored under key.
//   - SetMany writes several keys at once; SQL backends do it in one
//     transaction, Redis with a single MSET.
//
// Every call may fail with an I/O error; errors are wrapped with the key in
// the message ("failed to get kv[@users]: ...").
//
// # Backends
//
//   - SQLRepository over SQLite (modernc.org/sqlite) or PostgreSQL (pgx),
//     using the kv_store table created by the embedded goose migrations.
//   - RedisRepository over github.com/redis/go-redis/v9.
package kv
