// Package redis manages the Redis connection used for the cross-process
// tenant snapshot cache: environment-driven configuration, retrying
// connect, and a healthcheck for readiness probes.
//
// Redis is optional; deployments running a single process use the
// in-memory cache instead and never connect.
package redis
